package postgres

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"brokerage-service/internal/core/domain"

	"github.com/mmcloughlin/geohash"
)

// Точность геохэша для отпечатка: ~5 км на ячейку.
// Этого достаточно, чтобы склеить повторные заведения одного объекта.
const geohashPrecision = 5

const areaBucketSize = 5.0 // м²

func normalizeAreaToBucket(area *float64, bucketSize float64) string {
	if area == nil {
		return "null"
	}
	if bucketSize <= 0 {
		bucketSize = 1.0 // Защита от деления на ноль
	}
	bucketIndex := int(*area / bucketSize)
	return fmt.Sprintf("%d", bucketIndex)
}

// buildFingerprintPayload создает стабильную строку из ключевых полей объекта.
func buildFingerprintPayload(p domain.Property) string {
	location := "nocoords"
	if p.HasCoordinates() {
		location = geohash.EncodeWithPrecision(*p.Latitude, *p.Longitude, geohashPrecision)
	}

	parts := []string{
		location,
		string(p.Type),
		normalizeAreaToBucket(p.Area(), areaBucketSize),
		strings.ToLower(strings.TrimSpace(p.City)),
		strings.ToLower(strings.TrimSpace(p.Street)),
		strings.ToLower(strings.TrimSpace(p.HouseNumber)),
		strings.ToLower(strings.TrimSpace(p.ApartmentNumber)),
	}

	return strings.Join(parts, "|")
}

// propertyFingerprint возвращает sha256-отпечаток объекта для поиска дублей.
func propertyFingerprint(p domain.Property) string {
	sum := sha256.Sum256([]byte(buildFingerprintPayload(p)))
	return fmt.Sprintf("%x", sum)
}
