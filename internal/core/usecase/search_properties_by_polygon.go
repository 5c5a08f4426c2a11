package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
	"brokerage-service/pkg/geometry"
)

// SearchPropertiesByPolygonUseCase — поиск объектов внутри района,
// заданного вершинами полигона. Объекты без координат не участвуют.
type SearchPropertiesByPolygonUseCase struct {
	storage port.PropertyStoragePort
}

func NewSearchPropertiesByPolygonUseCase(storage port.PropertyStoragePort) *SearchPropertiesByPolygonUseCase {
	return &SearchPropertiesByPolygonUseCase{storage: storage}
}

func (uc *SearchPropertiesByPolygonUseCase) Execute(ctx context.Context, coords []string) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchPropertiesByPolygon",
		"vertices": len(coords),
	})

	ucLogger.Info("Use case started", nil)

	ring, err := geometry.ParseRing(coords)
	if err != nil {
		ucLogger.Warn("Polygon parsing failed", port.Fields{"error": err.Error()})
		return nil, domain.InvalidInput("invalid polygon: %v", err)
	}

	properties, err := uc.storage.ListWithCoordinates(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to load properties for polygon search: %w", err)
	}

	matched := make([]domain.Property, 0)
	for _, p := range properties {
		if !p.HasCoordinates() {
			continue
		}
		if ring.Contains(geometry.Point{Lat: *p.Latitude, Lon: *p.Longitude}) {
			matched = append(matched, p)
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"matched": len(matched)})
	return matched, nil
}
