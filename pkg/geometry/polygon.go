// Package geometry содержит геометрические примитивы для поиска
// объектов недвижимости по району на карте.
package geometry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrTooFewPoints — в кольце меньше трех вершин.
	ErrTooFewPoints = errors.New("polygon requires at least 3 points")
	// ErrBadCoordinate — токен координат не разбирается или выходит за допустимый диапазон.
	ErrBadCoordinate = errors.New("malformed coordinate pair")
)

// Point — географическая точка. Порядок координат во всем сервисе
// единый: (широта, долгота). Токены запроса тоже ожидаются как "lat,lon".
type Point struct {
	Lat float64
	Lon float64
}

// Ring — упорядоченное кольцо вершин простого (несамопересекающегося)
// многоугольника. Для самопересекающихся колец поведение Contains не определено.
type Ring []Point

// ParsePoint разбирает строку вида "53.9,27.56".
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Point{}, fmt.Errorf("%w: %q is out of range", ErrBadCoordinate, s)
	}

	return Point{Lat: lat, Lon: lon}, nil
}

// ParseRing разбирает список токенов "lat,lon" в кольцо.
// Любая некорректная пара отклоняет весь запрос целиком.
func ParseRing(coords []string) (Ring, error) {
	if len(coords) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(coords))
	}

	ring := make(Ring, 0, len(coords))
	for _, c := range coords {
		p, err := ParsePoint(c)
		if err != nil {
			return nil, err
		}
		ring = append(ring, p)
	}
	return ring, nil
}

// Contains проверяет попадание точки внутрь кольца методом трассировки луча.
// Точки точно на границе могут попасть в любую из сторон.
func (r Ring) Contains(p Point) bool {
	if len(r) < 3 {
		return false
	}

	inside := false
	j := len(r) - 1
	for i := 0; i < len(r); i++ {
		a, b := r[i], r[j]
		if (a.Lon > p.Lon) != (b.Lon > p.Lon) {
			crossLat := (b.Lat-a.Lat)*(p.Lon-a.Lon)/(b.Lon-a.Lon) + a.Lat
			if p.Lat < crossLat {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
