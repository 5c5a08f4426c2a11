package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("53.9, 27.56")
	require.NoError(t, err)
	assert.Equal(t, Point{Lat: 53.9, Lon: 27.56}, p)

	for _, bad := range []string{"", "53.9", "53.9,27.56,1", "abc,27", "53.9,xyz", "91,0", "0,181", "-91,0"} {
		_, err := ParsePoint(bad)
		assert.ErrorIs(t, err, ErrBadCoordinate, "input %q", bad)
	}
}

func TestParseRing(t *testing.T) {
	ring, err := ParseRing([]string{"0,0", "0,2", "2,2", "2,0"})
	require.NoError(t, err)
	assert.Len(t, ring, 4)

	_, err = ParseRing([]string{"0,0", "1,1"})
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = ParseRing([]string{"0,0", "1,1", "bad"})
	assert.ErrorIs(t, err, ErrBadCoordinate)
}

func TestRingContains(t *testing.T) {
	square := Ring{{0, 0}, {0, 2}, {2, 2}, {2, 0}}

	assert.True(t, square.Contains(Point{1, 1}))
	assert.False(t, square.Contains(Point{3, 3}))
	assert.False(t, square.Contains(Point{-1, 1}))
	assert.False(t, square.Contains(Point{1, 2.5}))

	// Невыпуклый многоугольник: "карман" справа не входит внутрь.
	concave := Ring{{0, 0}, {0, 4}, {4, 4}, {4, 0}, {2, 2}}
	assert.True(t, concave.Contains(Point{1, 2}))
	assert.False(t, concave.Contains(Point{3.5, 0.1}))

	// Вырожденное кольцо ничего не содержит.
	assert.False(t, Ring{{0, 0}, {1, 1}}.Contains(Point{0.5, 0.5}))
}
