package levenshtein

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal strings", "petrov", "petrov", 0},
		{"both empty", "", "", 0},
		{"empty left", "", "ivanov", 6},
		{"empty right", "sidorov", "", 7},
		{"classic kitten sitting", "kitten", "sitting", 3},
		{"single substitution", "petrov", "petrof", 1},
		{"single insertion", "ivanov", "ivvanov", 1},
		{"cyrillic", "петров", "петрова", 1},
		{"completely different", "abc", "xyz", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"петров", "сидоров"},
		{"", "abc"},
		{"main street", "главная улица"},
	}

	for _, p := range pairs {
		assert.Equal(t, Distance(p[0], p[1]), Distance(p[1], p[0]), "distance must be symmetric for %q/%q", p[0], p[1])
	}
}

func TestWithinThreshold(t *testing.T) {
	assert.True(t, WithinThreshold("petrov", "petrof", 3))
	assert.True(t, WithinThreshold("petrov", "petrov", 0))
	assert.False(t, WithinThreshold("xyzzzzy", "petrov", 3))
	assert.False(t, WithinThreshold("a", "abcdefg", 3), "length gap alone exceeds the threshold")
	assert.False(t, WithinThreshold("a", "a", -1))
}
