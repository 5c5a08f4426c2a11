package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"ivanov", "ivan"}, Tokenize("  Ivanov   IVAN "))
	assert.Empty(t, Tokenize("   "))
	assert.Equal(t, []string{"петров"}, Tokenize("Петров"))
}

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		name      string
		query     []string
		candidate []string
		threshold int
		want      bool
	}{
		{"exact token", []string{"petrov"}, []string{"petrov", "ivan"}, 3, true},
		{"typo within threshold", []string{"petrof"}, []string{"petrov", "ivan"}, 3, true},
		{"no token close enough", []string{"xyzzzzy"}, []string{"petrov", "ivan"}, 3, false},
		{"empty query", nil, []string{"petrov"}, 3, false},
		{"empty candidate", []string{"petrov"}, nil, 3, false},
		{"tight threshold rejects typo", []string{"129"}, []string{"12"}, 0, false},
		{"tight threshold allows one edit", []string{"129"}, []string{"12"}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesAny(tt.query, tt.candidate, tt.threshold))
		})
	}
}

func TestMatcherFirstFieldWins(t *testing.T) {
	m := NewMatcher(
		Field{Name: "city", Threshold: 3},
		Field{Name: "street", Threshold: 3},
		Field{Name: "house_number", Threshold: 1},
	)

	// Город и улица совпадают одновременно, но побеждает город.
	field, ok := m.Match(Tokenize("Minsk Lenina"), []string{"Minsk", "Lenina", "12"})
	assert.True(t, ok)
	assert.Equal(t, "city", field)

	// Совпадение только по улице.
	field, ok = m.Match(Tokenize("Lenina"), []string{"Gomel", "Lenina", "12"})
	assert.True(t, ok)
	assert.Equal(t, "street", field)

	// Номер дома проверяется с жестким порогом.
	field, ok = m.Match(Tokenize("13"), []string{"Brest", "Pushkina", "12"})
	assert.True(t, ok)
	assert.Equal(t, "house_number", field)

	_, ok = m.Match(Tokenize("99"), []string{"Brest", "Pushkina", "12"})
	assert.False(t, ok)
}

func TestMatcherSkipsEmptyFields(t *testing.T) {
	m := NewMatcher(
		Field{Name: "city", Threshold: 3},
		Field{Name: "house_number", Threshold: 1},
	)

	// Пустой город не должен совпадать даже с коротким токеном запроса.
	_, ok := m.Match(Tokenize("ab"), []string{"", ""})
	assert.False(t, ok)

	field, ok := m.Match(Tokenize("7"), []string{"", "7"})
	assert.True(t, ok)
	assert.Equal(t, "house_number", field)
}

func TestMatcherFewerValuesThanFields(t *testing.T) {
	m := NewMatcher(
		Field{Name: "city", Threshold: 3},
		Field{Name: "street", Threshold: 3},
	)

	_, ok := m.Match(Tokenize("minsk"), []string{})
	assert.False(t, ok)
}
