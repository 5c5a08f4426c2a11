package postgres

import (
	"testing"

	"brokerage-service/internal/core/port"

	"github.com/stretchr/testify/assert"
)

func TestApplyPropertyFiltersEmpty(t *testing.T) {
	where, args := applyPropertyFilters(port.PropertyFilters{})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestApplyPropertyFiltersAll(t *testing.T) {
	where, args := applyPropertyFilters(port.PropertyFilters{
		City:         "Минск",
		Street:       "Ленина",
		PropertyType: "apartment",
	})

	assert.Equal(t, "WHERE LOWER(p.city) = LOWER($1) AND p.street ILIKE $2 AND p.type = $3", where)
	assert.Equal(t, []interface{}{"Минск", "%Ленина%", "apartment"}, args)
}

func TestApplyPropertyFiltersPartial(t *testing.T) {
	where, args := applyPropertyFilters(port.PropertyFilters{PropertyType: "land"})

	assert.Equal(t, "WHERE p.type = $1", where)
	assert.Equal(t, []interface{}{"land"}, args)
}
