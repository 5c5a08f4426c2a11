package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDealCreatedEvent(t *testing.T) {
	body := []byte(`{
		"deal_id": "0b0338a6-3e52-44b4-a2f5-9f0bd2bdf401",
		"need_id": "f7e5f9d2-4308-4e26-a394-6a6a7a9f24bb",
		"offer_id": "98d8e298-98b7-4a0a-bc6d-3a2599f0c9e9",
		"created_at": "2026-08-29T12:00:00Z"
	}`)

	require.NoError(t, ValidateEvent("DealCreatedEvent", "1.0.0", body))
}

func TestValidateDealCreatedEventMissingField(t *testing.T) {
	body := []byte(`{
		"deal_id": "0b0338a6-3e52-44b4-a2f5-9f0bd2bdf401",
		"need_id": "f7e5f9d2-4308-4e26-a394-6a6a7a9f24bb"
	}`)

	err := ValidateEvent("DealCreatedEvent", "1.0.0", body)
	assert.Error(t, err)
}

func TestValidateEventUnknownSchema(t *testing.T) {
	err := ValidateEvent("UnknownEvent", "1.0.0", []byte(`{}`))
	assert.Error(t, err)
}

func TestValidateEventRejectsBrokenJSON(t *testing.T) {
	err := ValidateEvent("DealCreatedEvent", "1.0.0", []byte(`{broken`))
	assert.Error(t, err)
}
