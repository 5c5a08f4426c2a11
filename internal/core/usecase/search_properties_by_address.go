package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
	"brokerage-service/pkg/fuzzy"
)

// SearchPropertiesByAddressUseCase — нечеткий поиск объектов по адресу.
// Компоненты адреса проверяются по приоритету: город и улица допускают
// до трех опечаток, номера дома и квартиры — одну. Объект попадает в
// выдачу по первому совпавшему компоненту.
type SearchPropertiesByAddressUseCase struct {
	storage port.PropertyStoragePort
	matcher *fuzzy.Matcher
}

func NewSearchPropertiesByAddressUseCase(storage port.PropertyStoragePort) *SearchPropertiesByAddressUseCase {
	return &SearchPropertiesByAddressUseCase{
		storage: storage,
		matcher: fuzzy.NewMatcher(
			fuzzy.Field{Name: "city", Threshold: 3},
			fuzzy.Field{Name: "street", Threshold: 3},
			fuzzy.Field{Name: "house_number", Threshold: 1},
			fuzzy.Field{Name: "apartment_number", Threshold: 1},
		),
	}
}

func (uc *SearchPropertiesByAddressUseCase) Execute(ctx context.Context, query string) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchPropertiesByAddress",
		"query":    query,
	})

	ucLogger.Info("Use case started", nil)

	tokens := fuzzy.Tokenize(query)
	if len(tokens) == 0 {
		ucLogger.Warn("Validation failed: empty search query", nil)
		return nil, domain.InvalidInput("search query is required")
	}

	properties, err := uc.storage.ListAll(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to load properties for search: %w", err)
	}

	matched := make([]domain.Property, 0)
	for _, p := range properties {
		values := []string{p.City, p.Street, p.HouseNumber, p.ApartmentNumber}
		if _, ok := uc.matcher.Match(tokens, values); ok {
			matched = append(matched, p)
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"matched": len(matched)})
	return matched, nil
}
