package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
	"brokerage-service/pkg/fuzzy"
)

// SearchRealtorsUseCase — нечеткий поиск риэлторов по ФИО.
// Правила те же, что и для клиентов: порог nameThreshold на часть ФИО.
type SearchRealtorsUseCase struct {
	storage port.RealtorStoragePort
}

func NewSearchRealtorsUseCase(storage port.RealtorStoragePort) *SearchRealtorsUseCase {
	return &SearchRealtorsUseCase{storage: storage}
}

func (uc *SearchRealtorsUseCase) Execute(ctx context.Context, query string) ([]domain.Realtor, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchRealtors",
		"query":    query,
	})

	ucLogger.Info("Use case started", nil)

	tokens := fuzzy.Tokenize(query)
	if len(tokens) == 0 {
		ucLogger.Warn("Validation failed: empty search query", nil)
		return nil, domain.InvalidInput("search query is required")
	}

	realtors, err := uc.storage.ListAll(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to load realtors for search: %w", err)
	}

	matched := make([]domain.Realtor, 0)
	for _, r := range realtors {
		parts := make([]string, 0, 3)
		for _, p := range r.NameParts() {
			parts = append(parts, fuzzy.Tokenize(p)...)
		}
		if fuzzy.MatchesAny(tokens, parts, nameThreshold) {
			matched = append(matched, r)
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"matched": len(matched)})
	return matched, nil
}
