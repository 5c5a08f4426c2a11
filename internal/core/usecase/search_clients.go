package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
	"brokerage-service/pkg/fuzzy"
)

// Допустимое число опечаток в части ФИО.
const nameThreshold = 3

// SearchClientsUseCase — нечеткий поиск клиентов по ФИО.
// Запрос разбивается на токены, запись подходит, если хотя бы один токен
// отличается от фамилии, имени или отчества не более чем на nameThreshold.
type SearchClientsUseCase struct {
	storage port.ClientStoragePort
}

func NewSearchClientsUseCase(storage port.ClientStoragePort) *SearchClientsUseCase {
	return &SearchClientsUseCase{storage: storage}
}

func (uc *SearchClientsUseCase) Execute(ctx context.Context, query string) ([]domain.Client, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchClients",
		"query":    query,
	})

	ucLogger.Info("Use case started", nil)

	tokens := fuzzy.Tokenize(query)
	if len(tokens) == 0 {
		ucLogger.Warn("Validation failed: empty search query", nil)
		return nil, domain.InvalidInput("search query is required")
	}

	clients, err := uc.storage.ListAll(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to load clients for search: %w", err)
	}

	matched := make([]domain.Client, 0)
	for _, c := range clients {
		parts := make([]string, 0, 3)
		for _, p := range c.NameParts() {
			parts = append(parts, fuzzy.Tokenize(p)...)
		}
		if fuzzy.MatchesAny(tokens, parts, nameThreshold) {
			matched = append(matched, c)
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"matched": len(matched)})
	return matched, nil
}
