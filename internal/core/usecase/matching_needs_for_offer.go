package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

// MatchingNeedsForOfferUseCase подбирает свободные потребности,
// которые удовлетворяет предложение.
type MatchingNeedsForOfferUseCase struct {
	offers port.OfferStoragePort
	needs  port.NeedStoragePort
}

func NewMatchingNeedsForOfferUseCase(offers port.OfferStoragePort, needs port.NeedStoragePort) *MatchingNeedsForOfferUseCase {
	return &MatchingNeedsForOfferUseCase{offers: offers, needs: needs}
}

func (uc *MatchingNeedsForOfferUseCase) Execute(ctx context.Context, offerID uuid.UUID) ([]domain.NeedDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "MatchingNeedsForOffer",
		"offer_id": offerID.String(),
	})

	ucLogger.Info("Use case started", nil)

	offer, err := uc.offers.GetByID(ctx, offerID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	needs, err := uc.needs.ListAll(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to load needs for matching: %w", err)
	}

	matched := make([]domain.NeedDetails, 0)
	for _, n := range needs {
		if n.Status != domain.ListingStatusOpen {
			continue
		}
		if domain.NeedMatchesOffer(n.Need, offer.Offer, offer.Property) {
			matched = append(matched, n)
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"matched": len(matched)})
	return matched, nil
}
