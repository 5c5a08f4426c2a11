package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

// MatchingOffersForNeedUseCase подбирает свободные предложения,
// удовлетворяющие потребность.
type MatchingOffersForNeedUseCase struct {
	needs  port.NeedStoragePort
	offers port.OfferStoragePort
}

func NewMatchingOffersForNeedUseCase(needs port.NeedStoragePort, offers port.OfferStoragePort) *MatchingOffersForNeedUseCase {
	return &MatchingOffersForNeedUseCase{needs: needs, offers: offers}
}

func (uc *MatchingOffersForNeedUseCase) Execute(ctx context.Context, needID uuid.UUID) ([]domain.OfferDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "MatchingOffersForNeed",
		"need_id":  needID.String(),
	})

	ucLogger.Info("Use case started", nil)

	need, err := uc.needs.GetByID(ctx, needID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	offers, err := uc.offers.ListAll(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to load offers for matching: %w", err)
	}

	matched := make([]domain.OfferDetails, 0)
	for _, o := range offers {
		if o.Status != domain.ListingStatusOpen {
			continue
		}
		if domain.NeedMatchesOffer(need.Need, o.Offer, o.Property) {
			matched = append(matched, o)
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"matched": len(matched)})
	return matched, nil
}
