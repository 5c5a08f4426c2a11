package usecase

import (
	"context"
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOfferStorage struct {
	offers []domain.OfferDetails
}

func (s *fakeOfferStorage) Create(context.Context, domain.Offer) error { return nil }
func (s *fakeOfferStorage) Update(context.Context, domain.Offer) error { return nil }
func (s *fakeOfferStorage) Delete(context.Context, uuid.UUID) error    { return nil }

func (s *fakeOfferStorage) GetByID(_ context.Context, id uuid.UUID) (*domain.OfferDetails, error) {
	for _, o := range s.offers {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeOfferStorage) List(context.Context, int, int) ([]domain.OfferDetails, error) {
	return s.offers, nil
}

func (s *fakeOfferStorage) ListAll(context.Context) ([]domain.OfferDetails, error) {
	return s.offers, nil
}

type fakeNeedStorage struct {
	needs []domain.NeedDetails
}

func (s *fakeNeedStorage) Create(context.Context, domain.Need) error { return nil }
func (s *fakeNeedStorage) Update(context.Context, domain.Need) error { return nil }
func (s *fakeNeedStorage) Delete(context.Context, uuid.UUID) error   { return nil }

func (s *fakeNeedStorage) GetByID(_ context.Context, id uuid.UUID) (*domain.NeedDetails, error) {
	for _, n := range s.needs {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeNeedStorage) List(context.Context, int, int) ([]domain.NeedDetails, error) {
	return s.needs, nil
}

func (s *fakeNeedStorage) ListAll(context.Context) ([]domain.NeedDetails, error) {
	return s.needs, nil
}

func apartmentOffer(price int64, rooms int, area float64) domain.OfferDetails {
	return domain.OfferDetails{
		Offer: domain.Offer{
			ID:         uuid.New(),
			ClientID:   uuid.New(),
			RealtorID:  uuid.New(),
			PropertyID: uuid.New(),
			Price:      price,
			Status:     domain.ListingStatusOpen,
		},
		Property: domain.Property{
			ID:   uuid.New(),
			Type: domain.PropertyTypeApartment,
			City: "Минск",
			Details: domain.ApartmentDetails{
				Rooms: &rooms,
				Area:  &area,
			},
		},
	}
}

func apartmentNeed(minPrice, maxPrice int64, status domain.ListingStatus) domain.NeedDetails {
	return domain.NeedDetails{
		Need: domain.Need{
			ID:           uuid.New(),
			ClientID:     uuid.New(),
			RealtorID:    uuid.New(),
			PropertyType: domain.PropertyTypeApartment,
			MinPrice:     minPrice,
			MaxPrice:     maxPrice,
			Status:       status,
		},
	}
}

func TestMatchingNeedsForOffer(t *testing.T) {
	offer := apartmentOffer(90000, 2, 55.0)

	matching := apartmentNeed(80000, 100000, domain.ListingStatusOpen)
	tooCheap := apartmentNeed(30000, 50000, domain.ListingStatusOpen)
	bound := apartmentNeed(80000, 100000, domain.ListingStatusBound)

	wrongType := apartmentNeed(80000, 100000, domain.ListingStatusOpen)
	wrongType.PropertyType = domain.PropertyTypeLand

	offers := &fakeOfferStorage{offers: []domain.OfferDetails{offer}}
	needs := &fakeNeedStorage{needs: []domain.NeedDetails{matching, tooCheap, bound, wrongType}}
	uc := NewMatchingNeedsForOfferUseCase(offers, needs)

	found, err := uc.Execute(context.Background(), offer.ID)

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, matching.ID, found[0].ID)
}

func TestMatchingNeedsForOfferRespectsAttributeBounds(t *testing.T) {
	offer := apartmentOffer(90000, 2, 55.0)

	minRooms := 3
	tooFewRooms := apartmentNeed(80000, 100000, domain.ListingStatusOpen)
	tooFewRooms.MinRooms = &minRooms

	maxArea := 60.0
	fitsArea := apartmentNeed(80000, 100000, domain.ListingStatusOpen)
	fitsArea.MaxArea = &maxArea

	offers := &fakeOfferStorage{offers: []domain.OfferDetails{offer}}
	needs := &fakeNeedStorage{needs: []domain.NeedDetails{tooFewRooms, fitsArea}}
	uc := NewMatchingNeedsForOfferUseCase(offers, needs)

	found, err := uc.Execute(context.Background(), offer.ID)

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, fitsArea.ID, found[0].ID)
}

func TestMatchingNeedsForUnknownOffer(t *testing.T) {
	uc := NewMatchingNeedsForOfferUseCase(&fakeOfferStorage{}, &fakeNeedStorage{})

	_, err := uc.Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
