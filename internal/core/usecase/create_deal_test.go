package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDealStorage повторяет семантику реального хранилища:
// связывание атомарно, каждая сторона участвует максимум в одной сделке.
type fakeDealStorage struct {
	mu sync.Mutex

	knownNeeds  map[uuid.UUID]bool
	knownOffers map[uuid.UUID]bool
	boundNeeds  map[uuid.UUID]bool
	boundOffers map[uuid.UUID]bool
	deals       []domain.Deal
}

func newFakeDealStorage(needIDs, offerIDs []uuid.UUID) *fakeDealStorage {
	s := &fakeDealStorage{
		knownNeeds:  make(map[uuid.UUID]bool),
		knownOffers: make(map[uuid.UUID]bool),
		boundNeeds:  make(map[uuid.UUID]bool),
		boundOffers: make(map[uuid.UUID]bool),
	}
	for _, id := range needIDs {
		s.knownNeeds[id] = true
	}
	for _, id := range offerIDs {
		s.knownOffers[id] = true
	}
	return s
}

func (s *fakeDealStorage) Create(_ context.Context, needID, offerID uuid.UUID) (*domain.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.knownNeeds[needID] || !s.knownOffers[offerID] {
		return nil, domain.ErrNotFound
	}
	if s.boundNeeds[needID] || s.boundOffers[offerID] {
		return nil, domain.ErrAlreadyBound
	}

	s.boundNeeds[needID] = true
	s.boundOffers[offerID] = true
	deal := domain.Deal{ID: uuid.New(), NeedID: needID, OfferID: offerID, CreatedAt: time.Now()}
	s.deals = append(s.deals, deal)
	return &deal, nil
}

func (s *fakeDealStorage) GetByID(context.Context, uuid.UUID) (*domain.DealDetails, error) {
	return nil, domain.ErrNotFound
}

func (s *fakeDealStorage) List(context.Context, int, int) ([]domain.DealDetails, error) {
	return []domain.DealDetails{}, nil
}

type fakeDealEvents struct {
	mu        sync.Mutex
	published []domain.Deal
	err       error
}

func (e *fakeDealEvents) PublishDealCreated(_ context.Context, deal domain.Deal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return e.err
	}
	e.published = append(e.published, deal)
	return nil
}

func TestCreateDealBindsBothSides(t *testing.T) {
	needID, offerID := uuid.New(), uuid.New()
	storage := newFakeDealStorage([]uuid.UUID{needID}, []uuid.UUID{offerID})
	events := &fakeDealEvents{}
	uc := NewCreateDealUseCase(storage, events)

	deal, err := uc.Execute(context.Background(), needID, offerID)

	require.NoError(t, err)
	require.NotNil(t, deal)
	assert.Equal(t, needID, deal.NeedID)
	assert.Equal(t, offerID, deal.OfferID)
	assert.True(t, storage.boundNeeds[needID])
	assert.True(t, storage.boundOffers[offerID])

	require.Len(t, events.published, 1)
	assert.Equal(t, deal.ID, events.published[0].ID)
}

func TestCreateDealRequiresBothIDs(t *testing.T) {
	storage := newFakeDealStorage(nil, nil)
	uc := NewCreateDealUseCase(storage, &fakeDealEvents{})

	_, err := uc.Execute(context.Background(), uuid.Nil, uuid.New())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), uuid.New(), uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateDealUnknownSide(t *testing.T) {
	needID := uuid.New()
	storage := newFakeDealStorage([]uuid.UUID{needID}, nil)
	uc := NewCreateDealUseCase(storage, &fakeDealEvents{})

	_, err := uc.Execute(context.Background(), needID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateDealBoundSideRejected(t *testing.T) {
	needID := uuid.New()
	offers := []uuid.UUID{uuid.New(), uuid.New()}
	storage := newFakeDealStorage([]uuid.UUID{needID}, offers)
	events := &fakeDealEvents{}
	uc := NewCreateDealUseCase(storage, events)

	_, err := uc.Execute(context.Background(), needID, offers[0])
	require.NoError(t, err)

	// Повторная попытка с той же потребностью и другим предложением.
	_, err = uc.Execute(context.Background(), needID, offers[1])
	assert.ErrorIs(t, err, domain.ErrAlreadyBound)
	assert.Len(t, events.published, 1)
}

func TestCreateDealPublishFailureDoesNotUndoDeal(t *testing.T) {
	needID, offerID := uuid.New(), uuid.New()
	storage := newFakeDealStorage([]uuid.UUID{needID}, []uuid.UUID{offerID})
	events := &fakeDealEvents{err: errors.New("broker is down")}
	uc := NewCreateDealUseCase(storage, events)

	deal, err := uc.Execute(context.Background(), needID, offerID)

	require.NoError(t, err)
	require.NotNil(t, deal)
	assert.True(t, storage.boundNeeds[needID])
}

func TestCreateDealConcurrentSameNeed(t *testing.T) {
	const attempts = 16

	needID := uuid.New()
	offerIDs := make([]uuid.UUID, attempts)
	for i := range offerIDs {
		offerIDs[i] = uuid.New()
	}
	storage := newFakeDealStorage([]uuid.UUID{needID}, offerIDs)
	uc := NewCreateDealUseCase(storage, &fakeDealEvents{})

	var wg sync.WaitGroup
	errsCh := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(offerID uuid.UUID) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), needID, offerID)
			errsCh <- err
		}(offerIDs[i])
	}
	wg.Wait()
	close(errsCh)

	succeeded := 0
	for err := range errsCh {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domain.ErrAlreadyBound)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, storage.deals, 1)
}
