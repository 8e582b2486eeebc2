package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hajt/ticket-seller/internal/clock"
	"github.com/hajt/ticket-seller/internal/domain"
	"github.com/hajt/ticket-seller/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeReservationStore — потокобезопасная in-memory реализация
// ReservationRepo с теми же гарантиями, что и SQL-слой: захват юнита и
// запись paid атомарны, charge-колбэк выполняется под блокировкой брони.
type fakeReservationStore struct {
	mu           sync.Mutex
	price        decimal.Decimal
	free         []string
	reservations map[string]*domain.Reservation
}

func newFakeReservationStore(units int, price decimal.Decimal) *fakeReservationStore {
	free := make([]string, 0, units)
	for i := 0; i < units; i++ {
		free = append(free, fmt.Sprintf("t%d", i))
	}
	return &fakeReservationStore{
		price:        price,
		free:         free,
		reservations: make(map[string]*domain.Reservation),
	}
}

func (s *fakeReservationStore) Claim(_ context.Context, kindID string, now, expiresAt time.Time) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.free) == 0 {
		return nil, domain.ErrNoAvailableTickets
	}

	ticketID := s.free[0]
	s.free = s.free[1:]

	res := &domain.Reservation{
		ID:           fmt.Sprintf("r%d", len(s.reservations)),
		TicketID:     &ticketID,
		TicketKindID: kindID,
		CreatedAt:    now,
		ExpiresAt:    expiresAt,
	}
	s.reservations[res.ID] = res

	copied := *res
	return &copied, nil
}

func (s *fakeReservationStore) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (s *fakeReservationStore) Pay(_ context.Context, id string, charge func(price decimal.Decimal) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[id]
	if !ok {
		return domain.ErrReservationNotFound
	}
	if res.Paid {
		return domain.ErrReservationPaid
	}
	if res.TicketID == nil {
		return domain.ErrReservationNotValid
	}

	if err := charge(s.price); err != nil {
		return err
	}

	res.Paid = true
	return nil
}

func (s *fakeReservationStore) ReleaseExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	released := 0
	for _, res := range s.reservations {
		if !res.Paid && res.TicketID != nil && res.ExpiresAt.Before(now) {
			s.free = append(s.free, *res.TicketID)
			res.TicketID = nil
			released++
		}
	}
	return released, nil
}

func (s *fakeReservationStore) SummaryByKind(_ context.Context, _ string) (*domain.ReservationSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary(), nil
}

func (s *fakeReservationStore) SummaryByEvent(_ context.Context, _ string) (*domain.ReservationSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary(), nil
}

func (s *fakeReservationStore) summary() *domain.ReservationSummary {
	sum := &domain.ReservationSummary{}
	for _, res := range s.reservations {
		sum.Total++
		if res.TicketID != nil {
			sum.Valid++
		} else {
			sum.Invalid++
		}
		if res.Paid {
			sum.Paid++
		} else if res.TicketID != nil {
			sum.Unpaid++
		}
	}
	return sum
}

func TestConcurrentReserve_NeverOversells(t *testing.T) {
	const units = 10
	const attempts = 50

	store := newFakeReservationStore(units, decimal.NewFromInt(100))
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(store, notifier, clock.NewSystem(), log)

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Reserve(context.Background(), "k1")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, outOfStock int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrNoAvailableTickets):
			outOfStock++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, units, succeeded)
	assert.Equal(t, attempts-units, outOfStock)

	summary, err := store.SummaryByKind(context.Background(), "k1")
	require.NoError(t, err)
	assert.Equal(t, units, summary.Valid)
}

func TestConcurrentPayAndRelease_SingleWinner(t *testing.T) {
	const rounds = 20

	for i := 0; i < rounds; i++ {
		store := newFakeReservationStore(1, decimal.NewFromInt(100))
		notifier := mocks.NewMockOpsNotifier(t)
		provider := mocks.NewMockPaymentProvider(t)
		log := newTestLogger(t)

		now := time.Now().UTC()
		past := clock.NewFixed(now.Add(time.Hour)) // любой hold уже просрочен

		reservationSvc := NewReservationService(store, notifier, past, log)
		paymentSvc := NewPaymentService(store, provider, notifier, "USD", log)

		provider.EXPECT().Charge(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(decimal.NewFromInt(100), nil).Maybe()
		notifier.EXPECT().NotifyPaymentReceived(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
		notifier.EXPECT().NotifyReservationsReleased(mock.Anything, mock.Anything).Return().Maybe()

		res, err := store.Claim(context.Background(), "k1", now, now.Add(time.Minute))
		require.NoError(t, err)

		var wg sync.WaitGroup
		var payErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			payErr = paymentSvc.Pay(context.Background(), res.ID, decimal.NewFromInt(100), "USD", "tok")
		}()
		go func() {
			defer wg.Done()
			_, _ = reservationSvc.ReleaseExpired(context.Background())
		}()
		wg.Wait()

		final, err := store.GetByID(context.Background(), res.ID)
		require.NoError(t, err)

		if payErr == nil {
			// платёж выиграл гонку: бронь оплачена и держит юнит
			assert.True(t, final.Paid)
			require.NotNil(t, final.TicketID)
		} else {
			// свипер успел раньше
			assert.ErrorIs(t, payErr, domain.ErrReservationNotValid)
			assert.False(t, final.Paid)
			assert.Nil(t, final.TicketID)
		}

		// инвариант: оплаченная бронь никогда не остаётся без юнита
		assert.False(t, final.Paid && final.TicketID == nil)
	}

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestReleaseExpired_ReturnsUnitsToPool(t *testing.T) {
	store := newFakeReservationStore(2, decimal.NewFromInt(100))
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	now := time.Now().UTC()

	_, err := store.Claim(context.Background(), "k1", now.Add(-time.Hour), now.Add(-45*time.Minute))
	require.NoError(t, err)
	_, err = store.Claim(context.Background(), "k1", now.Add(-time.Hour), now.Add(-45*time.Minute))
	require.NoError(t, err)

	notifier.EXPECT().NotifyReservationsReleased(mock.Anything, 2).Return()

	svc := NewReservationService(store, notifier, clock.NewFixed(now), log)

	released, err := svc.ReleaseExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, released)

	// юниты вернулись: новый резерв проходит
	_, err = svc.Reserve(context.Background(), "k1")
	require.NoError(t, err)

	summary, err := store.SummaryByKind(context.Background(), "k1")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Valid)
	assert.Equal(t, 2, summary.Invalid)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}
