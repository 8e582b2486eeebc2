package service

import (
	"context"
	"testing"
	"time"

	"github.com/hajt/ticket-seller/internal/domain"
	"github.com/hajt/ticket-seller/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_Pay_Success(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	provider := mocks.NewMockPaymentProvider(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(reservationRepo, provider, notifier, "USD", log)

	price := decimal.NewFromInt(100)
	reservationRepo.EXPECT().Pay(mock.Anything, "r1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, charge func(decimal.Decimal) error) error {
			return charge(price)
		})
	provider.EXPECT().Charge(mock.Anything, price, "tok", "USD").Return(price, nil)
	notifier.EXPECT().NotifyPaymentReceived(mock.Anything, "r1", price, "USD").Return()

	err := svc.Pay(context.Background(), "r1", price, "USD", "tok")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_Pay_DefaultCurrency(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	provider := mocks.NewMockPaymentProvider(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(reservationRepo, provider, notifier, "EUR", log)

	price := decimal.NewFromInt(50)
	reservationRepo.EXPECT().Pay(mock.Anything, "r1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, charge func(decimal.Decimal) error) error {
			return charge(price)
		})
	provider.EXPECT().Charge(mock.Anything, price, "tok", "EUR").Return(price, nil)
	notifier.EXPECT().NotifyPaymentReceived(mock.Anything, "r1", price, "EUR").Return()

	err := svc.Pay(context.Background(), "r1", price, "", "tok")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestPaymentService_Pay_AmountMismatch(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	provider := mocks.NewMockPaymentProvider(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(reservationRepo, provider, notifier, "USD", log)

	price := decimal.NewFromInt(100)
	wrong := decimal.NewFromInt(90)
	reservationRepo.EXPECT().Pay(mock.Anything, "r1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, charge func(decimal.Decimal) error) error {
			return charge(price)
		})
	provider.EXPECT().Charge(mock.Anything, wrong, "tok", "USD").Return(wrong, nil)

	err := svc.Pay(context.Background(), "r1", wrong, "USD", "tok")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAmountMismatch)
}

func TestPaymentService_Pay_Declined(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	provider := mocks.NewMockPaymentProvider(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(reservationRepo, provider, notifier, "USD", log)

	price := decimal.NewFromInt(100)
	reservationRepo.EXPECT().Pay(mock.Anything, "r1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, charge func(decimal.Decimal) error) error {
			return charge(price)
		})
	provider.EXPECT().Charge(mock.Anything, price, "tok", "USD").
		Return(decimal.Zero, domain.ErrPaymentDeclined)

	err := svc.Pay(context.Background(), "r1", price, "USD", "tok")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentDeclined)
}

func TestPaymentService_Pay_AlreadyPaid(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	provider := mocks.NewMockPaymentProvider(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(reservationRepo, provider, notifier, "USD", log)

	reservationRepo.EXPECT().Pay(mock.Anything, "r1", mock.Anything).Return(domain.ErrReservationPaid)

	err := svc.Pay(context.Background(), "r1", decimal.NewFromInt(100), "USD", "tok")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationPaid)
}

func TestPaymentService_Pay_ReservationNotValid(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	provider := mocks.NewMockPaymentProvider(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(reservationRepo, provider, notifier, "USD", log)

	reservationRepo.EXPECT().Pay(mock.Anything, "r1", mock.Anything).Return(domain.ErrReservationNotValid)

	err := svc.Pay(context.Background(), "r1", decimal.NewFromInt(100), "USD", "tok")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotValid)
}

func TestPaymentService_Pay_NotFound(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	provider := mocks.NewMockPaymentProvider(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(reservationRepo, provider, notifier, "USD", log)

	reservationRepo.EXPECT().Pay(mock.Anything, "missing", mock.Anything).Return(domain.ErrReservationNotFound)

	err := svc.Pay(context.Background(), "missing", decimal.NewFromInt(100), "USD", "tok")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}
