package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hajt/ticket-seller/internal/clock"
	"github.com/hajt/ticket-seller/internal/domain"
	"github.com/hajt/ticket-seller/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultHoldDuration = 15 * time.Minute

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	notifier        ports.OpsNotifier
	clock           clock.Clock
	holdDuration    time.Duration
	logger          logger.Logger
}

type ReservationServiceOption func(*ReservationService)

// WithHoldDuration overrides the default 15-minute hold.
func WithHoldDuration(d time.Duration) ReservationServiceOption {
	return func(s *ReservationService) {
		if d > 0 {
			s.holdDuration = d
		}
	}
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	notifier ports.OpsNotifier,
	clk clock.Clock,
	logger logger.Logger,
	opts ...ReservationServiceOption,
) *ReservationService {
	s := &ReservationService{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		clock:           clk,
		holdDuration:    defaultHoldDuration,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ReservationService) Reserve(ctx context.Context, kindID string) (*domain.Reservation, error) {
	now := s.clock.Now()
	res, err := s.reservationRepo.Claim(ctx, kindID, now, now.Add(s.holdDuration))
	if err != nil {
		return nil, fmt.Errorf("claim ticket: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("ticket_kind_id", kindID),
	)

	return res, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

// ReleaseExpired возвращает просроченные неоплаченные брони в инвентарь.
// Отсутствие работы — нормальный исход, не ошибка.
func (s *ReservationService) ReleaseExpired(ctx context.Context) (int, error) {
	released, err := s.reservationRepo.ReleaseExpired(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("release expired: %w", err)
	}

	if released > 0 {
		s.logger.Info("expired reservations released",
			logger.Int("count", released),
		)
		go s.notifier.NotifyReservationsReleased(context.WithoutCancel(ctx), released)
	}

	return released, nil
}

func (s *ReservationService) SummaryForKind(ctx context.Context, kindID string) (*domain.ReservationSummary, error) {
	return s.reservationRepo.SummaryByKind(ctx, kindID)
}

func (s *ReservationService) SummaryForEvent(ctx context.Context, eventID string) (*domain.ReservationSummary, error) {
	return s.reservationRepo.SummaryByEvent(ctx, eventID)
}
