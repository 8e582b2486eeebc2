package ports

import (
	"context"
	"time"

	"github.com/hajt/ticket-seller/internal/domain"
	"github.com/shopspring/decimal"
)

type ReservationRepo interface {
	// Claim atomically selects one free unit of the kind and creates a
	// hold on it. Fails with domain.ErrNoAvailableTickets when no free
	// unit exists at the moment of the attempt.
	Claim(ctx context.Context, kindID string, now, expiresAt time.Time) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// Pay locks the reservation row, verifies it is unpaid and still
	// holds its unit, invokes charge with the unit price and flips the
	// paid flag when charge returns nil. The row lock is held across the
	// whole sequence so a concurrent release cannot interleave.
	Pay(ctx context.Context, id string, charge func(price decimal.Decimal) error) error
	// ReleaseExpired clears the ticket reference of every lapsed unpaid
	// hold in a single bulk update and returns the number released.
	ReleaseExpired(ctx context.Context, now time.Time) (int, error)
	SummaryByKind(ctx context.Context, kindID string) (*domain.ReservationSummary, error)
	SummaryByEvent(ctx context.Context, eventID string) (*domain.ReservationSummary, error)
}
