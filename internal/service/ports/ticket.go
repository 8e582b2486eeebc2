package ports

import (
	"context"

	"github.com/hajt/ticket-seller/internal/domain"
)

type TicketKindRepo interface {
	Create(ctx context.Context, k *domain.TicketKind) error
	GetByID(ctx context.Context, id string) (*domain.TicketKind, error)
	List(ctx context.Context) ([]*domain.TicketKind, error)
	ListAvailable(ctx context.Context) ([]*domain.AvailableKind, error)
}

type TicketRepo interface {
	// TopUp ensures the persisted unit count for a kind reaches quantity,
	// creating only the shortfall. Returns the number of units created.
	TopUp(ctx context.Context, kindID string, quantity int) (int, error)
	Counts(ctx context.Context, kindID string) (*domain.TicketCounts, error)
}
