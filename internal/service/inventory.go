package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hajt/ticket-seller/internal/domain"
	"github.com/hajt/ticket-seller/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// InventoryService владеет видами билетов и их юнитами.
type InventoryService struct {
	kindRepo   ports.TicketKindRepo
	ticketRepo ports.TicketRepo
	eventRepo  ports.EventRepo
	logger     logger.Logger
}

func NewInventoryService(
	kindRepo ports.TicketKindRepo,
	ticketRepo ports.TicketRepo,
	eventRepo ports.EventRepo,
	logger logger.Logger,
) *InventoryService {
	return &InventoryService{
		kindRepo:   kindRepo,
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		logger:     logger,
	}
}

// CreateTicketKind создаёт вид билетов и явным top-up генерирует его юниты.
func (s *InventoryService) CreateTicketKind(ctx context.Context, input domain.CreateTicketKindInput) (*domain.TicketKind, error) {
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	if _, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	kind := &domain.TicketKind{
		ID:        uuid.New().String(),
		EventID:   input.EventID,
		Kind:      input.Kind,
		Price:     input.Price,
		Quantity:  input.Quantity,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.kindRepo.Create(ctx, kind); err != nil {
		return nil, fmt.Errorf("create ticket kind: %w", err)
	}

	created, err := s.ticketRepo.TopUp(ctx, kind.ID, kind.Quantity)
	if err != nil {
		return nil, fmt.Errorf("top up tickets: %w", err)
	}

	s.logger.Info("ticket kind created",
		logger.String("ticket_kind_id", kind.ID),
		logger.String("kind", kind.Kind),
		logger.Int("units_created", created),
	)

	return kind, nil
}

// TopUp — идемпотентный доводчик числа юнитов до quantity вида.
func (s *InventoryService) TopUp(ctx context.Context, kindID string) (int, error) {
	kind, err := s.kindRepo.GetByID(ctx, kindID)
	if err != nil {
		return 0, fmt.Errorf("get ticket kind: %w", err)
	}

	created, err := s.ticketRepo.TopUp(ctx, kind.ID, kind.Quantity)
	if err != nil {
		return 0, fmt.Errorf("top up tickets: %w", err)
	}

	if created > 0 {
		s.logger.Info("ticket units topped up",
			logger.String("ticket_kind_id", kind.ID),
			logger.Int("units_created", created),
		)
	}

	return created, nil
}

func (s *InventoryService) GetTicketKind(ctx context.Context, id string) (*domain.TicketKindDetails, error) {
	kind, err := s.kindRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.ticketRepo.Counts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count tickets: %w", err)
	}

	return &domain.TicketKindDetails{Kind: *kind, Counts: *counts}, nil
}

func (s *InventoryService) ListTicketKinds(ctx context.Context) ([]*domain.TicketKind, error) {
	return s.kindRepo.List(ctx)
}

func (s *InventoryService) ListAvailable(ctx context.Context) ([]*domain.AvailableKind, error) {
	return s.kindRepo.ListAvailable(ctx)
}
