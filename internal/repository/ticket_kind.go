package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hajt/ticket-seller/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TicketKindRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketKindRepo(db *dbpg.DB) *TicketKindRepository {
	return &TicketKindRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TicketKindRepository) Create(ctx context.Context, k *domain.TicketKind) error {
	query := `INSERT INTO ticket_kinds (id, event_id, kind, price, quantity, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		k.ID, k.EventID, k.Kind, k.Price, k.Quantity, k.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert ticket kind: %w", err)
	}

	return nil
}

func (r *TicketKindRepository) GetByID(ctx context.Context, id string) (*domain.TicketKind, error) {
	query := `SELECT id, event_id, kind, price, quantity, created_at
			  FROM ticket_kinds
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket kind: %w", err)
	}

	var k domain.TicketKind
	if err = row.Scan(&k.ID, &k.EventID, &k.Kind, &k.Price, &k.Quantity, &k.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketKindNotFound
		}
		return nil, fmt.Errorf("scan ticket kind: %w", err)
	}

	return &k, nil
}

func (r *TicketKindRepository) List(ctx context.Context) ([]*domain.TicketKind, error) {
	query := `SELECT id, event_id, kind, price, quantity, created_at
			  FROM ticket_kinds
			  ORDER BY kind, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list ticket kinds: %w", err)
	}
	defer rows.Close()

	var res []*domain.TicketKind
	for rows.Next() {
		var k domain.TicketKind
		if err = rows.Scan(&k.ID, &k.EventID, &k.Kind, &k.Price, &k.Quantity, &k.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket kind: %w", err)
		}
		res = append(res, &k)
	}

	return res, rows.Err()
}

func (r *TicketKindRepository) ListAvailable(ctx context.Context) ([]*domain.AvailableKind, error) {
	// Доступен вид билетов, у которого живых броней меньше, чем quantity.
	query := `
		SELECT k.id, k.event_id, k.kind, k.price, k.quantity, k.created_at, e.name,
			   k.quantity - COUNT(res.id) FILTER (WHERE res.ticket_id IS NOT NULL) AS left_count
		FROM ticket_kinds k
		JOIN events e ON e.id = k.event_id
		LEFT JOIN reservations res ON res.ticket_kind_id = k.id
		GROUP BY k.id, e.name
		HAVING COUNT(res.id) FILTER (WHERE res.ticket_id IS NOT NULL) < k.quantity
		ORDER BY k.kind, k.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list available ticket kinds: %w", err)
	}
	defer rows.Close()

	var res []*domain.AvailableKind
	for rows.Next() {
		var a domain.AvailableKind
		if err = rows.Scan(
			&a.Kind.ID, &a.Kind.EventID, &a.Kind.Kind, &a.Kind.Price,
			&a.Kind.Quantity, &a.Kind.CreatedAt, &a.EventName, &a.Left,
		); err != nil {
			return nil, fmt.Errorf("scan available ticket kind: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}
