package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hajt/ticket-seller/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// TopUp доводит число юнитов вида до quantity, создавая только недостающие.
// Повторный вызов с тем же quantity ничего не создаёт.
func (r *TicketRepository) TopUp(ctx context.Context, kindID string, quantity int) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем строку вида: конкурентные top-up выполняются по очереди.
	lockQuery := `SELECT id FROM ticket_kinds WHERE id = $1 FOR UPDATE`
	var lockedID string
	if err = tx.QueryRowContext(ctx, lockQuery, kindID).Scan(&lockedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrTicketKindNotFound
		}
		return 0, fmt.Errorf("lock ticket kind: %w", err)
	}

	var existing int
	countQuery := `SELECT COUNT(*) FROM tickets WHERE ticket_kind_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, kindID).Scan(&existing); err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}

	shortfall := quantity - existing
	if shortfall <= 0 {
		return 0, tx.Commit()
	}

	ids := make([]string, shortfall)
	for i := range ids {
		ids[i] = uuid.New().String()
	}

	insertQuery := `INSERT INTO tickets (id, ticket_kind_id, created_at)
					SELECT unnest($1::uuid[]), $2, $3`
	if _, err = tx.ExecContext(ctx, insertQuery, pq.Array(ids), kindID, time.Now().UTC()); err != nil {
		return 0, fmt.Errorf("insert tickets: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return shortfall, nil
}

func (r *TicketRepository) Counts(ctx context.Context, kindID string) (*domain.TicketCounts, error) {
	// Состояние юнита выводится из строки брони: sold — оплаченная бронь,
	// held — неоплаченная, free — брони нет.
	query := `
		SELECT COUNT(t.id),
			   COUNT(t.id) FILTER (WHERE res.id IS NULL),
			   COUNT(t.id) FILTER (WHERE res.id IS NOT NULL AND NOT res.paid),
			   COUNT(t.id) FILTER (WHERE res.id IS NOT NULL AND res.paid)
		FROM ticket_kinds k
		LEFT JOIN tickets t ON t.ticket_kind_id = k.id
		LEFT JOIN reservations res ON res.ticket_id = t.id
		WHERE k.id = $1
		GROUP BY k.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, kindID)
	if err != nil {
		return nil, fmt.Errorf("count tickets: %w", err)
	}

	var c domain.TicketCounts
	if err = row.Scan(&c.Total, &c.Available, &c.Held, &c.Sold); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketKindNotFound
		}
		return nil, fmt.Errorf("scan ticket counts: %w", err)
	}

	return &c, nil
}
