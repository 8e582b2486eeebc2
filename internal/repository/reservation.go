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
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Claim захватывает один свободный юнит вида и создаёт на него бронь
// в одной транзакции. SKIP LOCKED разводит конкурентов по разным юнитам,
// уникальный индекс reservations(ticket_id) — последний рубеж.
func (r *ReservationRepository) Claim(ctx context.Context, kindID string, now, expiresAt time.Time) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var kindExists bool
	kindQuery := `SELECT EXISTS (SELECT 1 FROM ticket_kinds WHERE id = $1)`
	if err = tx.QueryRowContext(ctx, kindQuery, kindID).Scan(&kindExists); err != nil {
		return nil, fmt.Errorf("check ticket kind: %w", err)
	}
	if !kindExists {
		return nil, domain.ErrTicketKindNotFound
	}

	claimQuery := `SELECT t.id
				   FROM tickets t
				   LEFT JOIN reservations res ON res.ticket_id = t.id
				   WHERE t.ticket_kind_id = $1 AND res.id IS NULL
				   ORDER BY t.created_at, t.id
				   LIMIT 1
				   FOR UPDATE OF t SKIP LOCKED`
	var ticketID string
	if err = tx.QueryRowContext(ctx, claimQuery, kindID).Scan(&ticketID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoAvailableTickets
		}
		return nil, fmt.Errorf("select free ticket: %w", err)
	}

	res := &domain.Reservation{
		ID:           uuid.New().String(),
		TicketID:     &ticketID,
		TicketKindID: kindID,
		CreatedAt:    now,
		ExpiresAt:    expiresAt,
		Paid:         false,
	}

	insertQuery := `INSERT INTO reservations (id, ticket_id, ticket_kind_id, created_at, expires_at, paid)
					VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(
		ctx, insertQuery,
		res.ID, res.TicketID, res.TicketKindID, res.CreatedAt, res.ExpiresAt, res.Paid,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Проигранная гонка за последний юнит.
			return nil, domain.ErrNoAvailableTickets
		}
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT id, ticket_id, ticket_kind_id, created_at, expires_at, paid
			  FROM reservations
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	var res domain.Reservation
	if err = row.Scan(&res.ID, &res.TicketID, &res.TicketKindID, &res.CreatedAt, &res.ExpiresAt, &res.Paid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return &res, nil
}

// Pay держит блокировку строки брони на всё время платежа: bulk-release
// свипера встанет на этой строке и после коммита перечитает условие
// paid = false, поэтому оплаченную бронь он не тронет. И наоборот —
// если свипер успел первым, здесь ticket_id уже NULL.
func (r *ReservationRepository) Pay(ctx context.Context, id string, charge func(price decimal.Decimal) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT res.paid, res.ticket_id, k.price
				  FROM reservations res
				  JOIN ticket_kinds k ON k.id = res.ticket_kind_id
				  WHERE res.id = $1
				  FOR UPDATE OF res`
	var (
		paid     bool
		ticketID sql.NullString
		price    decimal.Decimal
	)
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&paid, &ticketID, &price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("lock reservation: %w", err)
	}

	if paid {
		return domain.ErrReservationPaid
	}
	if !ticketID.Valid {
		return domain.ErrReservationNotValid
	}

	if err = charge(price); err != nil {
		return err
	}

	updateQuery := `UPDATE reservations SET paid = TRUE WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, id); err != nil {
		return fmt.Errorf("mark reservation paid: %w", err)
	}

	return tx.Commit()
}

// ReleaseExpired снимает просроченные неоплаченные брони одним UPDATE.
// Оплаченные строки исключены условием и не трогаются никогда.
func (r *ReservationRepository) ReleaseExpired(ctx context.Context, now time.Time) (int, error) {
	query := `UPDATE reservations
			  SET ticket_id = NULL
			  WHERE expires_at < $1
			    AND ticket_id IS NOT NULL
			    AND paid = FALSE`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return 0, fmt.Errorf("release expired: %w", err)
	}

	released, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("released rows affected: %w", err)
	}

	return int(released), nil
}

func (r *ReservationRepository) SummaryByKind(ctx context.Context, kindID string) (*domain.ReservationSummary, error) {
	query := `
		SELECT COUNT(res.id),
			   COUNT(res.id) FILTER (WHERE res.ticket_id IS NOT NULL),
			   COUNT(res.id) FILTER (WHERE res.ticket_id IS NULL),
			   COUNT(res.id) FILTER (WHERE res.paid),
			   COUNT(res.id) FILTER (WHERE NOT res.paid AND res.ticket_id IS NOT NULL)
		FROM ticket_kinds k
		LEFT JOIN reservations res ON res.ticket_kind_id = k.id
		WHERE k.id = $1
		GROUP BY k.id`

	return r.summary(ctx, query, kindID, domain.ErrTicketKindNotFound)
}

func (r *ReservationRepository) SummaryByEvent(ctx context.Context, eventID string) (*domain.ReservationSummary, error) {
	query := `
		SELECT COUNT(res.id),
			   COUNT(res.id) FILTER (WHERE res.ticket_id IS NOT NULL),
			   COUNT(res.id) FILTER (WHERE res.ticket_id IS NULL),
			   COUNT(res.id) FILTER (WHERE res.paid),
			   COUNT(res.id) FILTER (WHERE NOT res.paid AND res.ticket_id IS NOT NULL)
		FROM events e
		LEFT JOIN ticket_kinds k ON k.event_id = e.id
		LEFT JOIN reservations res ON res.ticket_kind_id = k.id
		WHERE e.id = $1
		GROUP BY e.id`

	return r.summary(ctx, query, eventID, domain.ErrEventNotFound)
}

func (r *ReservationRepository) summary(ctx context.Context, query, id string, notFound error) (*domain.ReservationSummary, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("reservation summary: %w", err)
	}

	var s domain.ReservationSummary
	if err = row.Scan(&s.Total, &s.Valid, &s.Invalid, &s.Paid, &s.Unpaid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound
		}
		return nil, fmt.Errorf("scan reservation summary: %w", err)
	}

	return &s, nil
}
