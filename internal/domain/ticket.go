package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TicketKind struct {
	ID        string          `json:"id"`
	EventID   string          `json:"event_id"`
	Kind      string          `json:"kind"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
}

type CreateTicketKindInput struct {
	EventID  string
	Kind     string
	Price    decimal.Decimal
	Quantity int
}

// TicketCounts breaks a kind's units down by derived state: a unit is
// sold when a paid reservation references it, held when an unpaid one
// does, available otherwise. The state is never stored.
type TicketCounts struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Held      int `json:"held"`
	Sold      int `json:"sold"`
}

type TicketKindDetails struct {
	Kind   TicketKind   `json:"ticket_kind"`
	Counts TicketCounts `json:"tickets"`
}

// AvailableKind is a ticket kind with at least one unit not referenced
// by a live reservation.
type AvailableKind struct {
	Kind      TicketKind `json:"ticket_kind"`
	EventName string     `json:"event"`
	Left      int        `json:"left"`
}
