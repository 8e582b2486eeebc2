package domain

import "time"

// Reservation is a temporary hold on a single ticket unit. TicketID is
// cleared when the hold lapses; the row itself is never deleted.
type Reservation struct {
	ID           string    `json:"id"`
	TicketID     *string   `json:"ticket"`
	TicketKindID string    `json:"ticket_kind_id"`
	CreatedAt    time.Time `json:"create_time"`
	ExpiresAt    time.Time `json:"expire_time"`
	Paid         bool      `json:"is_paid"`
}

// IsValid reports whether the reservation still holds its unit.
func (r *Reservation) IsValid() bool {
	return r.TicketID != nil
}

type ReservationSummary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
	Paid    int `json:"paid"`
	Unpaid  int `json:"unpaid"`
}
