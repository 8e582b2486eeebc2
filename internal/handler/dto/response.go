package dto

import (
	"time"

	"github.com/hajt/ticket-seller/internal/domain"
)

type EventResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	DateTime  *string `json:"date_time"`
	CreatedAt string  `json:"created_at"`
}

type EventDetailsResponse struct {
	Event EventResponse        `json:"event"`
	Kinds []TicketKindResponse `json:"ticket_kinds"`
}

type TicketKindResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Kind      string `json:"kind"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	CreatedAt string `json:"created_at"`
}

type TicketCountsResponse struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Held      int `json:"held"`
	Sold      int `json:"sold"`
}

type TicketKindDetailsResponse struct {
	TicketKindResponse
	Tickets TicketCountsResponse `json:"tickets"`
}

type AvailableKindResponse struct {
	Kind     string `json:"kind"`
	Event    string `json:"event"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Left     int    `json:"left"`
}

type ReservationResponse struct {
	ID         string  `json:"id"`
	Ticket     *string `json:"ticket"`
	CreateTime string  `json:"create_time"`
	ExpireTime string  `json:"expire_time"`
	IsPaid     bool    `json:"is_paid"`
}

type SummaryResponse struct {
	Reservations ReservationSummaryResponse `json:"reservations"`
}

type ReservationSummaryResponse struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
	Paid    int `json:"paid"`
	Unpaid  int `json:"unpaid"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	var dateTime *string
	if e.DateTime != nil {
		s := e.DateTime.Format(time.RFC3339)
		dateTime = &s
	}

	return EventResponse{
		ID:        e.ID,
		Name:      e.Name,
		DateTime:  dateTime,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	kinds := make([]TicketKindResponse, 0, len(d.Kinds))
	for _, k := range d.Kinds {
		kinds = append(kinds, ToTicketKindResponse(&k))
	}

	return EventDetailsResponse{
		Event: ToEventResponse(&d.Event),
		Kinds: kinds,
	}
}

func ToTicketKindResponse(k *domain.TicketKind) TicketKindResponse {
	return TicketKindResponse{
		ID:        k.ID,
		EventID:   k.EventID,
		Kind:      k.Kind,
		Price:     k.Price.StringFixed(2),
		Quantity:  k.Quantity,
		CreatedAt: k.CreatedAt.Format(time.RFC3339),
	}
}

func ToTicketKindDetailsResponse(d *domain.TicketKindDetails) TicketKindDetailsResponse {
	return TicketKindDetailsResponse{
		TicketKindResponse: ToTicketKindResponse(&d.Kind),
		Tickets: TicketCountsResponse{
			Total:     d.Counts.Total,
			Available: d.Counts.Available,
			Held:      d.Counts.Held,
			Sold:      d.Counts.Sold,
		},
	}
}

func ToAvailableKindResponse(a *domain.AvailableKind) AvailableKindResponse {
	return AvailableKindResponse{
		Kind:     a.Kind.Kind,
		Event:    a.EventName,
		Price:    a.Kind.Price.StringFixed(2),
		Quantity: a.Kind.Quantity,
		Left:     a.Left,
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		Ticket:     r.TicketID,
		CreateTime: r.CreatedAt.Format(time.RFC3339),
		ExpireTime: r.ExpiresAt.Format(time.RFC3339),
		IsPaid:     r.Paid,
	}
}

func ToSummaryResponse(s *domain.ReservationSummary) SummaryResponse {
	return SummaryResponse{
		Reservations: ReservationSummaryResponse{
			Total:   s.Total,
			Valid:   s.Valid,
			Invalid: s.Invalid,
			Paid:    s.Paid,
			Unpaid:  s.Unpaid,
		},
	}
}
