package domain

import "time"

type Event struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	DateTime  *time.Time `json:"date_time"`
	CreatedAt time.Time  `json:"created_at"`
}

type EventDetails struct {
	Event Event        `json:"event"`
	Kinds []TicketKind `json:"ticket_kinds"`
}

type CreateEventInput struct {
	Name     string
	DateTime *time.Time
}
