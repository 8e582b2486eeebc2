package dto

import "github.com/shopspring/decimal"

type CreateEventRequest struct {
	Name     string `json:"name" binding:"required"`
	DateTime string `json:"date_time"`
}

type CreateTicketKindRequest struct {
	EventID  string          `json:"event_id" binding:"required,uuid"`
	Kind     string          `json:"kind" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,gt=0"`
}

type PayRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"omitempty,len=3"`
	Token    string          `json:"token"`
}
