package domain

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrTicketKindNotFound  = errors.New("ticket kind not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrNoAvailableTickets  = errors.New("no available tickets")
	ErrReservationPaid     = errors.New("reservation is already paid")
	ErrReservationNotValid = errors.New("reservation is no longer valid")
	ErrAmountMismatch      = errors.New("amount must be equal to the ticket price")
	ErrPaymentDeclined     = errors.New("payment declined")
)

var (
	ErrValidation = errors.New("validation error")
)
