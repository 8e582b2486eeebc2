package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hajt/ticket-seller/internal/domain"
	"github.com/hajt/ticket-seller/internal/handler/dto"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type InventorySvc interface {
	CreateTicketKind(ctx context.Context, input domain.CreateTicketKindInput) (*domain.TicketKind, error)
	GetTicketKind(ctx context.Context, id string) (*domain.TicketKindDetails, error)
	ListTicketKinds(ctx context.Context) ([]*domain.TicketKind, error)
	ListAvailable(ctx context.Context) ([]*domain.AvailableKind, error)
}

type ReservationSvc interface {
	Reserve(ctx context.Context, kindID string) (*domain.Reservation, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	SummaryForKind(ctx context.Context, kindID string) (*domain.ReservationSummary, error)
	SummaryForEvent(ctx context.Context, eventID string) (*domain.ReservationSummary, error)
}

type PaymentSvc interface {
	Pay(ctx context.Context, reservationID string, amount decimal.Decimal, currency, token string) error
}

type Handler struct {
	eventService       EventSvc
	inventoryService   InventorySvc
	reservationService ReservationSvc
	paymentService     PaymentSvc
}

func NewHandler(
	eventService EventSvc,
	inventoryService InventorySvc,
	reservationService ReservationSvc,
	paymentService PaymentSvc,
) *Handler {
	return &Handler{
		eventService:       eventService,
		inventoryService:   inventoryService,
		reservationService: reservationService,
		paymentService:     paymentService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	input := domain.CreateEventInput{Name: req.Name}
	if req.DateTime != "" {
		dateTime, err := time.Parse(time.RFC3339, req.DateTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation_error",
				Message: "invalid date_time format, expected RFC3339",
			})
			return
		}
		input.DateTime = &dateTime
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid event id")
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) EventSummary(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid event id")
	if !ok {
		return
	}

	summary, err := h.reservationService.SummaryForEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// Ticket kinds

func (h *Handler) CreateTicketKind(c *ginext.Context) {
	var req dto.CreateTicketKindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	kind, err := h.inventoryService.CreateTicketKind(c.Request.Context(), domain.CreateTicketKindInput{
		EventID:  req.EventID,
		Kind:     req.Kind,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketKindResponse(kind))
}

func (h *Handler) ListTicketKinds(c *ginext.Context) {
	kinds, err := h.inventoryService.ListTicketKinds(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketKindResponse, 0, len(kinds))
	for _, k := range kinds {
		resp = append(resp, dto.ToTicketKindResponse(k))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListAvailableTicketKinds(c *ginext.Context) {
	kinds, err := h.inventoryService.ListAvailable(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AvailableKindResponse, 0, len(kinds))
	for _, k := range kinds {
		resp = append(resp, dto.ToAvailableKindResponse(k))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetTicketKind(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid ticket kind id")
	if !ok {
		return
	}

	details, err := h.inventoryService.GetTicketKind(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketKindDetailsResponse(details))
}

func (h *Handler) TicketKindSummary(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid ticket kind id")
	if !ok {
		return
	}

	summary, err := h.reservationService.SummaryForKind(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// Reservations

func (h *Handler) Reserve(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid ticket kind id")
	if !ok {
		return
	}

	reservation, err := h.reservationService.Reserve(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid reservation id")
	if !ok {
		return
	}

	reservation, err := h.reservationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) Pay(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid reservation id")
	if !ok {
		return
	}

	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	if err := h.paymentService.Pay(c.Request.Context(), id, req.Amount, req.Currency, req.Token); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "SUCCESS"})
}

func (h *Handler) pathID(c *ginext.Context, message string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: message,
		})
		return "", false
	}
	return id, true
}

func (h *Handler) handleBindError(c *ginext.Context, err error) {
	resp := dto.ErrorResponse{
		Error:   "validation_error",
		Message: "invalid request body",
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		resp.Fields = make(map[string]string, len(vErrs))
		for _, fe := range vErrs {
			resp.Fields[fe.Field()] = fe.Tag()
		}
	} else {
		resp.Message = err.Error()
	}

	c.JSON(http.StatusBadRequest, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrTicketKindNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not_found", Message: err.Error()})

	case errors.Is(err, domain.ErrNoAvailableTickets):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "out_of_stock", Message: "No available tickets"})

	case errors.Is(err, domain.ErrReservationPaid):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "already_paid", Message: "Reservation is already paid"})

	case errors.Is(err, domain.ErrReservationNotValid):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "expired", Message: "Reservation is no longer valid"})

	case errors.Is(err, domain.ErrAmountMismatch):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "amount_mismatch", Message: "Amount must be equal to the ticket price"})

	case errors.Is(err, domain.ErrPaymentDeclined):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "payment_declined", Message: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation_error", Message: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal", Message: "internal server error"})
	}
}
