package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hajt/ticket-seller/internal/domain"
	"github.com/hajt/ticket-seller/internal/handler/dto"
	hmocks "github.com/hajt/ticket-seller/internal/handler/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockInventorySvc, *hmocks.MockReservationSvc, *hmocks.MockPaymentSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	inventorySvc := hmocks.NewMockInventorySvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)
	paymentSvc := hmocks.NewMockPaymentSvc(t)

	h := NewHandler(eventSvc, inventorySvc, reservationSvc, paymentSvc)

	r := ginext.New("test")
	r.POST("/events", h.CreateEvent)
	r.GET("/events", h.ListEvents)
	r.GET("/events/:id", h.GetEvent)
	r.GET("/events/:id/summary", h.EventSummary)
	r.POST("/ticket-kinds", h.CreateTicketKind)
	r.GET("/ticket-kinds", h.ListTicketKinds)
	r.GET("/ticket-kinds/available", h.ListAvailableTicketKinds)
	r.GET("/ticket-kinds/:id", h.GetTicketKind)
	r.GET("/ticket-kinds/:id/summary", h.TicketKindSummary)
	r.POST("/ticket-kinds/:id/reserve", h.Reserve)
	r.GET("/reservations/:id", h.GetReservation)
	r.POST("/reservations/:id/pay", h.Pay)

	return eventSvc, inventorySvc, reservationSvc, paymentSvc, r
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	when := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	event := &domain.Event{
		ID:        uuid.New().String(),
		Name:      "Concert",
		DateTime:  &when,
		CreatedAt: time.Now(),
	}

	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Name:     "Concert",
		DateTime: when.Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Concert", resp.Name)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"name":"Concert","date_time":"not-a-date"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	details := &domain.EventDetails{
		Event: domain.Event{ID: eventID, Name: "Concert", CreatedAt: time.Now()},
		Kinds: []domain.TicketKind{
			{ID: "k1", EventID: eventID, Kind: "VIP", Price: decimal.NewFromInt(100), Quantity: 10},
		},
	}

	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Kinds, 1)
	assert.Equal(t, "100.00", resp.Kinds[0].Price)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_EventSummary_Success(t *testing.T) {
	_, _, reservationSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	summary := &domain.ReservationSummary{Total: 10, Valid: 6, Invalid: 4, Paid: 3, Unpaid: 3}
	reservationSvc.EXPECT().SummaryForEvent(mock.Anything, eventID).Return(summary, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events/"+eventID+"/summary", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Reservations.Total)
	assert.Equal(t, 3, resp.Reservations.Unpaid)
}

// --- Ticket kinds ---

func TestHandler_CreateTicketKind_Success(t *testing.T) {
	_, inventorySvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	kind := &domain.TicketKind{
		ID:        uuid.New().String(),
		EventID:   eventID,
		Kind:      "VIP",
		Price:     decimal.NewFromInt(150),
		Quantity:  20,
		CreatedAt: time.Now(),
	}

	inventorySvc.EXPECT().CreateTicketKind(mock.Anything, mock.Anything).Return(kind, nil)

	body, _ := json.Marshal(dto.CreateTicketKindRequest{
		EventID:  eventID,
		Kind:     "VIP",
		Price:    decimal.NewFromInt(150),
		Quantity: 20,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ticket-kinds", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TicketKindResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VIP", resp.Kind)
	assert.Equal(t, "150.00", resp.Price)
}

func TestHandler_CreateTicketKind_ValidationFields(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"event_id":"` + uuid.New().String() + `","kind":"VIP","price":10,"quantity":-5}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ticket-kinds", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error)
	assert.Contains(t, resp.Fields, "Quantity")
}

func TestHandler_ListAvailableTicketKinds_Success(t *testing.T) {
	_, inventorySvc, _, _, r := setupRouter(t)

	available := []*domain.AvailableKind{
		{
			Kind:      domain.TicketKind{ID: "k1", Kind: "VIP", Price: decimal.NewFromInt(100), Quantity: 10},
			EventName: "Concert",
			Left:      4,
		},
	}
	inventorySvc.EXPECT().ListAvailable(mock.Anything).Return(available, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ticket-kinds/available", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AvailableKindResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "VIP", resp[0].Kind)
	assert.Equal(t, "Concert", resp[0].Event)
	assert.Equal(t, 10, resp[0].Quantity)
	assert.Equal(t, 4, resp[0].Left)
}

func TestHandler_GetTicketKind_Success(t *testing.T) {
	_, inventorySvc, _, _, r := setupRouter(t)

	kindID := uuid.New().String()
	details := &domain.TicketKindDetails{
		Kind:   domain.TicketKind{ID: kindID, Kind: "VIP", Price: decimal.NewFromInt(100), Quantity: 10},
		Counts: domain.TicketCounts{Total: 10, Available: 6, Held: 3, Sold: 1},
	}
	inventorySvc.EXPECT().GetTicketKind(mock.Anything, kindID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ticket-kinds/"+kindID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TicketKindDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Tickets.Available)
}

func TestHandler_TicketKindSummary_NotFound(t *testing.T) {
	_, _, reservationSvc, _, r := setupRouter(t)

	kindID := uuid.New().String()
	reservationSvc.EXPECT().SummaryForKind(mock.Anything, kindID).Return(nil, domain.ErrTicketKindNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ticket-kinds/"+kindID+"/summary", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Reservations ---

func TestHandler_Reserve_Success(t *testing.T) {
	_, _, reservationSvc, _, r := setupRouter(t)

	kindID := uuid.New().String()
	ticketID := uuid.New().String()
	now := time.Now().UTC()
	reservation := &domain.Reservation{
		ID:           uuid.New().String(),
		TicketID:     &ticketID,
		TicketKindID: kindID,
		CreatedAt:    now,
		ExpiresAt:    now.Add(15 * time.Minute),
	}

	reservationSvc.EXPECT().Reserve(mock.Anything, kindID).Return(reservation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ticket-kinds/"+kindID+"/reserve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Ticket)
	assert.Equal(t, ticketID, *resp.Ticket)
	assert.False(t, resp.IsPaid)
	assert.NotEmpty(t, resp.CreateTime)
	assert.NotEmpty(t, resp.ExpireTime)
}

func TestHandler_Reserve_OutOfStock(t *testing.T) {
	_, _, reservationSvc, _, r := setupRouter(t)

	kindID := uuid.New().String()
	reservationSvc.EXPECT().Reserve(mock.Anything, kindID).Return(nil, domain.ErrNoAvailableTickets)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ticket-kinds/"+kindID+"/reserve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No available tickets", resp.Message)
}

func TestHandler_Reserve_KindNotFound(t *testing.T) {
	_, _, reservationSvc, _, r := setupRouter(t)

	kindID := uuid.New().String()
	reservationSvc.EXPECT().Reserve(mock.Anything, kindID).Return(nil, domain.ErrTicketKindNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ticket-kinds/"+kindID+"/reserve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetReservation_ReleasedHold(t *testing.T) {
	_, _, reservationSvc, _, r := setupRouter(t)

	resID := uuid.New().String()
	now := time.Now().UTC()
	reservation := &domain.Reservation{
		ID:           resID,
		TicketID:     nil, // released by the sweeper
		TicketKindID: "k1",
		CreatedAt:    now.Add(-time.Hour),
		ExpiresAt:    now.Add(-45 * time.Minute),
	}
	reservationSvc.EXPECT().Get(mock.Anything, resID).Return(reservation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reservations/"+resID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Ticket)
}

// --- Payments ---

func TestHandler_Pay_Success(t *testing.T) {
	_, _, _, paymentSvc, r := setupRouter(t)

	resID := uuid.New().String()
	amount := decimal.NewFromInt(100)

	paymentSvc.EXPECT().Pay(mock.Anything, resID, amount, "USD", "tok").Return(nil)

	body, _ := json.Marshal(dto.PayRequest{Amount: amount, Currency: "USD", Token: "tok"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reservations/"+resID+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SUCCESS", resp.Message)
}

func TestHandler_Pay_AlreadyPaid(t *testing.T) {
	_, _, _, paymentSvc, r := setupRouter(t)

	resID := uuid.New().String()
	amount := decimal.NewFromInt(100)

	paymentSvc.EXPECT().Pay(mock.Anything, resID, amount, "", "").Return(domain.ErrReservationPaid)

	body, _ := json.Marshal(dto.PayRequest{Amount: amount})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reservations/"+resID+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Reservation is already paid", resp.Message)
}

func TestHandler_Pay_Expired(t *testing.T) {
	_, _, _, paymentSvc, r := setupRouter(t)

	resID := uuid.New().String()
	amount := decimal.NewFromInt(100)

	paymentSvc.EXPECT().Pay(mock.Anything, resID, amount, "", "").Return(domain.ErrReservationNotValid)

	body, _ := json.Marshal(dto.PayRequest{Amount: amount})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reservations/"+resID+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Reservation is no longer valid", resp.Message)
}

func TestHandler_Pay_AmountMismatch(t *testing.T) {
	_, _, _, paymentSvc, r := setupRouter(t)

	resID := uuid.New().String()
	amount := decimal.NewFromInt(90)

	paymentSvc.EXPECT().Pay(mock.Anything, resID, amount, "", "").Return(domain.ErrAmountMismatch)

	body, _ := json.Marshal(dto.PayRequest{Amount: amount})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reservations/"+resID+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Amount must be equal to the ticket price", resp.Message)
}

func TestHandler_Pay_MissingAmount(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"currency":"USD"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reservations/"+uuid.New().String()+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Pay_InvalidReservationID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"amount":100}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reservations/bad-id/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
