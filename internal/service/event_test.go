package service

import (
	"context"
	"testing"
	"time"

	"github.com/hajt/ticket-seller/internal/domain"
	"github.com/hajt/ticket-seller/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateEvent_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo)

	when := time.Date(2025, 9, 1, 19, 0, 0, 0, time.UTC)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Name:     "Concert",
		DateTime: &when,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Concert", event.Name)
	assert.Equal(t, when, *event.DateTime)
}

func TestEventService_CreateEvent_NameRequired(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{Name: "   "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo)

	eventRepo.EXPECT().GetDetails(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEventService(eventRepo)

	events := []*domain.Event{{ID: "e1", Name: "Concert"}}
	eventRepo.EXPECT().List(mock.Anything).Return(events, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
