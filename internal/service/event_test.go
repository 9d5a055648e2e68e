package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/repository"
)

var fixedNow = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestEventService(events *mockEventRepo, participants *mockParticipantRepo) *EventService {
	svc := NewEventService(events, participants)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func strPtr(s string) *string {
	return &s
}

func storedEvent(organizer string) domain.Event {
	count := 3
	return domain.Event{
		ID:              7,
		Title:           "concert",
		Description:     "live",
		Category:        domain.CategoryMusique,
		Image:           "images/poster.png",
		State:           true,
		NbrParticipants: &count,
		EvtDate:         fixedNow.Add(48 * time.Hour),
		CreationDate:    fixedNow.Add(-24 * time.Hour),
		OrganisateurCIN: strPtr(organizer),
	}
}

func TestEventService_ListActiveEvents(t *testing.T) {
	ctx := context.Background()
	events := new(mockEventRepo)
	active := true
	events.On("Find", ctx, domain.EventFilter{State: &active}, domain.Page{}).
		Return(domain.EventPage{Events: []domain.Event{storedEvent("12345678")}}, nil)

	list, err := newTestEventService(events, nil).ListActiveEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEventService_GetEventDetails(t *testing.T) {
	ctx := context.Background()
	events := new(mockEventRepo)
	participants := new(mockParticipantRepo)
	events.On("GetByID", ctx, uint(7)).Return(storedEvent("12345678"), nil)
	participants.On("IsParticipating", ctx, uint(7), "87654321").Return(true, nil)

	details, err := newTestEventService(events, participants).GetEventDetails(ctx, 7, "87654321")
	require.NoError(t, err)
	assert.True(t, details.Participating)
	assert.Equal(t, "concert", details.Event.Title)

	events.On("GetByID", ctx, uint(8)).Return(domain.Event{}, repository.ErrEventNotFound)
	_, err = newTestEventService(events, participants).GetEventDetails(ctx, 8, "87654321")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	actor := domain.Person{CIN: "12345678"}
	input := EventInput{
		Title:    "match",
		Category: domain.CategorySport,
		EvtDate:  fixedNow.Add(24 * time.Hour),
	}

	t.Run("server managed fields are set", func(t *testing.T) {
		events := new(mockEventRepo)
		events.On("Create", ctx, mock.AnythingOfType("domain.Event")).
			Return(func(_ context.Context, e domain.Event) domain.Event { return e }, nil)

		created, err := newTestEventService(events, nil).CreateEvent(ctx, input, actor)
		require.NoError(t, err)
		assert.True(t, created.State)
		assert.Equal(t, 0, created.Participants())
		assert.True(t, created.IsOrganizedBy("12345678"))
	})

	t.Run("date must be in the future", func(t *testing.T) {
		past := input
		past.EvtDate = fixedNow.Add(-time.Hour)

		_, err := newTestEventService(new(mockEventRepo), nil).CreateEvent(ctx, past, actor)
		assert.ErrorIs(t, err, ErrEventDateNotLate)
	})

	t.Run("unknown category", func(t *testing.T) {
		bad := input
		bad.Category = "theatre"

		_, err := newTestEventService(new(mockEventRepo), nil).CreateEvent(ctx, bad, actor)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("title too long", func(t *testing.T) {
		bad := input
		bad.Title = "a title that is far longer than thirty characters"

		_, err := newTestEventService(new(mockEventRepo), nil).CreateEvent(ctx, bad, actor)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("only staff may assign another organizer", func(t *testing.T) {
		other := input
		other.OrganisateurCIN = strPtr("87654321")

		_, err := newTestEventService(new(mockEventRepo), nil).CreateEvent(ctx, other, actor)
		assert.ErrorIs(t, err, ErrNotOrganizer)

		events := new(mockEventRepo)
		events.On("Create", ctx, mock.AnythingOfType("domain.Event")).
			Return(func(_ context.Context, e domain.Event) domain.Event { return e }, nil)
		staff := domain.Person{CIN: "11111111", IsStaff: true}

		created, err := newTestEventService(events, nil).CreateEvent(ctx, other, staff)
		require.NoError(t, err)
		assert.True(t, created.IsOrganizedBy("87654321"))
	})
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()
	owner := domain.Person{CIN: "12345678"}

	t.Run("keeps image, state and counter", func(t *testing.T) {
		events := new(mockEventRepo)
		events.On("GetByID", ctx, uint(7)).Return(storedEvent(owner.CIN), nil)
		events.On("Update", ctx, mock.AnythingOfType("domain.Event")).
			Return(func(_ context.Context, e domain.Event) domain.Event { return e }, nil)

		stored := storedEvent(owner.CIN)
		updated, err := newTestEventService(events, nil).UpdateEvent(ctx, 7, EventInput{
			Title:    "renamed",
			Category: domain.CategoryCinema,
			EvtDate:  stored.EvtDate,
		}, owner)
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Title)
		assert.Equal(t, "images/poster.png", updated.Image)
		assert.Equal(t, 3, updated.Participants())
		assert.True(t, updated.State)
	})

	t.Run("strangers are refused", func(t *testing.T) {
		events := new(mockEventRepo)
		events.On("GetByID", ctx, uint(7)).Return(storedEvent(owner.CIN), nil)

		_, err := newTestEventService(events, nil).UpdateEvent(ctx, 7, EventInput{Title: "x"}, domain.Person{CIN: "99999999"})
		assert.ErrorIs(t, err, ErrNotOrganizer)
	})

	t.Run("a changed date must still be in the future", func(t *testing.T) {
		events := new(mockEventRepo)
		events.On("GetByID", ctx, uint(7)).Return(storedEvent(owner.CIN), nil)

		_, err := newTestEventService(events, nil).UpdateEvent(ctx, 7, EventInput{
			Title:    "concert",
			Category: domain.CategorySport,
			EvtDate:  fixedNow.Add(-time.Minute),
		}, owner)
		assert.ErrorIs(t, err, ErrEventDateNotLate)
	})
}

func TestEventService_DeleteEvent(t *testing.T) {
	ctx := context.Background()

	events := new(mockEventRepo)
	events.On("GetByID", ctx, uint(7)).Return(storedEvent("12345678"), nil)
	events.On("Delete", ctx, uint(7)).Return(nil)

	svc := newTestEventService(events, nil)
	assert.ErrorIs(t, svc.DeleteEvent(ctx, 7, domain.Person{CIN: "99999999"}), ErrNotOrganizer)
	assert.NoError(t, svc.DeleteEvent(ctx, 7, domain.Person{CIN: "99999999", IsStaff: true}))
	events.AssertCalled(t, "Delete", ctx, uint(7))

	missing := new(mockEventRepo)
	missing.On("GetByID", ctx, uint(9)).Return(domain.Event{}, repository.ErrEventNotFound)
	assert.ErrorIs(t, newTestEventService(missing, nil).DeleteEvent(ctx, 9, domain.Person{IsStaff: true}), ErrEventNotFound)
}
