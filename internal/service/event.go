package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/events-api/internal/domain"
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	GetByID(ctx context.Context, id uint) (domain.Event, error)
	Find(ctx context.Context, filter domain.EventFilter, page domain.Page) (domain.EventPage, error)
	Delete(ctx context.Context, id uint) error
	SetState(ctx context.Context, ids []uint, state bool) (int64, error)
}

type ParticipantRepository interface {
	Join(ctx context.Context, eventID uint, cin string) (domain.Participant, domain.Event, error)
	Cancel(ctx context.Context, eventID uint, cin string) (domain.Event, error)
	IsParticipating(ctx context.Context, eventID uint, cin string) (bool, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.Participant, error)
	FindAll(ctx context.Context, page domain.Page) ([]domain.Participant, int64, error)
}

// EventInput carries the user-editable event fields. Empty Image and nil
// OrganisateurCIN keep the stored values on update.
type EventInput struct {
	Title           string
	Description     string
	Category        domain.Category
	Image           string
	EvtDate         time.Time
	OrganisateurCIN *string
}

type EventDetails struct {
	Event         domain.Event
	Participating bool
}

type EventService struct {
	repo         EventRepository
	participants ParticipantRepository
	now          func() time.Time
}

func NewEventService(repo EventRepository, participants ParticipantRepository) *EventService {
	return &EventService{
		repo:         repo,
		participants: participants,
		now:          time.Now,
	}
}

// ListActiveEvents returns the events whose state flag is set.
func (s *EventService) ListActiveEvents(ctx context.Context) ([]domain.Event, error) {
	active := true
	page, err := s.repo.Find(ctx, domain.EventFilter{State: &active}, domain.Page{})
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return page.Events, nil
}

// ListAllEvents returns every event regardless of state.
func (s *EventService) ListAllEvents(ctx context.Context) ([]domain.Event, error) {
	page, err := s.repo.Find(ctx, domain.EventFilter{}, domain.Page{})
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return page.Events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	return event, nil
}

// GetEventDetails loads the event and whether cin already joined it.
func (s *EventService) GetEventDetails(ctx context.Context, id uint, cin string) (EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return EventDetails{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	participating, err := s.participants.IsParticipating(ctx, id, cin)
	if err != nil {
		return EventDetails{}, fmt.Errorf("s.participants.IsParticipating -> %w", err)
	}

	return EventDetails{Event: event, Participating: participating}, nil
}

func (s *EventService) CreateEvent(ctx context.Context, input EventInput, actor domain.Person) (domain.Event, error) {
	organizer, err := s.resolveOrganizer(input.OrganisateurCIN, actor)
	if err != nil {
		return domain.Event{}, err
	}

	zero := 0
	event := domain.Event{
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		Image:           input.Image,
		State:           true,
		NbrParticipants: &zero,
		EvtDate:         input.EvtDate,
		OrganisateurCIN: organizer,
	}

	if err = event.Validate(); err != nil {
		return domain.Event{}, invalid(err)
	}
	if err = domain.ValidateEventDate(event.EvtDate, s.now()); err != nil {
		return domain.Event{}, err
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id uint, input EventInput, actor domain.Person) (domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	if !canManage(event, actor) {
		return domain.Event{}, ErrNotOrganizer
	}

	if input.OrganisateurCIN != nil {
		organizer, err := s.resolveOrganizer(input.OrganisateurCIN, actor)
		if err != nil {
			return domain.Event{}, err
		}
		event.OrganisateurCIN = organizer
	}

	dateChanged := !input.EvtDate.Equal(event.EvtDate)
	event.Title = input.Title
	event.Description = input.Description
	event.Category = input.Category
	event.EvtDate = input.EvtDate
	if input.Image != "" {
		event.Image = input.Image
	}

	if err = event.Validate(); err != nil {
		return domain.Event{}, invalid(err)
	}
	if dateChanged {
		if err = domain.ValidateEventDate(event.EvtDate, s.now()); err != nil {
			return domain.Event{}, err
		}
	}

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteEvent removes the event and, through the cascade, its participants.
func (s *EventService) DeleteEvent(ctx context.Context, id uint, actor domain.Person) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	if !canManage(event, actor) {
		return ErrNotOrganizer
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// resolveOrganizer defaults the organizer to the actor. Only staff may hand
// an event to somebody else.
func (s *EventService) resolveOrganizer(requested *string, actor domain.Person) (*string, error) {
	cin := actor.CIN
	if requested != nil && *requested != "" && *requested != actor.CIN {
		if !actor.IsStaff {
			return nil, ErrNotOrganizer
		}
		cin = *requested
	}

	return &cin, nil
}

func canManage(event domain.Event, actor domain.Person) bool {
	return actor.IsStaff || event.IsOrganizedBy(actor.CIN)
}
