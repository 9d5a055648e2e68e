package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/events-api/internal/domain"
)

// MaxInlineParticipants bounds how many participants one inline submission
// may add to an event.
const MaxInlineParticipants = 20

type InlineResult struct {
	PersonCIN string `json:"person"`
	Added     bool   `json:"added"`
	Error     string `json:"error,omitempty"`
}

// AdminService backs the staff console: filtered listings and bulk actions.
type AdminService struct {
	events       EventRepository
	participants ParticipantRepository
	persons      PersonRepository
	pageSize     int
}

func NewAdminService(events EventRepository, participants ParticipantRepository, persons PersonRepository, pageSize int) *AdminService {
	if pageSize < 1 {
		pageSize = 2
	}

	return &AdminService{
		events:       events,
		participants: participants,
		persons:      persons,
		pageSize:     pageSize,
	}
}

func (s *AdminService) page(number int) domain.Page {
	if number < 1 {
		number = 1
	}

	return domain.Page{Number: number, Size: s.pageSize}
}

func (s *AdminService) ListEvents(ctx context.Context, filter domain.EventFilter, page int) (domain.EventPage, error) {
	if filter.Category != nil && !filter.Category.Valid() {
		return domain.EventPage{}, invalid(fmt.Errorf("unknown category %q", *filter.Category))
	}
	switch filter.Participants {
	case domain.ParticipantsAny, domain.ParticipantsNone, domain.ParticipantsSome:
	default:
		return domain.EventPage{}, invalid(fmt.Errorf("unknown participants filter %q", filter.Participants))
	}

	result, err := s.events.Find(ctx, filter, s.page(page))
	if err != nil {
		return domain.EventPage{}, fmt.Errorf("s.events.Find -> %w", err)
	}

	return result, nil
}

// AcceptEvents marks the events active so they show up in public listings.
func (s *AdminService) AcceptEvents(ctx context.Context, ids []uint) (int64, error) {
	return s.setState(ctx, ids, true)
}

// RefuseEvents hides the events from public listings.
func (s *AdminService) RefuseEvents(ctx context.Context, ids []uint) (int64, error) {
	return s.setState(ctx, ids, false)
}

func (s *AdminService) setState(ctx context.Context, ids []uint, state bool) (int64, error) {
	n, err := s.events.SetState(ctx, ids, state)
	if err != nil {
		return 0, fmt.Errorf("s.events.SetState -> %w", err)
	}

	return n, nil
}

func (s *AdminService) EventParticipants(ctx context.Context, eventID uint) ([]domain.Participant, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("s.events.GetByID -> %w", err)
	}

	participants, err := s.participants.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.participants.FindByEventID -> %w", err)
	}

	return participants, nil
}

// AddParticipants joins each person to the event independently; one failure
// does not undo the others.
func (s *AdminService) AddParticipants(ctx context.Context, eventID uint, cins []string) ([]InlineResult, error) {
	if len(cins) > MaxInlineParticipants {
		return nil, ErrTooManyInline
	}

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("s.events.GetByID -> %w", err)
	}

	results := make([]InlineResult, 0, len(cins))
	for _, cin := range cins {
		_, _, err := s.participants.Join(ctx, eventID, cin)
		if err == nil {
			results = append(results, InlineResult{PersonCIN: cin, Added: true})
			continue
		}

		rejected := rejectedJoin(err)
		if rejected == nil {
			return nil, fmt.Errorf("s.participants.Join -> %w", err)
		}
		results = append(results, InlineResult{PersonCIN: cin, Error: rejected.Error()})
	}

	return results, nil
}

// rejectedJoin returns the expected outcome err stands for, or nil when err
// is a genuine failure.
func rejectedJoin(err error) error {
	for _, known := range []error{ErrAlreadyParticipating, ErrPersonNotFound, ErrEventNotActive} {
		if errors.Is(err, known) {
			return known
		}
	}

	return nil
}

func (s *AdminService) RemoveParticipant(ctx context.Context, eventID uint, cin string) (domain.Event, error) {
	event, err := s.participants.Cancel(ctx, eventID, cin)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.participants.Cancel -> %w", err)
	}

	return event, nil
}

func (s *AdminService) ListParticipants(ctx context.Context, page int) ([]domain.Participant, int64, error) {
	participants, total, err := s.participants.FindAll(ctx, s.page(page))
	if err != nil {
		return nil, 0, fmt.Errorf("s.participants.FindAll -> %w", err)
	}

	return participants, total, nil
}

// SearchPersons looks persons up by username only.
func (s *AdminService) SearchPersons(ctx context.Context, term string, page int) ([]domain.Person, int64, error) {
	persons, total, err := s.persons.SearchByUsername(ctx, term, s.page(page))
	if err != nil {
		return nil, 0, fmt.Errorf("s.persons.SearchByUsername -> %w", err)
	}

	return persons, total, nil
}
