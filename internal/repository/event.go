package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/repository/dao"
)

var (
	ErrEventNotFound     = dao.ErrEventNotFound
	ErrEventDateNotLate  = dao.ErrEventDateNotLate
	ErrOrganizerNotFound = dao.ErrOrganizerNotFound
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindAll(ctx context.Context, q dao.EventQuery, limit, offset int) ([]dao.Event, int64, error)
	Delete(ctx context.Context, id uint) error
	SetState(ctx context.Context, ids []uint, state bool) (int64, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, eventDomainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return eventDaoToDomain(created), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, eventDomainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return eventDaoToDomain(updated), nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return eventDaoToDomain(found), nil
}

// Find lists the events matching filter. A zero page size returns every match.
func (r *EventRepository) Find(ctx context.Context, filter domain.EventFilter, page domain.Page) (domain.EventPage, error) {
	found, total, err := r.dao.FindAll(ctx, r.filterToQuery(filter), page.Size, page.Offset())
	if err != nil {
		return domain.EventPage{}, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, eventDaoToDomain(e))
	}

	return domain.EventPage{Events: events, Total: total, Page: page}, nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) SetState(ctx context.Context, ids []uint, state bool) (int64, error) {
	n, err := r.dao.SetState(ctx, ids, state)
	if err != nil {
		return 0, fmt.Errorf("r.dao.SetState -> %w", err)
	}

	return n, nil
}

func (r *EventRepository) filterToQuery(f domain.EventFilter) dao.EventQuery {
	q := dao.EventQuery{
		Search: f.Search,
		State:  f.State,
	}
	if f.Category != nil {
		c := string(*f.Category)
		q.Category = &c
	}
	switch f.Participants {
	case domain.ParticipantsNone:
		has := false
		q.HasParticipants = &has
	case domain.ParticipantsSome:
		has := true
		q.HasParticipants = &has
	}

	return q
}

func eventDomainToDao(e domain.Event) dao.Event {
	var image *string
	if e.Image != "" {
		image = &e.Image
	}

	return dao.Event{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Category:        string(e.Category),
		Image:           image,
		State:           e.State,
		NbrParticipants: e.NbrParticipants,
		EvtDate:         e.EvtDate,
		CreationDate:    e.CreationDate,
		UpdatedDate:     e.UpdatedDate,
		OrganisateurCIN: e.OrganisateurCIN,
	}
}

func eventDaoToDomain(e dao.Event) domain.Event {
	event := domain.Event{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Category:        domain.Category(e.Category),
		State:           e.State,
		NbrParticipants: e.NbrParticipants,
		EvtDate:         e.EvtDate,
		CreationDate:    e.CreationDate,
		UpdatedDate:     e.UpdatedDate,
		OrganisateurCIN: e.OrganisateurCIN,
	}
	if e.Image != nil {
		event.Image = *e.Image
	}

	return event
}
