package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/repository/dao"
)

var (
	ErrAlreadyParticipating = dao.ErrAlreadyParticipating
	ErrNotParticipating     = dao.ErrNotParticipating
	ErrEventNotActive       = dao.ErrEventNotActive
)

type ParticipantDAO interface {
	Join(ctx context.Context, eventID uint, cin string) (dao.Participant, dao.Event, error)
	Cancel(ctx context.Context, eventID uint, cin string) (dao.Event, error)
	Exists(ctx context.Context, eventID uint, cin string) (bool, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.Participant, error)
	FindAll(ctx context.Context, limit, offset int) ([]dao.Participant, int64, error)
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func (r *ParticipantRepository) Join(ctx context.Context, eventID uint, cin string) (domain.Participant, domain.Event, error) {
	p, e, err := r.dao.Join(ctx, eventID, cin)
	if err != nil {
		return domain.Participant{}, domain.Event{}, fmt.Errorf("r.dao.Join -> %w", err)
	}

	return r.daoToDomain(p), eventDaoToDomain(e), nil
}

func (r *ParticipantRepository) Cancel(ctx context.Context, eventID uint, cin string) (domain.Event, error) {
	e, err := r.dao.Cancel(ctx, eventID, cin)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Cancel -> %w", err)
	}

	return eventDaoToDomain(e), nil
}

func (r *ParticipantRepository) IsParticipating(ctx context.Context, eventID uint, cin string) (bool, error) {
	ok, err := r.dao.Exists(ctx, eventID, cin)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return ok, nil
}

func (r *ParticipantRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.Participant, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *ParticipantRepository) FindAll(ctx context.Context, page domain.Page) ([]domain.Participant, int64, error) {
	found, total, err := r.dao.FindAll(ctx, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainList(found), total, nil
}

func (r *ParticipantRepository) daoToDomainList(found []dao.Participant) []domain.Participant {
	participants := make([]domain.Participant, 0, len(found))
	for _, p := range found {
		participants = append(participants, r.daoToDomain(p))
	}

	return participants
}

func (r *ParticipantRepository) daoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:                p.ID,
		EventID:           p.EventID,
		PersonCIN:         p.PersonCIN,
		ParticipationDate: p.ParticipationDate,
	}
}
