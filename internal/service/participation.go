package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/events-api/internal/domain"
)

type ParticipationService struct {
	repo ParticipantRepository
}

func NewParticipationService(repo ParticipantRepository) *ParticipationService {
	return &ParticipationService{
		repo: repo,
	}
}

// Join makes cin a participant of the event. The row insert and the counter
// increment commit together or not at all.
func (s *ParticipationService) Join(ctx context.Context, eventID uint, cin string) (domain.Event, error) {
	_, event, err := s.repo.Join(ctx, eventID, cin)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Join -> %w", err)
	}

	return event, nil
}

// Cancel withdraws cin from the event, decrementing the counter but never
// below zero.
func (s *ParticipationService) Cancel(ctx context.Context, eventID uint, cin string) (domain.Event, error) {
	event, err := s.repo.Cancel(ctx, eventID, cin)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Cancel -> %w", err)
	}

	return event, nil
}
