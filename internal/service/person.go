package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/events-api/internal/domain"
)

type PersonRepository interface {
	FindByCIN(ctx context.Context, cin string) (domain.Person, error)
	Update(ctx context.Context, person domain.Person) (domain.Person, error)
	Delete(ctx context.Context, cin string) error
	SearchByUsername(ctx context.Context, term string, page domain.Page) ([]domain.Person, int64, error)
}

// ProfileUpdate lists the profile fields a person may edit. Nil fields are
// left unchanged.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
}

type PersonService struct {
	repo PersonRepository
}

func NewPersonService(repo PersonRepository) *PersonService {
	return &PersonService{
		repo: repo,
	}
}

func (s *PersonService) GetPerson(ctx context.Context, cin string) (domain.Person, error) {
	person, err := s.repo.FindByCIN(ctx, cin)
	if err != nil {
		return domain.Person{}, fmt.Errorf("s.repo.FindByCIN -> %w", err)
	}

	return person, nil
}

func (s *PersonService) UpdateProfile(ctx context.Context, cin string, update ProfileUpdate) (domain.Person, error) {
	person, err := s.repo.FindByCIN(ctx, cin)
	if err != nil {
		return domain.Person{}, fmt.Errorf("s.repo.FindByCIN -> %w", err)
	}

	if update.FirstName != nil {
		person.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		person.LastName = *update.LastName
	}
	if update.Email != nil {
		person.Email = *update.Email
	}

	if err = person.Validate(); err != nil {
		return domain.Person{}, invalid(err)
	}

	updated, err := s.repo.Update(ctx, person)
	if err != nil {
		return domain.Person{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *PersonService) DeletePerson(ctx context.Context, cin string) error {
	if err := s.repo.Delete(ctx, cin); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *PersonService) SearchPersons(ctx context.Context, term string, page domain.Page) ([]domain.Person, int64, error) {
	persons, total, err := s.repo.SearchByUsername(ctx, term, page)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.SearchByUsername -> %w", err)
	}

	return persons, total, nil
}
