package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/repository"
)

type AuthPersonRepository interface {
	Create(ctx context.Context, person domain.Person) (domain.Person, error)
	FindByUsername(ctx context.Context, username string) (domain.Person, error)
	TouchLastLogin(ctx context.Context, cin string, at time.Time) error
}

type AuthService struct {
	repo AuthPersonRepository
	now  func() time.Time
}

func NewAuthService(repo AuthPersonRepository) *AuthService {
	return &AuthService{
		repo: repo,
		now:  time.Now,
	}
}

// Signup registers a regular person. The password is given in clear text and
// stored hashed.
func (s *AuthService) Signup(ctx context.Context, person domain.Person) (domain.Person, error) {
	person.IsActive = true
	person.IsStaff = false
	person.IsSuperuser = false

	return s.create(ctx, person)
}

// CreateSuperuser registers a person allowed into the admin console.
func (s *AuthService) CreateSuperuser(ctx context.Context, person domain.Person) (domain.Person, error) {
	person.IsActive = true
	person.IsStaff = true
	person.IsSuperuser = true

	return s.create(ctx, person)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Person, error) {
	person, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return domain.Person{}, ErrPersonNotFound
		}

		return domain.Person{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(person.Password), []byte(password)); err != nil {
		return domain.Person{}, ErrWrongPassword
	}

	if !person.IsActive {
		return domain.Person{}, ErrInactivePerson
	}

	now := s.now()
	if err = s.repo.TouchLastLogin(ctx, person.CIN, now); err != nil {
		return domain.Person{}, fmt.Errorf("s.repo.TouchLastLogin -> %w", err)
	}
	person.LastLogin = &now

	return person, nil
}

func (s *AuthService) create(ctx context.Context, person domain.Person) (domain.Person, error) {
	if err := person.Validate(); err != nil {
		return domain.Person{}, invalid(err)
	}

	if err := s.checkUsernameExists(ctx, person.Username); err != nil {
		return domain.Person{}, err
	}

	hashed, err := hashPassword(person.Password)
	if err != nil {
		return domain.Person{}, err
	}
	person.Password = hashed

	created, err := s.repo.Create(ctx, person)
	if err != nil {
		return domain.Person{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func (s *AuthService) checkUsernameExists(ctx context.Context, username string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return ErrPersonExists
	}
	if !errors.Is(err, repository.ErrPersonNotFound) {
		return err
	}

	return nil
}
