package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/repository/dao"
)

var (
	ErrPersonExists   = dao.ErrPersonExists
	ErrPersonNotFound = dao.ErrPersonNotFound
)

type PersonDAO interface {
	Insert(ctx context.Context, person dao.Person) (dao.Person, error)
	Update(ctx context.Context, person dao.Person) (dao.Person, error)
	TouchLastLogin(ctx context.Context, cin string, at time.Time) error
	Delete(ctx context.Context, cin string) error
	FindByCIN(ctx context.Context, cin string) (dao.Person, error)
	FindByUsername(ctx context.Context, username string) (dao.Person, error)
	SearchByUsername(ctx context.Context, term string, limit, offset int) ([]dao.Person, int64, error)
}

type PersonRepository struct {
	dao PersonDAO
}

func NewPersonRepository(dao PersonDAO) *PersonRepository {
	return &PersonRepository{
		dao: dao,
	}
}

func (r *PersonRepository) Create(ctx context.Context, person domain.Person) (domain.Person, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(person))
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PersonRepository) Update(ctx context.Context, person domain.Person) (domain.Person, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(person))
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *PersonRepository) TouchLastLogin(ctx context.Context, cin string, at time.Time) error {
	if err := r.dao.TouchLastLogin(ctx, cin, at); err != nil {
		return fmt.Errorf("r.dao.TouchLastLogin -> %w", err)
	}

	return nil
}

func (r *PersonRepository) Delete(ctx context.Context, cin string) error {
	if err := r.dao.Delete(ctx, cin); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *PersonRepository) FindByCIN(ctx context.Context, cin string) (domain.Person, error) {
	found, err := r.dao.FindByCIN(ctx, cin)
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.FindByCIN -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PersonRepository) FindByUsername(ctx context.Context, username string) (domain.Person, error) {
	found, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.FindByUsername -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PersonRepository) SearchByUsername(ctx context.Context, term string, page domain.Page) ([]domain.Person, int64, error) {
	found, total, err := r.dao.SearchByUsername(ctx, term, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.SearchByUsername -> %w", err)
	}

	persons := make([]domain.Person, 0, len(found))
	for _, p := range found {
		persons = append(persons, r.daoToDomain(p))
	}

	return persons, total, nil
}

func (r *PersonRepository) domainToDao(p domain.Person) dao.Person {
	return dao.Person{
		CIN:         p.CIN,
		Username:    p.Username,
		Email:       p.Email,
		Password:    p.Password,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		IsActive:    p.IsActive,
		IsStaff:     p.IsStaff,
		IsSuperuser: p.IsSuperuser,
		LastLogin:   p.LastLogin,
		DateJoined:  p.DateJoined,
	}
}

func (r *PersonRepository) daoToDomain(p dao.Person) domain.Person {
	return domain.Person{
		CIN:         p.CIN,
		Username:    p.Username,
		Email:       p.Email,
		Password:    p.Password,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		IsActive:    p.IsActive,
		IsStaff:     p.IsStaff,
		IsSuperuser: p.IsSuperuser,
		LastLogin:   p.LastLogin,
		DateJoined:  p.DateJoined,
	}
}
