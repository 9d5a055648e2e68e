package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/events-api/internal/domain"
)

type mockPersonRepo struct {
	mock.Mock
}

func (m *mockPersonRepo) Create(ctx context.Context, person domain.Person) (domain.Person, error) {
	args := m.Called(ctx, person)
	if fn, ok := args.Get(0).(func(context.Context, domain.Person) domain.Person); ok {
		return fn(ctx, person), args.Error(1)
	}
	return args.Get(0).(domain.Person), args.Error(1)
}

func (m *mockPersonRepo) FindByUsername(ctx context.Context, username string) (domain.Person, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.Person), args.Error(1)
}

func (m *mockPersonRepo) TouchLastLogin(ctx context.Context, cin string, at time.Time) error {
	return m.Called(ctx, cin, at).Error(0)
}

func (m *mockPersonRepo) FindByCIN(ctx context.Context, cin string) (domain.Person, error) {
	args := m.Called(ctx, cin)
	return args.Get(0).(domain.Person), args.Error(1)
}

func (m *mockPersonRepo) Update(ctx context.Context, person domain.Person) (domain.Person, error) {
	args := m.Called(ctx, person)
	if fn, ok := args.Get(0).(func(context.Context, domain.Person) domain.Person); ok {
		return fn(ctx, person), args.Error(1)
	}
	return args.Get(0).(domain.Person), args.Error(1)
}

func (m *mockPersonRepo) Delete(ctx context.Context, cin string) error {
	return m.Called(ctx, cin).Error(0)
}

func (m *mockPersonRepo) SearchByUsername(ctx context.Context, term string, page domain.Page) ([]domain.Person, int64, error) {
	args := m.Called(ctx, term, page)
	return args.Get(0).([]domain.Person), args.Get(1).(int64), args.Error(2)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, event)
	if fn, ok := args.Get(0).(func(context.Context, domain.Event) domain.Event); ok {
		return fn(ctx, event), args.Error(1)
	}
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepo) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, event)
	if fn, ok := args.Get(0).(func(context.Context, domain.Event) domain.Event); ok {
		return fn(ctx, event), args.Error(1)
	}
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id uint) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepo) Find(ctx context.Context, filter domain.EventFilter, page domain.Page) (domain.EventPage, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.EventPage), args.Error(1)
}

func (m *mockEventRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEventRepo) SetState(ctx context.Context, ids []uint, state bool) (int64, error) {
	args := m.Called(ctx, ids, state)
	return args.Get(0).(int64), args.Error(1)
}

type mockParticipantRepo struct {
	mock.Mock
}

func (m *mockParticipantRepo) Join(ctx context.Context, eventID uint, cin string) (domain.Participant, domain.Event, error) {
	args := m.Called(ctx, eventID, cin)
	return args.Get(0).(domain.Participant), args.Get(1).(domain.Event), args.Error(2)
}

func (m *mockParticipantRepo) Cancel(ctx context.Context, eventID uint, cin string) (domain.Event, error) {
	args := m.Called(ctx, eventID, cin)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockParticipantRepo) IsParticipating(ctx context.Context, eventID uint, cin string) (bool, error) {
	args := m.Called(ctx, eventID, cin)
	return args.Bool(0), args.Error(1)
}

func (m *mockParticipantRepo) FindByEventID(ctx context.Context, eventID uint) ([]domain.Participant, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.Participant), args.Error(1)
}

func (m *mockParticipantRepo) FindAll(ctx context.Context, page domain.Page) ([]domain.Participant, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Participant), args.Get(1).(int64), args.Error(2)
}
