package v1

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/service"
)

type mockPersonService struct {
	mock.Mock
}

func (m *mockPersonService) GetPerson(ctx context.Context, cin string) (domain.Person, error) {
	args := m.Called(ctx, cin)
	return args.Get(0).(domain.Person), args.Error(1)
}

func (m *mockPersonService) UpdateProfile(ctx context.Context, cin string, update service.ProfileUpdate) (domain.Person, error) {
	args := m.Called(ctx, cin, update)
	return args.Get(0).(domain.Person), args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Signup(ctx context.Context, person domain.Person) (domain.Person, error) {
	args := m.Called(ctx, person)
	return args.Get(0).(domain.Person), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (domain.Person, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.Person), args.Error(1)
}

type mockEventService struct {
	mock.Mock
}

func (m *mockEventService) ListActiveEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventService) ListAllEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) GetEventDetails(ctx context.Context, id uint, cin string) (service.EventDetails, error) {
	args := m.Called(ctx, id, cin)
	return args.Get(0).(service.EventDetails), args.Error(1)
}

func (m *mockEventService) CreateEvent(ctx context.Context, input service.EventInput, actor domain.Person) (domain.Event, error) {
	args := m.Called(ctx, input, actor)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) UpdateEvent(ctx context.Context, id uint, input service.EventInput, actor domain.Person) (domain.Event, error) {
	args := m.Called(ctx, id, input, actor)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) DeleteEvent(ctx context.Context, id uint, actor domain.Person) error {
	return m.Called(ctx, id, actor).Error(0)
}

type mockParticipationService struct {
	mock.Mock
}

func (m *mockParticipationService) Join(ctx context.Context, eventID uint, cin string) (domain.Event, error) {
	args := m.Called(ctx, eventID, cin)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockParticipationService) Cancel(ctx context.Context, eventID uint, cin string) (domain.Event, error) {
	args := m.Called(ctx, eventID, cin)
	return args.Get(0).(domain.Event), args.Error(1)
}

type mockImageStore struct {
	mock.Mock
}

func (m *mockImageStore) Store(ctx context.Context, filename string, r io.Reader) (string, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(ctx, filename, string(data))
	return args.String(0), args.Error(1)
}

func (m *mockImageStore) Remove(relPath string) error {
	return m.Called(relPath).Error(0)
}

type mockAdminService struct {
	mock.Mock
}

func (m *mockAdminService) ListEvents(ctx context.Context, filter domain.EventFilter, page int) (domain.EventPage, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.EventPage), args.Error(1)
}

func (m *mockAdminService) AcceptEvents(ctx context.Context, ids []uint) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAdminService) RefuseEvents(ctx context.Context, ids []uint) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAdminService) EventParticipants(ctx context.Context, eventID uint) ([]domain.Participant, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.Participant), args.Error(1)
}

func (m *mockAdminService) AddParticipants(ctx context.Context, eventID uint, cins []string) ([]service.InlineResult, error) {
	args := m.Called(ctx, eventID, cins)
	return args.Get(0).([]service.InlineResult), args.Error(1)
}

func (m *mockAdminService) RemoveParticipant(ctx context.Context, eventID uint, cin string) (domain.Event, error) {
	args := m.Called(ctx, eventID, cin)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockAdminService) ListParticipants(ctx context.Context, page int) ([]domain.Participant, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Participant), args.Get(1).(int64), args.Error(2)
}

func (m *mockAdminService) SearchPersons(ctx context.Context, term string, page int) ([]domain.Person, int64, error) {
	args := m.Called(ctx, term, page)
	return args.Get(0).([]domain.Person), args.Get(1).(int64), args.Error(2)
}
