package v1

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/events-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/service"
)

type eventFixture struct {
	events  *mockEventService
	part    *mockParticipationService
	persons *mockPersonService
	images  *mockImageStore
}

func newEventRouter(cin string) (*gin.Engine, eventFixture) {
	f := eventFixture{
		events:  new(mockEventService),
		part:    new(mockParticipationService),
		persons: new(mockPersonService),
		images:  new(mockImageStore),
	}
	f.persons.On("GetPerson", mock.Anything, organizer.CIN).Return(organizer, nil).Maybe()
	f.persons.On("GetPerson", mock.Anything, visitor.CIN).Return(visitor, nil).Maybe()

	h := NewEventHandler(f.events, f.part, f.persons, f.images)
	r := gin.New()
	r.GET("/hi/", h.HandleHello)
	r.GET("/list/", h.HandleList)
	r.GET("/detailsClass/:pk", h.HandleDetailsClass)

	auth := r.Group("", asPerson(cin))
	auth.GET("/details/:id", h.HandleDetails)
	auth.POST("/delete/:id", h.HandleDelete)
	auth.GET("/deleteClass/:pk", h.HandleDeleteClassConfirm)
	auth.POST("/participer/:id", h.HandleParticiper)
	auth.POST("/cancel/:id", h.HandleCancel)
	auth.GET("/add/", h.HandleAddForm)
	auth.POST("/add/", h.HandleAdd)
	auth.GET("/update/:pk", h.HandleUpdateForm)
	auth.POST("/update/:pk", h.HandleUpdate)

	return r, f
}

func sampleEvent() domain.Event {
	n := 0
	cin := organizer.CIN
	return domain.Event{
		ID:              7,
		Title:           "Concert",
		Description:     "Open air",
		Category:        domain.CategoryMusique,
		State:           true,
		NbrParticipants: &n,
		EvtDate:         time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC),
		OrganisateurCIN: &cin,
	}
}

func TestHandleHello(t *testing.T) {
	r, _ := newEventRouter("")

	w := doJSON(t, r, http.MethodGet, "/hi/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"abc":"Bonjour"}`, w.Body.String())
}

func TestHandleList(t *testing.T) {
	r, f := newEventRouter("")
	f.events.On("ListActiveEvents", mock.Anything).Return([]domain.Event{sampleEvent()}, nil)

	w := doJSON(t, r, http.MethodGet, "/list/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[response.EventsResponse](t, w)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "Concert", resp.Events[0].Title)
}

func TestHandleDetails(t *testing.T) {
	r, f := newEventRouter(visitor.CIN)
	f.events.On("GetEventDetails", mock.Anything, uint(7), visitor.CIN).
		Return(service.EventDetails{Event: sampleEvent(), Participating: true}, nil)
	f.events.On("GetEventDetails", mock.Anything, uint(8), visitor.CIN).
		Return(service.EventDetails{}, fmt.Errorf("s.repo.GetByID -> %w", service.ErrEventNotFound))

	w := doJSON(t, r, http.MethodGet, "/details/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[response.EventDetailsResponse](t, w).Btn)

	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, "/details/8", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, r, http.MethodGet, "/details/abc", nil).Code)
}

func TestHandleDetails_Unauthenticated(t *testing.T) {
	r, _ := newEventRouter("")

	assert.Equal(t, http.StatusUnauthorized, doJSON(t, r, http.MethodGet, "/details/7", nil).Code)
}

func TestHandleDetailsClass(t *testing.T) {
	r, f := newEventRouter("")
	f.events.On("GetEvent", mock.Anything, uint(7)).Return(sampleEvent(), nil)

	w := doJSON(t, r, http.MethodGet, "/detailsClass/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), decode[response.EventResponse](t, w).Event.ID)
}

func TestHandleDelete(t *testing.T) {
	r, f := newEventRouter(visitor.CIN)
	f.events.On("DeleteEvent", mock.Anything, uint(7), visitor).Return(service.ErrNotOrganizer).Once()
	f.events.On("DeleteEvent", mock.Anything, uint(9), visitor).Return(fmt.Errorf("x -> %w", service.ErrEventNotFound)).Once()

	assert.Equal(t, http.StatusForbidden, doJSON(t, r, http.MethodPost, "/delete/7", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodPost, "/delete/9", nil).Code)

	r, f = newEventRouter(organizer.CIN)
	f.events.On("DeleteEvent", mock.Anything, uint(7), organizer).Return(nil).Once()

	w := doJSON(t, r, http.MethodPost, "/delete/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.ListRedirect, decode[response.RedirectResponse](t, w).Redirect)
}

func TestHandleDeleteClassConfirm(t *testing.T) {
	r, f := newEventRouter(organizer.CIN)
	f.events.On("GetEvent", mock.Anything, uint(7)).Return(sampleEvent(), nil)

	w := doJSON(t, r, http.MethodGet, "/deleteClass/7", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[response.DeleteConfirmation](t, w)
	assert.Contains(t, resp.Question, "Concert")
	assert.Equal(t, "/api/v1/deleteClass/7", resp.Action)
}

func TestHandleParticiper(t *testing.T) {
	r, f := newEventRouter(visitor.CIN)
	joined := sampleEvent()
	one := 1
	joined.NbrParticipants = &one

	f.part.On("Join", mock.Anything, uint(7), visitor.CIN).Return(joined, nil).Once()
	f.part.On("Join", mock.Anything, uint(7), visitor.CIN).Return(domain.Event{}, fmt.Errorf("tx -> %w", service.ErrAlreadyParticipating)).Once()
	f.part.On("Join", mock.Anything, uint(8), visitor.CIN).Return(domain.Event{}, service.ErrEventNotActive).Once()

	w := doJSON(t, r, http.MethodPost, "/participer/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[response.RedirectResponse](t, w)
	require.NotNil(t, resp.Event)
	assert.Equal(t, 1, resp.Event.Participants())

	assert.Equal(t, http.StatusConflict, doJSON(t, r, http.MethodPost, "/participer/7", nil).Code)
	assert.Equal(t, http.StatusConflict, doJSON(t, r, http.MethodPost, "/participer/8", nil).Code)
}

func TestHandleCancel(t *testing.T) {
	r, f := newEventRouter(visitor.CIN)
	f.part.On("Cancel", mock.Anything, uint(7), visitor.CIN).Return(sampleEvent(), nil).Once()
	f.part.On("Cancel", mock.Anything, uint(7), visitor.CIN).Return(domain.Event{}, service.ErrNotParticipating).Once()

	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/cancel/7", nil).Code)
	assert.Equal(t, http.StatusConflict, doJSON(t, r, http.MethodPost, "/cancel/7", nil).Code)
}

func TestHandleAddForm(t *testing.T) {
	r, _ := newEventRouter(organizer.CIN)

	w := doJSON(t, r, http.MethodGet, "/add/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	form := decode[response.FormDescriptor](t, w)
	names := make([]string, 0, len(form.Fields))
	for _, field := range form.Fields {
		names = append(names, field.Name)
	}
	assert.Equal(t, []string{"title", "description", "category", "image", "evt_date", "organisateur"}, names)
	assert.NotContains(t, names, "nbr_participants")
	assert.NotContains(t, names, "state")
}

func TestHandleAdd_JSON(t *testing.T) {
	r, f := newEventRouter(organizer.CIN)
	f.events.On("CreateEvent", mock.Anything, mock.MatchedBy(func(in service.EventInput) bool {
		return in.Title == "Concert" && in.Category == domain.CategoryMusique &&
			in.EvtDate.Equal(time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)) && in.Image == ""
	}), organizer).Return(sampleEvent(), nil)

	w := doJSON(t, r, http.MethodPost, "/add/", map[string]any{
		"title":            "Concert",
		"description":      "Open air",
		"category":         "musique",
		"evt_date":         "2030-05-01",
		"nbr_participants": 99,
		"state":            false,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, response.ListRedirect, decode[response.RedirectResponse](t, w).Redirect)
	f.events.AssertExpectations(t)
}

func TestHandleAdd_PastDate(t *testing.T) {
	r, f := newEventRouter(organizer.CIN)
	f.events.On("CreateEvent", mock.Anything, mock.Anything, organizer).Return(domain.Event{}, domain.ErrEventDateNotLate)
	f.images.On("Remove", "").Return(nil)

	w := doJSON(t, r, http.MethodPost, "/add/", map[string]any{
		"title":       "Concert",
		"description": "Open air",
		"category":    "musique",
		"evt_date":    "2001-05-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "please check the event date")
}

func TestHandleAdd_Multipart(t *testing.T) {
	r, f := newEventRouter(organizer.CIN)
	f.images.On("Store", mock.Anything, "poster.png", "png-bytes").Return("images/abc_poster.png", nil)
	f.events.On("CreateEvent", mock.Anything, mock.MatchedBy(func(in service.EventInput) bool {
		return in.Image == "images/abc_poster.png"
	}), organizer).Return(sampleEvent(), nil)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range map[string]string{
		"title":       "Concert",
		"description": "Open air",
		"category":    "musique",
		"evt_date":    "2030-05-01T20:00",
	} {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("image", "poster.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/add/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	f.images.AssertExpectations(t)
	f.events.AssertExpectations(t)
}

func TestHandleUpdate(t *testing.T) {
	r, f := newEventRouter(visitor.CIN)
	f.events.On("UpdateEvent", mock.Anything, uint(7), mock.Anything, visitor).Return(domain.Event{}, service.ErrNotOrganizer)
	f.images.On("Remove", "").Return(nil)

	w := doJSON(t, r, http.MethodPost, "/update/7", map[string]any{
		"title":       "Concert",
		"description": "Open air",
		"category":    "musique",
		"evt_date":    "2030-05-01",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandleUpdateForm(t *testing.T) {
	r, f := newEventRouter(organizer.CIN)
	f.events.On("GetEvent", mock.Anything, uint(7)).Return(sampleEvent(), nil)

	w := doJSON(t, r, http.MethodGet, "/update/7", nil)
	require.Equal(t, http.StatusOK, w.Code)

	form := decode[response.FormDescriptor](t, w)
	assert.Equal(t, "/api/v1/update/7", form.Action)
	for _, field := range form.Fields {
		if field.Name == "evt_date" {
			assert.Equal(t, "2030-05-01", field.Value)
		}
	}
}
