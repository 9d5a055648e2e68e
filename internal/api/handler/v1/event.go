package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/events-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/events-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/pkg/upload"
	"github.com/vietanh2810/events-api/internal/service"
)

type EventService interface {
	ListActiveEvents(ctx context.Context) ([]domain.Event, error)
	ListAllEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	GetEventDetails(ctx context.Context, id uint, cin string) (service.EventDetails, error)
	CreateEvent(ctx context.Context, input service.EventInput, actor domain.Person) (domain.Event, error)
	UpdateEvent(ctx context.Context, id uint, input service.EventInput, actor domain.Person) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint, actor domain.Person) error
}

type ParticipationService interface {
	Join(ctx context.Context, eventID uint, cin string) (domain.Event, error)
	Cancel(ctx context.Context, eventID uint, cin string) (domain.Event, error)
}

type ImageStore interface {
	Store(ctx context.Context, filename string, r io.Reader) (string, error)
	Remove(relPath string) error
}

type EventHandler struct {
	svc     EventService
	partSvc ParticipationService
	persons PersonGetter
	images  ImageStore
}

func NewEventHandler(svc EventService, partSvc ParticipationService, persons PersonGetter, images ImageStore) *EventHandler {
	return &EventHandler{
		svc:     svc,
		partSvc: partSvc,
		persons: persons,
		images:  images,
	}
}

// HandleHello godoc
// @Summary      Greeting
// @Tags         events
// @Produce      json
// @Success      200  {object}  response.Greeting
// @Router       /hi/ [get]
func (h *EventHandler) HandleHello(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Greeting{Abc: "Bonjour"})
}

// HandleList godoc
// @Summary      List accepted events
// @Description  Events whose state flag is set, ordered by id.
// @Tags         events
// @Produce      json
// @Success      200  {object}  response.EventsResponse
// @Failure      500  {object}  response.Err
// @Router       /list/ [get]
func (h *EventHandler) HandleList(ctx *gin.Context) {
	events, err := h.svc.ListActiveEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleList -> h.svc.ListActiveEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.EventsResponse{Events: events})
}

// HandleAffiche godoc
// @Summary      List every event
// @Tags         events
// @Produce      json
// @Success      200  {object}  response.EventsResponse
// @Failure      500  {object}  response.Err
// @Router       /affiche/ [get]
func (h *EventHandler) HandleAffiche(ctx *gin.Context) {
	events, err := h.svc.ListAllEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleAffiche -> h.svc.ListAllEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.EventsResponse{Events: events})
}

// HandleDetails godoc
// @Summary      Event details
// @Description  btn tells whether the authenticated person already joined the event.
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  response.EventDetailsResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /details/{id} [get]
// @Security     BearerAuth
func (h *EventHandler) HandleDetails(ctx *gin.Context) {
	person, respErr := getPersonFromContext(ctx, h.persons)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	details, err := h.svc.GetEventDetails(ctx.Request.Context(), id, person.CIN)
	if err != nil {
		response.RenderErr(ctx, serviceErr(err, "HandleDetails -> h.svc.GetEventDetails", id))
		return
	}

	ctx.JSON(http.StatusOK, response.EventDetailsResponse{
		Event: details.Event,
		Btn:   details.Participating,
	})
}

// HandleDetailsClass godoc
// @Summary      Event details without participation state
// @Tags         events
// @Produce      json
// @Param        pk   path      int  true  "Event ID"
// @Success      200  {object}  response.EventResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /detailsClass/{pk} [get]
func (h *EventHandler) HandleDetailsClass(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "pk")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		response.RenderErr(ctx, serviceErr(err, "HandleDetailsClass -> h.svc.GetEvent", id))
		return
	}

	ctx.JSON(http.StatusOK, response.EventResponse{Event: event})
}

// HandleDelete godoc
// @Summary      Delete an event
// @Description  Only the organizer or a staff member may delete. Participants are removed with the event.
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  response.RedirectResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /delete/{id} [post]
// @Security     BearerAuth
func (h *EventHandler) HandleDelete(ctx *gin.Context) {
	h.deleteEvent(ctx, "id")
}

// HandleDeleteClassConfirm godoc
// @Summary      Delete confirmation
// @Tags         events
// @Produce      json
// @Param        pk   path      int  true  "Event ID"
// @Success      200  {object}  response.DeleteConfirmation
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /deleteClass/{pk} [get]
// @Security     BearerAuth
func (h *EventHandler) HandleDeleteClassConfirm(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "pk")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		response.RenderErr(ctx, serviceErr(err, "HandleDeleteClassConfirm -> h.svc.GetEvent", id))
		return
	}

	ctx.JSON(http.StatusOK, response.DeleteConfirmation{
		Event:    event,
		Question: fmt.Sprintf("Are you sure you want to delete %q?", event.String()),
		Action:   fmt.Sprintf("/api/v1/deleteClass/%d", event.ID),
	})
}

// HandleDeleteClass godoc
// @Summary      Delete an event (confirmed)
// @Tags         events
// @Produce      json
// @Param        pk   path      int  true  "Event ID"
// @Success      200  {object}  response.RedirectResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /deleteClass/{pk} [post]
// @Security     BearerAuth
func (h *EventHandler) HandleDeleteClass(ctx *gin.Context) {
	h.deleteEvent(ctx, "pk")
}

func (h *EventHandler) deleteEvent(ctx *gin.Context, param string) {
	person, respErr := getPersonFromContext(ctx, h.persons)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseIDParam(ctx, param)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), id, person); err != nil {
		response.RenderErr(ctx, serviceErr(err, "deleteEvent -> h.svc.DeleteEvent", id))
		return
	}

	ctx.JSON(http.StatusOK, response.RedirectResponse{Redirect: response.ListRedirect})
}

// HandleParticiper godoc
// @Summary      Join an event
// @Description  Adds the authenticated person to the event and increments its counter atomically.
// @Tags         participation
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  response.RedirectResponse
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Router       /participer/{id} [post]
// @Security     BearerAuth
func (h *EventHandler) HandleParticiper(ctx *gin.Context) {
	h.participation(ctx, h.partSvc.Join, "HandleParticiper -> h.partSvc.Join")
}

// HandleCancel godoc
// @Summary      Leave an event
// @Description  Removes the authenticated person from the event and decrements its counter atomically.
// @Tags         participation
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  response.RedirectResponse
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Router       /cancel/{id} [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCancel(ctx *gin.Context) {
	h.participation(ctx, h.partSvc.Cancel, "HandleCancel -> h.partSvc.Cancel")
}

func (h *EventHandler) participation(ctx *gin.Context, fn func(context.Context, uint, string) (domain.Event, error), op string) {
	person, respErr := getPersonFromContext(ctx, h.persons)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := fn(ctx.Request.Context(), id, person.CIN)
	if err != nil {
		response.RenderErr(ctx, serviceErr(err, op, id))
		return
	}

	ctx.JSON(http.StatusOK, response.RedirectResponse{
		Redirect: response.ListRedirect,
		Event:    &event,
	})
}

// HandleAddForm godoc
// @Summary      Event creation form
// @Tags         events
// @Produce      json
// @Success      200  {object}  response.FormDescriptor
// @Router       /add/ [get]
// @Security     BearerAuth
func (h *EventHandler) HandleAddForm(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.NewEventForm("/api/v1/add/", nil))
}

// HandleAdd godoc
// @Summary      Create an event
// @Description  Accepts JSON or multipart form data. A multipart "image" file is stored under images/.
// @Tags         events
// @Accept       json,mpfd
// @Produce      json
// @Param        request  body      request.EventForm  true  "event form"
// @Success      201      {object}  response.RedirectResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /add/ [post]
// @Security     BearerAuth
func (h *EventHandler) HandleAdd(ctx *gin.Context) {
	person, respErr := getPersonFromContext(ctx, h.persons)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	input, image, respErr := h.bindEventForm(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), input, person)
	if err != nil {
		h.discardImage(image)
		response.RenderErr(ctx, serviceErr(err, "HandleAdd -> h.svc.CreateEvent", 0))
		return
	}

	ctx.JSON(http.StatusCreated, response.RedirectResponse{
		Redirect: response.ListRedirect,
		Event:    &event,
	})
}

// HandleUpdateForm godoc
// @Summary      Event edition form with the current values
// @Tags         events
// @Produce      json
// @Param        pk   path      int  true  "Event ID"
// @Success      200  {object}  response.FormDescriptor
// @Failure      404  {object}  response.Err
// @Router       /update/{pk} [get]
// @Security     BearerAuth
func (h *EventHandler) HandleUpdateForm(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "pk")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		response.RenderErr(ctx, serviceErr(err, "HandleUpdateForm -> h.svc.GetEvent", id))
		return
	}

	ctx.JSON(http.StatusOK, response.NewEventForm(fmt.Sprintf("/api/v1/update/%d", id), &event))
}

// HandleUpdate godoc
// @Summary      Update an event
// @Description  Only the organizer or a staff member may update. An omitted image keeps the stored one.
// @Tags         events
// @Accept       json,mpfd
// @Produce      json
// @Param        pk       path      int                true  "Event ID"
// @Param        request  body      request.EventForm  true  "event form"
// @Success      200      {object}  response.RedirectResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /update/{pk} [post]
// @Security     BearerAuth
func (h *EventHandler) HandleUpdate(ctx *gin.Context) {
	person, respErr := getPersonFromContext(ctx, h.persons)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseIDParam(ctx, "pk")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	input, image, respErr := h.bindEventForm(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.UpdateEvent(ctx.Request.Context(), id, input, person)
	if err != nil {
		h.discardImage(image)
		response.RenderErr(ctx, serviceErr(err, "HandleUpdate -> h.svc.UpdateEvent", id))
		return
	}

	ctx.JSON(http.StatusOK, response.RedirectResponse{
		Redirect: response.ListRedirect,
		Event:    &event,
	})
}

// bindEventForm validates the form and stores the uploaded image, if any.
func (h *EventHandler) bindEventForm(ctx *gin.Context) (service.EventInput, string, *response.Err) {
	var form request.EventForm
	if err := ctx.ShouldBind(&form); err != nil {
		return service.EventInput{}, "", response.ErrBadRequest(err)
	}
	if err := form.Validate(); err != nil {
		return service.EventInput{}, "", response.ErrBadRequest(err)
	}

	image := ""
	fileHeader, err := ctx.FormFile("image")
	switch {
	case err == nil:
		file, err := fileHeader.Open()
		if err != nil {
			return service.EventInput{}, "", response.ErrBadRequest(fmt.Errorf("fileHeader.Open -> %w", err))
		}
		defer file.Close()

		image, err = h.images.Store(ctx.Request.Context(), fileHeader.Filename, file)
		if err != nil {
			if errors.Is(err, upload.ErrUnsupportedImage) || errors.Is(err, upload.ErrImageTooLarge) {
				return service.EventInput{}, "", response.ErrBadRequest(err)
			}
			return service.EventInput{}, "", response.ErrInternalServerError(fmt.Errorf("h.images.Store -> %w", err))
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		return service.EventInput{}, "", response.ErrBadRequest(err)
	}

	input, err := form.ToInput(image)
	if err != nil {
		h.discardImage(image)
		return service.EventInput{}, "", response.ErrBadRequest(err)
	}

	return input, image, nil
}

func (h *EventHandler) discardImage(image string) {
	if err := h.images.Remove(image); err != nil {
		zap.L().Warn("failed to remove orphan image", zap.String("image", image), zap.Error(err))
	}
}
