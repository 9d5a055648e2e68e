package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/events-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/events-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/service"
)

type AdminService interface {
	ListEvents(ctx context.Context, filter domain.EventFilter, page int) (domain.EventPage, error)
	AcceptEvents(ctx context.Context, ids []uint) (int64, error)
	RefuseEvents(ctx context.Context, ids []uint) (int64, error)
	EventParticipants(ctx context.Context, eventID uint) ([]domain.Participant, error)
	AddParticipants(ctx context.Context, eventID uint, cins []string) ([]service.InlineResult, error)
	RemoveParticipant(ctx context.Context, eventID uint, cin string) (domain.Event, error)
	ListParticipants(ctx context.Context, page int) ([]domain.Participant, int64, error)
	SearchPersons(ctx context.Context, term string, page int) ([]domain.Person, int64, error)
}

// AdminHandler is mounted behind middleware.RequireStaff.
type AdminHandler struct {
	svc AdminService
}

func NewAdminHandler(svc AdminService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      Admin event listing
// @Tags         admin
// @Produce      json
// @Param        category  query     string  false  "sport, musique or Cinema"
// @Param        state     query     bool    false  "state flag"
// @Param        nbr       query     string  false  "Number of participants: No or Yes"
// @Param        search    query     string  false  "title contains"
// @Param        page      query     int     false  "page number"
// @Success      200       {object}  domain.EventPage
// @Failure      400       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Router       /admin/events [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleListEvents(ctx *gin.Context) {
	var q request.EventFilterQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	filter, err := q.ToFilter()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	page, err := h.svc.ListEvents(ctx.Request.Context(), filter, q.Page)
	if err != nil {
		response.RenderErr(ctx, serviceErr(err, "HandleListEvents -> h.svc.ListEvents", 0))
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleAcceptEvents godoc
// @Summary      Set state=true on the selected events
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.BulkIDsRequest  true  "event ids"
// @Success      200      {object}  response.BulkActionResponse
// @Failure      400      {object}  response.Err
// @Router       /admin/events/actions/accept [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleAcceptEvents(ctx *gin.Context) {
	h.bulkState(ctx, h.svc.AcceptEvents, "accepted")
}

// HandleRefuseEvents godoc
// @Summary      Set state=false on the selected events
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.BulkIDsRequest  true  "event ids"
// @Success      200      {object}  response.BulkActionResponse
// @Failure      400      {object}  response.Err
// @Router       /admin/events/actions/refuse [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleRefuseEvents(ctx *gin.Context) {
	h.bulkState(ctx, h.svc.RefuseEvents, "refused")
}

func (h *AdminHandler) bulkState(ctx *gin.Context, fn func(context.Context, []uint) (int64, error), verb string) {
	var req request.BulkIDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	n, err := fn(ctx.Request.Context(), req.IDs)
	if err != nil {
		response.RenderErr(ctx, serviceErr(err, "bulkState("+verb+")", 0))
		return
	}

	ctx.JSON(http.StatusOK, response.BulkActionResponse{
		Affected: n,
		Message:  fmt.Sprintf("%d event(s) %s", n, verb),
	})
}

// HandleEventParticipants godoc
// @Summary      Participants of an event
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  response.ParticipantsResponse
// @Failure      404  {object}  response.Err
// @Router       /admin/events/{id}/participants [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleEventParticipants(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	participants, err := h.svc.EventParticipants(ctx.Request.Context(), id)
	if err != nil {
		response.RenderErr(ctx, serviceErr(err, "HandleEventParticipants -> h.svc.EventParticipants", id))
		return
	}

	ctx.JSON(http.StatusOK, response.ParticipantsResponse{
		Participants: participants,
		Total:        int64(len(participants)),
	})
}

// HandleAddParticipants godoc
// @Summary      Add participants inline
// @Description  Each person is joined on its own; the result lists the outcome per person.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      int                                true  "Event ID"
// @Param        request  body      request.InlineParticipantsRequest  true  "person CINs"
// @Success      200      {object}  response.InlineParticipantsResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /admin/events/{id}/participants [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleAddParticipants(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.InlineParticipantsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	results, err := h.svc.AddParticipants(ctx.Request.Context(), id, req.Persons)
	if err != nil {
		response.RenderErr(ctx, serviceErr(err, "HandleAddParticipants -> h.svc.AddParticipants", id))
		return
	}

	ctx.JSON(http.StatusOK, response.InlineParticipantsResponse{Results: results})
}

// HandleRemoveParticipant godoc
// @Summary      Remove a participant
// @Tags         admin
// @Produce      json
// @Param        id   path      int     true  "Event ID"
// @Param        cin  path      string  true  "Person CIN"
// @Success      200  {object}  response.EventResponse
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Router       /admin/events/{id}/participants/{cin} [delete]
// @Security     BearerAuth
func (h *AdminHandler) HandleRemoveParticipant(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	cin := ctx.Param("cin")
	if err := domain.ValidateCIN(cin); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.RemoveParticipant(ctx.Request.Context(), id, cin)
	if err != nil {
		response.RenderErr(ctx, serviceErr(err, "HandleRemoveParticipant -> h.svc.RemoveParticipant", id))
		return
	}

	ctx.JSON(http.StatusOK, response.EventResponse{Event: event})
}

// HandleListParticipants godoc
// @Summary      All participant rows
// @Tags         admin
// @Produce      json
// @Param        page  query     int  false  "page number"
// @Success      200   {object}  response.ParticipantsResponse
// @Router       /admin/participants [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleListParticipants(ctx *gin.Context) {
	var q request.SearchQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participants, total, err := h.svc.ListParticipants(ctx.Request.Context(), q.Page)
	if err != nil {
		response.RenderErr(ctx, serviceErr(err, "HandleListParticipants -> h.svc.ListParticipants", 0))
		return
	}

	ctx.JSON(http.StatusOK, response.ParticipantsResponse{
		Participants: participants,
		Total:        total,
		Page:         max(q.Page, 1),
	})
}

// HandleSearchPersons godoc
// @Summary      Search persons by username
// @Tags         admin
// @Produce      json
// @Param        search  query     string  false  "username contains"
// @Param        page    query     int     false  "page number"
// @Success      200     {object}  response.PersonsResponse
// @Router       /admin/persons [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleSearchPersons(ctx *gin.Context) {
	var q request.SearchQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	persons, total, err := h.svc.SearchPersons(ctx.Request.Context(), q.Search, q.Page)
	if err != nil {
		response.RenderErr(ctx, serviceErr(err, "HandleSearchPersons -> h.svc.SearchPersons", 0))
		return
	}

	ctx.JSON(http.StatusOK, response.PersonsResponse{
		Persons: persons,
		Total:   total,
		Page:    max(q.Page, 1),
	})
}
