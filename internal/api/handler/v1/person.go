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

type PersonService interface {
	GetPerson(ctx context.Context, cin string) (domain.Person, error)
	UpdateProfile(ctx context.Context, cin string, update service.ProfileUpdate) (domain.Person, error)
}

type PersonHandler struct {
	svc PersonService
}

func NewPersonHandler(svc PersonService) *PersonHandler {
	return &PersonHandler{
		svc: svc,
	}
}

// HandleGetMe godoc
// @Summary      Profile of the authenticated person
// @Tags         persons
// @Produce      json
// @Success      200  {object}  domain.Person
// @Failure      401  {object}  response.Err
// @Router       /persons/me [get]
// @Security     BearerAuth
func (h *PersonHandler) HandleGetMe(ctx *gin.Context) {
	person, respErr := getPersonFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ctx.JSON(http.StatusOK, person)
}

// HandleUpdateMe godoc
// @Summary      Edit the authenticated person's profile
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        request  body      request.ProfileUpdateRequest  true  "request body"
// @Success      200      {object}  domain.Person
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /persons/me [patch]
// @Security     BearerAuth
func (h *PersonHandler) HandleUpdateMe(ctx *gin.Context) {
	person, respErr := getPersonFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateProfile(ctx.Request.Context(), person.CIN, service.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		response.RenderErr(ctx, serviceErr(err, fmt.Sprintf("HandleUpdateMe -> h.svc.UpdateProfile(%s)", person.CIN), 0))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
