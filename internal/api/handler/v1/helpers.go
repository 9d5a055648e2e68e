package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/events-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/events-api/internal/api/middleware"
	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/service"
)

type PersonGetter interface {
	GetPerson(ctx context.Context, cin string) (domain.Person, error)
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         health
// @Produce      json
// @Success      200
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getPersonFromContext resolves the person authenticated by VerifyJWT.
func getPersonFromContext(ctx *gin.Context, persons PersonGetter) (domain.Person, *response.Err) {
	if v, ok := ctx.Get(middleware.PersonKey); ok {
		if person, ok := v.(domain.Person); ok {
			return person, nil
		}
	}

	cin := ctx.GetString(middleware.PersonCINKey)
	if cin == "" {
		return domain.Person{}, response.ErrUnauthorized(errors.New("missing authenticated person"))
	}

	person, err := persons.GetPerson(ctx.Request.Context(), cin)
	if err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			return domain.Person{}, response.ErrUnauthorized(fmt.Errorf("person %s no longer exists", cin))
		}

		return domain.Person{}, response.ErrInternalServerError(fmt.Errorf("persons.GetPerson -> %w", err))
	}
	if !person.IsActive {
		return domain.Person{}, response.ErrUnauthorized(service.ErrInactivePerson)
	}
	ctx.Set(middleware.PersonKey, person)

	return person, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid event %s %q", name, ctx.Param(name)))
	}

	return uint(id), nil
}

// serviceErr maps domain failures onto HTTP errors. Anything unknown is a 500.
func serviceErr(err error, op string, eventID uint) *response.Err {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return response.ErrBadRequest(validationErr.Err)
	case errors.Is(err, service.ErrEventNotFound):
		return response.ErrNotFound("event", "id", eventID)
	case errors.Is(err, service.ErrPersonNotFound):
		return response.ErrMissing(service.ErrPersonNotFound)
	case errors.Is(err, service.ErrEventDateNotLate),
		errors.Is(err, service.ErrOrganizerNotFound),
		errors.Is(err, service.ErrTooManyInline):
		return response.ErrBadRequest(err)
	case errors.Is(err, service.ErrNotOrganizer):
		return response.ErrPermissionDenied(service.ErrNotOrganizer)
	case errors.Is(err, service.ErrAlreadyParticipating):
		return response.ErrConflict(service.ErrAlreadyParticipating)
	case errors.Is(err, service.ErrNotParticipating):
		return response.ErrConflict(service.ErrNotParticipating)
	case errors.Is(err, service.ErrEventNotActive):
		return response.ErrConflict(service.ErrEventNotActive)
	default:
		return response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err))
	}
}
