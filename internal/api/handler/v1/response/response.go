package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	Err            error  `json:"-"`
	HTTPStatusCode int    `json:"-"`
	StatusText     string `json:"status_text"`
	ErrorMsg       string `json:"error_msg,omitempty"`
}

func (e *Err) Error() string {
	return e.StatusText + ": " + e.ErrorMsg
}

// RenderErr writes e as JSON. Server errors are logged with the wrapped cause
// and reported to the client without it.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("internal error",
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(e.Err),
		)
	}

	_ = ctx.Error(e)
	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func newErr(status int, err error) *Err {
	msg := ""
	if err != nil {
		msg = err.Error()
	}

	return &Err{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
		ErrorMsg:       msg,
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err)
}

func ErrWrongCredentials(err error) *Err {
	return newErr(http.StatusUnauthorized, errors.New("wrong username or password"))
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, err)
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, err)
}

func ErrNotFound(resource, key string, value any) *Err {
	return newErr(http.StatusNotFound, fmt.Errorf("%s with %s %v not found", resource, key, value))
}

// ErrMissing is a 404 for callers that cannot name the missing key.
func ErrMissing(err error) *Err {
	return newErr(http.StatusNotFound, err)
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, err)
}

func ErrInternalServerError(err error) *Err {
	e := newErr(http.StatusInternalServerError, err)
	e.ErrorMsg = "something went wrong"

	return e
}
