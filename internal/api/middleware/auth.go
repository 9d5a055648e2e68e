package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/pkg/jwthelper"
)

const (
	PersonCINKey = "personCIN"
	PersonKey    = "person"
)

var (
	errMissingToken      = errors.New("missing bearer token")
	errUserAgentMismatch = errors.New("token was issued to another user agent")
	errNotStaff          = errors.New("staff status required")
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{signingKey: []byte(signingKey)}
}

// VerifyJWT stores the CIN of the bearer under PersonCINKey.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			abort(ctx, http.StatusUnauthorized, errMissingToken)
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenStr)
		if err != nil {
			abort(ctx, http.StatusUnauthorized, err)
			return
		}
		if claims.UserAgent != ctx.Request.UserAgent() {
			abort(ctx, http.StatusUnauthorized, errUserAgentMismatch)
			return
		}

		ctx.Set(PersonCINKey, claims.PersonCIN)
		ctx.Next()
	}
}

type PersonGetter interface {
	GetPerson(ctx context.Context, cin string) (domain.Person, error)
}

// RequireStaff must run after VerifyJWT. It loads the person and rejects
// anyone who is inactive or lacks staff status.
func RequireStaff(persons PersonGetter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cin := ctx.GetString(PersonCINKey)
		if cin == "" {
			abort(ctx, http.StatusUnauthorized, errMissingToken)
			return
		}

		person, err := persons.GetPerson(ctx.Request.Context(), cin)
		if err != nil {
			abort(ctx, http.StatusUnauthorized, fmt.Errorf("persons.GetPerson -> %w", err))
			return
		}
		if !person.IsActive || !(person.IsStaff || person.IsSuperuser) {
			abort(ctx, http.StatusForbidden, errNotStaff)
			return
		}

		ctx.Set(PersonKey, person)
		ctx.Next()
	}
}

func abort(ctx *gin.Context, status int, err error) {
	zap.L().Debug("request rejected", zap.Int("status", status), zap.Error(err))
	ctx.AbortWithStatusJSON(status, gin.H{
		"status_text": http.StatusText(status),
		"error_msg":   err.Error(),
	})
}
