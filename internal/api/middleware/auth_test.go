package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/pkg/jwthelper"
)

const signingKey = "0123456789abcdef0123456789abcdef"

type stubPersons map[string]domain.Person

func (s stubPersons) GetPerson(_ context.Context, cin string) (domain.Person, error) {
	p, ok := s[cin]
	if !ok {
		return domain.Person{}, errors.New("not found")
	}
	return p, nil
}

func newRouter(persons PersonGetter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := NewAuthenticator(signingKey)

	r.GET("/me", auth.VerifyJWT(), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(PersonCINKey))
	})
	r.GET("/admin", auth.VerifyJWT(), RequireStaff(persons), func(ctx *gin.Context) {
		p := ctx.MustGet(PersonKey).(domain.Person)
		ctx.String(http.StatusOK, p.Username)
	})

	return r
}

func request(t *testing.T, r http.Handler, path, cin, agent string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("User-Agent", agent)
	if cin != "" {
		token, err := jwthelper.GenerateToken([]byte(signingKey), cin, "test-agent", time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestVerifyJWT(t *testing.T) {
	r := newRouter(stubPersons{})

	w := request(t, r, "/me", "12345678", "test-agent")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12345678", w.Body.String())

	w = request(t, r, "/me", "", "test-agent")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(t, r, "/me", "12345678", "other-agent")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireStaff(t *testing.T) {
	r := newRouter(stubPersons{
		"11111111": {CIN: "11111111", Username: "boss", IsActive: true, IsStaff: true},
		"22222222": {CIN: "22222222", Username: "user", IsActive: true},
		"33333333": {CIN: "33333333", Username: "gone", IsStaff: true},
	})

	w := request(t, r, "/admin", "11111111", "test-agent")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "boss", w.Body.String())

	assert.Equal(t, http.StatusForbidden, request(t, r, "/admin", "22222222", "test-agent").Code)
	assert.Equal(t, http.StatusForbidden, request(t, r, "/admin", "33333333", "test-agent").Code)
	assert.Equal(t, http.StatusUnauthorized, request(t, r, "/admin", "99999999", "test-agent").Code)
}
