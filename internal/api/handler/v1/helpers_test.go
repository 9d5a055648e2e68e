package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/events-api/internal/api/middleware"
	"github.com/vietanh2810/events-api/internal/domain"
)

var (
	organizer = domain.Person{CIN: "12345678", Username: "org", Email: "org@esprit.tn", IsActive: true}
	visitor   = domain.Person{CIN: "87654321", Username: "visitor", Email: "visitor@esprit.tn", IsActive: true}
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asPerson stands in for VerifyJWT in handler tests.
func asPerson(cin string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if cin != "" {
			ctx.Set(middleware.PersonCINKey, cin)
		}
		ctx.Next()
	}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))

	return v
}
