package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/models/dto"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
		code dto.ErrorCode
	}{
		{name: "not found", err: apperrors.ErrBatchNotFound, want: 404, code: dto.ErrorCodeResourceNotFound},
		{name: "validation", err: apperrors.NewValidationError("validation failed", map[string]string{"email": "email is required"}), want: 400, code: dto.ErrorCodeValidationFailed},
		{name: "bad request", err: apperrors.NewBadRequestError("invalid id"), want: 400, code: dto.ErrorCodeBadRequest},
		{name: "email taken", err: apperrors.ErrEmailAlreadyExists, want: 409, code: dto.ErrorCodeResourceAlreadyExists},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", apperrors.ErrFeeNotFound), want: 404, code: dto.ErrorCodeResourceNotFound},
		{name: "unknown", err: errors.New("boom"), want: 500, code: dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Success || body.Error == nil || body.Error.Code != tt.code {
				t.Fatalf("body = %+v, want code %s", body, tt.code)
			}
		})
	}
}

func TestValidationErrorCarriesFields(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	HandleAPIError(c, apperrors.NewValidationError("validation failed", map[string]string{"phone": "phone is required"}))

	var body struct {
		Error struct {
			Field   string            `json:"field"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Field != "phone" || body.Error.Details["phone"] == "" {
		t.Fatalf("error = %+v", body.Error)
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/x", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside handler")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatal("missing generated request id")
	}

	buf.Reset()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("request id = %q, want abc-123", got)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("log lines = %q, want handler line and access line", lines)
	}
	for _, l := range lines {
		if !strings.Contains(l, `"requestId":"abc-123"`) {
			t.Fatalf("log line %q missing request id", l)
		}
	}
	if !strings.Contains(lines[1], `"status":204`) {
		t.Fatalf("access line = %q, want status 204", lines[1])
	}
}

func TestRecoveryReturns500(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(CORS([]string{"http://admin.local"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://admin.local")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://admin.local" {
		t.Fatalf("allow origin = %q", got)
	}
}
