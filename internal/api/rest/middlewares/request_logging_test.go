package middlewares

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggingMiddleware_Handle(t *testing.T) {
	cases := map[string]struct {
		requestID     string
		status        int
		expectedLevel string
	}{
		"should log success at info level": {
			status:        http.StatusOK,
			expectedLevel: "INFO",
		},
		"should log client error at warn level": {
			status:        http.StatusNotFound,
			expectedLevel: "WARN",
		},
		"should log server error at error level": {
			status:        http.StatusInternalServerError,
			expectedLevel: "ERROR",
		},
		"should keep request id supplied by caller": {
			requestID:     "req-123",
			status:        http.StatusCreated,
			expectedLevel: "INFO",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			middleware := NewRequestLoggingMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			var seenID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestID(r.Context())
				w.WriteHeader(tc.status)
			})

			request := httptest.NewRequest(http.MethodGet, "/api/v1/customers", http.NoBody)
			if tc.requestID != "" {
				request.Header.Set(RequestIDHeader, tc.requestID)
			}
			w := httptest.NewRecorder()

			middleware.Handle(next).ServeHTTP(w, request)

			assert.Equal(t, tc.status, w.Code)

			responseID := w.Header().Get(RequestIDHeader)
			assert.Equal(t, seenID, responseID)
			if tc.requestID != "" {
				assert.Equal(t, tc.requestID, responseID)
			} else {
				_, err := uuid.Parse(responseID)
				assert.NoError(t, err)
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tc.expectedLevel, entry["level"])
			assert.Equal(t, "request completed", entry["msg"])
			assert.Equal(t, responseID, entry["request_id"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.Equal(t, "/api/v1/customers", entry["path"])
			assert.EqualValues(t, tc.status, entry["status"])
		})
	}
}

func TestRequestLoggingMiddleware_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	middleware := NewRequestLoggingMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	w := httptest.NewRecorder()
	middleware.Handle(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestChain(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return middlewareFunc(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		})
	}

	h := Chain(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		order = append(order, "handler")
	}), mw("outer"), mw("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

type middlewareFunc func(next http.Handler) http.Handler

func (f middlewareFunc) Handle(next http.Handler) http.Handler {
	return f(next)
}
