package middlewares

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/CameronXie/store-api/internal/api/rest/response"
	"github.com/CameronXie/store-api/internal/classification"
)

// RecoveryMiddleware turns a panic in a handler into an unexpected_error response.
type RecoveryMiddleware struct {
	logger *slog.Logger
}

// Handle recovers from panics raised by next. Once next has started the response the
// panic is only logged.
func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			// net/http uses this sentinel to abort a response on purpose.
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}

			m.logger.ErrorContext(
				r.Context(),
				"recovered from panic",
				"error", err,
				"request_id", RequestID(r.Context()),
				"response_started", sw.wroteHeader,
				"stack", string(debug.Stack()),
			)

			if sw.wroteHeader {
				return
			}

			response.JSONErrorResponse(w, classification.Classify(err, ""))
		}()

		next.ServeHTTP(sw, r)
	})
}

// NewRecoveryMiddleware returns a RecoveryMiddleware writing to logger.
func NewRecoveryMiddleware(logger *slog.Logger) Middleware {
	return &RecoveryMiddleware{logger: logger}
}
