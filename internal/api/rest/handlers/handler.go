package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/CameronXie/store-api/internal/api/rest/middlewares"
	"github.com/CameronXie/store-api/internal/api/rest/response"
	"github.com/CameronXie/store-api/internal/classification"
	"github.com/CameronXie/store-api/internal/domain"
	"github.com/CameronXie/store-api/internal/query"
)

const (
	invalidRequestBodyMessage = "invalid request body"
	invalidIDMessage          = "id must be a positive integer"
)

// parsePageRequest reads page and size from the query string. Missing or unusable values
// fall back to the defaults.
func parsePageRequest(r *http.Request) query.PageRequest {
	req := query.PageRequest{Page: query.DefaultPage, Size: query.DefaultSize}

	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page >= 0 {
		req.Page = page
	}

	if size, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && size > 0 {
		req.Size = size
	}

	return req
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, classification.NewStatusError(http.StatusBadRequest, invalidIDMessage)
	}

	return id, nil
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return classification.NewStatusError(http.StatusBadRequest, invalidRequestBodyMessage)
	}

	return nil
}

// location builds the absolute URL of a resource created under the request path.
func location(r *http.Request, id int64) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + r.Host + strings.TrimSuffix(r.URL.Path, "/") + "/" + strconv.FormatInt(id, 10)
}

// writeFailure classifies err, logs it and writes the error response.
func writeFailure(
	w http.ResponseWriter,
	r *http.Request,
	logger *slog.Logger,
	entity domain.Kind,
	msg string,
	err error,
	args ...any,
) {
	result := classification.Classify(err, entity)

	args = append(args, "error", err, "status", result.Status, "request_id", middlewares.RequestID(r.Context()))
	if result.IsServerError() {
		logger.ErrorContext(r.Context(), msg, args...)
	} else {
		logger.WarnContext(r.Context(), msg, args...)
	}

	response.JSONErrorResponse(w, result)
}
