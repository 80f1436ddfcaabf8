package response

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CameronXie/store-api/internal/classification"
)

func TestJSONResponse(t *testing.T) {
	cases := map[string]struct {
		status   int
		data     any
		expected string
	}{
		"Struct": {http.StatusOK, struct{ Name string }{Name: "test"}, `{"Name":"test"}`},
		"String": {http.StatusOK, "test", `"test"`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			JSONResponse(rr, tc.status, tc.data)
			checkResponse(t, rr, tc.status, tc.expected)
		})
	}
}

func TestJSONErrorResponse(t *testing.T) {
	cases := map[string]struct {
		result   classification.Result
		expected string
	}{
		"WithoutDetails": {
			classification.Result{
				Status: http.StatusInternalServerError,
				Body:   classification.Body{Error: "unexpected_error", Message: "server error"},
			},
			`{"error":"unexpected_error","message":"server error"}`,
		},
		"WithDetails": {
			classification.Result{
				Status: http.StatusBadRequest,
				Body: classification.Body{
					Error:   "validation_failed",
					Message: "One or more fields are invalid",
					Details: []classification.Detail{{Message: "name is required"}},
				},
			},
			`{"error":"validation_failed","message":"One or more fields are invalid","details":[{"message":"name is required"}]}`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			JSONErrorResponse(rr, tc.result)
			checkResponse(t, rr, tc.result.Status, tc.expected)
		})
	}
}

func TestCreated(t *testing.T) {
	rr := httptest.NewRecorder()
	Created(rr, "http://localhost/api/v1/customers/1")

	result := rr.Result()
	defer result.Body.Close()

	body, _ := io.ReadAll(result.Body)

	if result.StatusCode != http.StatusCreated {
		t.Errorf("Expected response code %v. Got %v", http.StatusCreated, result.StatusCode)
	}
	if location := result.Header.Get("Location"); location != "http://localhost/api/v1/customers/1" {
		t.Errorf("Expected location header. Got %s", location)
	}
	if len(body) != 0 {
		t.Errorf("Expected empty body. Got %s", string(body))
	}
}

func checkResponse(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedBody string) {
	result := rr.Result()
	defer result.Body.Close()

	body, _ := io.ReadAll(result.Body)

	if result.StatusCode != expectedStatus {
		t.Errorf("Expected response code %v. Got %v", expectedStatus, result.StatusCode)
	}
	if string(body) != expectedBody+"\n" {
		t.Errorf("Expected response %s. Got %s", expectedBody, string(body))
	}
}
