package response

import (
	"encoding/json"
	"net/http"

	"github.com/CameronXie/store-api/internal/classification"
)

// JSONResponse writes the given data as a JSON response with the specified status code.
func JSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// JSONErrorResponse writes a classified failure as a JSON response.
func JSONErrorResponse(w http.ResponseWriter, result classification.Result) {
	JSONResponse(w, result.Status, result.Body)
}

// Created answers a successful create with the location of the new resource and no body.
func Created(w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusCreated)
}
