package v1

import (
	"encoding/json"
	"net/http"

	"github.com/questguild/quests-tracker/internal/domain"
	"github.com/questguild/quests-tracker/internal/logger"
)

// writeDomainError maps a domain error to its HTTP status code and writes
// a standardized error response. Unclassified errors are logged and
// reported as internal server errors without leaking their details.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsNotFound(err):
		writeErrorResponse(w, err.Error(), http.StatusNotFound)
	case domain.IsInvalidArgument(err):
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
	case domain.IsCapacityExceeded(err), domain.IsConflict(err), domain.IsIllegalTransition(err):
		writeErrorResponse(w, err.Error(), http.StatusConflict)
	default:
		logger.Errorf("Unhandled error: %v", err)
		writeErrorResponse(w, "internal server error", http.StatusInternalServerError)
	}
}

// writeJSONResponse writes a JSON response with the given status and data
func writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Errorf("Failed to encode JSON response: %v", err)
	}
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	writeJSONResponse(w, statusCode, ErrorResponse{Error: message})
}
