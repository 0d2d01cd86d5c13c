package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail names the failure class and, for input errors, the offending field
type ErrorDetail struct {
	Type    string `json:"type"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// errBadRequest marks malformed requests that never reached the engine
var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

// writeError maps typed calculation errors to 422 and everything else to 400 or 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := ErrorDetail{Type: domain.ErrorType(err), Field: domain.ErrorField(err), Message: err.Error()}

	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrOutOfRange):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
		detail.Type = "bad_request"
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
		detail.Type = "timeout"
	}

	writeJSON(w, status, ErrorResponse{Error: detail})
}

// decodeJSON reads a single JSON document from the request body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return badRequest("request body is empty")
		}
		return badRequest("invalid JSON: %v", err)
	}
	return nil
}
