package controller

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"oakframe-configurator/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorf("❌ Error encoding response: %v", err)
	}
}

// statusFor maps an error kind to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidRequest), errors.Is(err, models.ErrInvalidConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		zap.S().Errorf("❌ %s: %v", op, err)
		message = http.StatusText(status)
	} else {
		zap.S().Warnf("⚠️  %s: %v", op, err)
	}
	writeJSON(w, status, ErrorResponse{Error: message})
}

func methodNotAllowed(w http.ResponseWriter, op, method string) {
	zap.S().Warnf("❌ %s: Method not allowed: %s", op, method)
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		return invalidBody(err)
	}
	return nil
}

func invalidBody(err error) error {
	return &requestError{msg: "Invalid request body: " + err.Error()}
}

// requestError is a malformed request detected before reaching a service
type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }
func (e *requestError) Unwrap() error { return models.ErrInvalidRequest }

// pathID extracts the trailing id of /prefix/{id}
func pathID(r *http.Request, prefix string) string {
	id := strings.TrimPrefix(r.URL.Path, prefix)
	id = strings.Trim(id, "/")
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}

func missingParam(name string) error {
	return &requestError{msg: name + " is required"}
}
