package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/portwire/pkg/errors"
)

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Code  errors.Code `json:"code,omitempty"`
	Error string      `json:"error"`
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes err as an ErrorResponse. Structured errors choose the
// status; anything else is a 500.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, errors.HTTPStatus(err), ErrorResponse{
		Code:  errors.GetCode(err),
		Error: errors.UserMessage(err),
	})
}
