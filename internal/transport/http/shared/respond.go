// Package shared holds the response helpers every HTTP handler uses.
package shared

import (
	"encoding/json"
	"net/http"

	dErrors "innflow/pkg/domain-errors"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// WriteJSON writes a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// WriteError maps a domain error onto its HTTP status and a stable error body.
func WriteError(w http.ResponseWriter, err error) {
	var body errorBody
	body.Error.Code = string(dErrors.CodeOf(err))
	body.Error.Message = dErrors.MessageOf(err)
	WriteJSON(w, dErrors.ToHTTPStatus(dErrors.CodeOf(err)), body)
}
