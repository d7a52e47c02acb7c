package chi

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Error codes returned in the error envelope.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeInvalidStatus    = "invalid_status"
	codeUnknownEntity    = "unknown_entity"
	codeRecordNotFound   = "record_not_found"
	codeNotFound         = "not_found"
	codeConflict         = "conflict"
	codeUnauthorized     = "unauthorized"
	codeInternalError    = "internal_error"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

// writeData writes a success envelope.
func writeData(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, envelope{Success: true, Data: data})
}

// writeError writes an error envelope.
func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, envelope{Success: false, Error: &errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
