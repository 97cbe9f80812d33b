package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/ahpham123/uart-testing-2/internal/api"
	"github.com/ahpham123/uart-testing-2/internal/errors"
)

// Machine mode flag - when true, outputs JSON and suppresses human-friendly decorations
var machineMode bool

// MachineMode returns true if machine-readable output is enabled
func MachineMode() bool {
	return machineMode
}

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes for machine-readable output.
// These map to specific actions an automation can take.
const (
	ErrCodeConfigNotFound    = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid     = "CONFIG_INVALID"
	ErrCodeServerUnreachable = "SERVER_UNREACHABLE"
	ErrCodeRequestFailed     = "REQUEST_FAILED"
	ErrCodeValidationFailed  = "VALIDATION_FAILED"
	ErrCodePortUnknown       = "PORT_UNKNOWN"
	ErrCodeUnknown           = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	env := JSONEnvelope{
		Success: true,
		Data:    data,
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONError writes an error response to the writer.
func WriteJSONError(w io.Writer, code, message, suggestion string, details interface{}) error {
	env := JSONEnvelope{
		Success: false,
		Error: &JSONError{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
			Details:    details,
		},
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	env := JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	}
	return writeJSONEnvelope(w, env)
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	// Check if it's our structured error type
	if uerr, ok := err.(*errors.Error); ok {
		return &JSONError{
			Code:       mapErrorCode(uerr),
			Message:    uerr.Message,
			Suggestion: uerr.Suggestion,
		}
	}

	// Check if it's a transport error from the api client
	if apiErr, ok := err.(*api.APIError); ok {
		return apiErrorToJSON(apiErr)
	}

	// Generic error
	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(uerr *errors.Error) string {
	switch uerr.Code {
	case errors.ErrConfig:
		// Distinguish between not found and invalid
		msgLower := strings.ToLower(uerr.Message)
		if strings.Contains(msgLower, "not found") || strings.Contains(msgLower, "couldn't find") {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrAPI:
		if api.IsUnavailable(uerr.Cause) || api.IsTimeout(uerr.Cause) {
			return ErrCodeServerUnreachable
		}
		return ErrCodeRequestFailed
	case errors.ErrInput:
		return ErrCodeValidationFailed
	case errors.ErrPort:
		return ErrCodePortUnknown
	}

	return ErrCodeUnknown
}

// apiErrorToJSON converts a client transport error to JSON with specific
// server error codes.
func apiErrorToJSON(apiErr *api.APIError) *JSONError {
	var code string
	var suggestion string

	switch {
	case api.IsUnavailable(apiErr):
		code = ErrCodeServerUnreachable
		suggestion = "Check the port server is running and the server URL is correct"
	case api.IsTimeout(apiErr):
		code = ErrCodeServerUnreachable
		suggestion = "The server did not answer in time; check its logs or raise --timeout"
	case api.IsBadResponse(apiErr):
		code = ErrCodeRequestFailed
		suggestion = "The server answered with an unparseable body; check server and client versions match"
	default:
		code = ErrCodeRequestFailed
	}

	return &JSONError{
		Code:       code,
		Message:    apiErr.Error(),
		Suggestion: suggestion,
		Details: map[string]interface{}{
			"operation":   apiErr.Operation,
			"status_code": apiErr.StatusCode,
		},
	}
}
