package core

import (
	"encoding/json"
	"io"
)

// CLIResponse is the structured JSON document printed by --json runs.
//
// Schema:
//
//	{
//	  "success": true|false,
//	  "data": { ... },          // RunResult (partial on error, absent before analysis)
//	  "error": {                 // Present only on failure
//	    "code": "PATH_NOT_FOUND",
//	    "message": "Human-readable description"
//	  }
//	}
type CLIResponse struct {
	Success bool            `json:"success"`
	Data    interface{}     `json:"data,omitempty"`
	Error   *CLIErrorDetail `json:"error,omitempty"`
}

// CLIErrorDetail contains machine-readable error code and human-readable message.
type CLIErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CLI exit codes.
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitPathNotFound     = 2
	ExitInvalidArguments = 3
	ExitFixFailed        = 4
	ExitVerifyFailed     = 5
)

// CLI error codes for structured JSON error responses.
const (
	ErrCodePathNotFound     = "PATH_NOT_FOUND"
	ErrCodeIOError          = "IO_ERROR"
	ErrCodeParseError       = "PARSE_ERROR"
	ErrCodeWriteFailed      = "WRITE_FAILED"
	ErrCodeVerifyTimeout    = "VERIFICATION_TIMEOUT"
	ErrCodeVerifyFailed     = "VERIFICATION_FAILED"
	ErrCodeInvalidArguments = "INVALID_ARGUMENTS"
	ErrCodeAborted          = "ABORTED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// EmitCLISuccess writes a successful CLIResponse as indented JSON.
func EmitCLISuccess(w io.Writer, data interface{}) {
	resp := CLIResponse{Success: true, Data: data}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp) //nolint:errcheck
}

// EmitCLIError writes an error CLIResponse as JSON.
// Returns the exit code for the caller to use with os.Exit.
func EmitCLIError(w io.Writer, code string, message string, exitCode int) int {
	resp := CLIResponse{
		Success: false,
		Error:   &CLIErrorDetail{Code: code, Message: message},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp) //nolint:errcheck
	return exitCode
}

// EmitCLIFailure writes an error CLIResponse that still carries the partial
// result of the run. Returns the exit code for the caller to use with os.Exit.
func EmitCLIFailure(w io.Writer, data interface{}, code string, message string, exitCode int) int {
	resp := CLIResponse{
		Success: false,
		Data:    data,
		Error:   &CLIErrorDetail{Code: code, Message: message},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp) //nolint:errcheck
	return exitCode
}

// CLIExitCodeForError maps structured error types to CLI exit codes. Nil maps to ExitSuccess.
func CLIExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch KindOf(err) {
	case KindPathNotFound:
		return ExitPathNotFound
	case KindWriteFailed:
		return ExitFixFailed
	case KindVerificationTimeout, KindVerificationFailed:
		return ExitVerifyFailed
	default:
		return ExitGeneralError
	}
}

// CLIErrorCodeForError maps structured error types to CLI error code strings.
func CLIErrorCodeForError(err error) string {
	switch KindOf(err) {
	case KindPathNotFound:
		return ErrCodePathNotFound
	case KindIO:
		return ErrCodeIOError
	case KindParse:
		return ErrCodeParseError
	case KindWriteFailed:
		return ErrCodeWriteFailed
	case KindVerificationTimeout:
		return ErrCodeVerifyTimeout
	case KindVerificationFailed:
		return ErrCodeVerifyFailed
	case KindAborted:
		return ErrCodeAborted
	default:
		return ErrCodeInternalError
	}
}
