// Package errors provides unified error handling for the interview-coach
// service. It implements structured error types with error codes, HTTP status
// mapping, and a stable JSON response shape.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Request validation errors (client-caused, 400) ---

// InvalidAudioType indicates the uploaded file's media type is not audio.
func InvalidAudioType(mediaType string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidAudioType, Message: "Invalid file type. Please upload an audio file.",
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"media_type": mediaType},
	}
}

// UnsupportedResumeType indicates the resume is neither PDF nor DOCX.
func UnsupportedResumeType(mediaType string) *AppError {
	return &AppError{
		Code: ErrCodeUnsupportedResumeType, Message: "Unsupported resume file type. Please upload a PDF or DOCX file.",
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"media_type": mediaType},
	}
}

// AudioTooLarge indicates the audio exceeds the configured size ceiling.
func AudioTooLarge(size, limit int64) *AppError {
	return &AppError{
		Code: ErrCodeAudioTooLarge, Message: fmt.Sprintf("File too large. Max size is %d MB.", limit/(1024*1024)),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"size": size, "limit": limit},
	}
}

// EmptyTranscript indicates transcription yielded no usable text.
func EmptyTranscript() *AppError {
	return &AppError{
		Code: ErrCodeEmptyTranscript, Message: "Could not transcribe audio. The file may be empty or silent.",
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"field": field},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// --- Pipeline errors (provider/infrastructure-caused, 500) ---

// ExtractionFailed indicates the resume document could not be parsed.
func ExtractionFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeExtractionFailed, Message: "Failed to read the resume document.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}

// UploadFailed indicates the audio could not be uploaded to the
// transcription service.
func UploadFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeUploadFailed, Message: "Failed to upload audio to the transcription service.",
		HTTPStatus: http.StatusInternalServerError, Retryable: true, Cause: cause,
	}
}

// SubmitFailed indicates the transcription job could not be started.
func SubmitFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeSubmitFailed, Message: "Failed to start transcription.",
		HTTPStatus: http.StatusInternalServerError, Retryable: true, Cause: cause,
	}
}

// TranscriptionError indicates the transcription provider reported a failure.
func TranscriptionError(detail string) *AppError {
	return &AppError{
		Code: ErrCodeTranscriptionError, Message: fmt.Sprintf("Transcription failed: %s", detail),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
	}
}

// TranscriptionTimeout indicates the transcription job did not reach a
// terminal state within the configured ceiling.
func TranscriptionTimeout() *AppError {
	return &AppError{
		Code: ErrCodeTranscriptionTimeout, Message: "Transcription timed out.",
		HTTPStatus: http.StatusInternalServerError, Retryable: true,
	}
}

// AnalysisFailed indicates the text-analysis call or its response parsing failed.
func AnalysisFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeAnalysisFailed, Message: "AI analysis failed.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred. Please try again.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}
