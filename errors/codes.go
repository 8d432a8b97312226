package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Request validation errors (client-caused).
const (
	// ErrCodeInvalidAudioType indicates the uploaded media type is not audio.
	ErrCodeInvalidAudioType ErrorCode = "INVALID_AUDIO_TYPE"
	// ErrCodeUnsupportedResumeType indicates an unsupported resume format.
	ErrCodeUnsupportedResumeType ErrorCode = "UNSUPPORTED_RESUME_TYPE"
	// ErrCodeAudioTooLarge indicates the audio exceeds the size ceiling.
	ErrCodeAudioTooLarge ErrorCode = "AUDIO_TOO_LARGE"
	// ErrCodeEmptyTranscript indicates transcription yielded only whitespace.
	ErrCodeEmptyTranscript ErrorCode = "EMPTY_TRANSCRIPT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Pipeline errors (provider/infrastructure-caused).
const (
	// ErrCodeExtractionFailed indicates resume text extraction failed.
	ErrCodeExtractionFailed ErrorCode = "EXTRACTION_FAILED"
	// ErrCodeUploadFailed indicates the audio upload to the remote
	// transcription service failed.
	ErrCodeUploadFailed ErrorCode = "UPLOAD_FAILED"
	// ErrCodeSubmitFailed indicates transcription job creation failed.
	ErrCodeSubmitFailed ErrorCode = "SUBMIT_FAILED"
	// ErrCodeTranscriptionError indicates the provider reported a job error.
	ErrCodeTranscriptionError ErrorCode = "TRANSCRIPTION_ERROR"
	// ErrCodeTranscriptionTimeout indicates polling exceeded its ceiling.
	ErrCodeTranscriptionTimeout ErrorCode = "TRANSCRIPTION_TIMEOUT"
	// ErrCodeAnalysisFailed indicates the LLM analysis call failed.
	ErrCodeAnalysisFailed ErrorCode = "ANALYSIS_FAILED"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeUploadFailed:         true,
	ErrCodeSubmitFailed:         true,
	ErrCodeTranscriptionTimeout: true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
