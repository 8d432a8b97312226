// Package extract converts uploaded resume documents (PDF or DOCX) into
// plain text.
package extract

import (
	apperrors "github.com/skillsenselab/interview-coach/errors"
)

// Supported resume media types.
const (
	MediaTypePDF    = "application/pdf"
	MediaTypeDOCX   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeMSWord = "application/msword"
)

// Supported reports whether the media type is an accepted resume format.
func Supported(mediaType string) bool {
	switch mediaType {
	case MediaTypePDF, MediaTypeDOCX, MediaTypeMSWord:
		return true
	}
	return false
}

// Extract returns the plain text of a resume document. The media type is
// checked before any bytes are read; unsupported types fail with
// UNSUPPORTED_RESUME_TYPE and parse failures with EXTRACTION_FAILED.
func Extract(data []byte, mediaType string) (string, error) {
	switch mediaType {
	case MediaTypePDF:
		return extractPDF(data)
	case MediaTypeDOCX, MediaTypeMSWord:
		return extractDOCX(data)
	default:
		return "", apperrors.UnsupportedResumeType(mediaType)
	}
}
