package extract

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	apperrors "github.com/skillsenselab/interview-coach/errors"
)

// buildPDF assembles a minimal single-page PDF with an uncompressed text
// content stream, recording object offsets as it writes so the xref table
// is exact. The text must not contain parentheses.
func buildPDF(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")
	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	writeObj("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R >>\nendobj\n")
	content := fmt.Sprintf("BT (%s) Tj ET", text)
	writeObj(fmt.Sprintf("4 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(content), content))

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefPos)
	return buf.Bytes()
}

func TestExtractPDF(t *testing.T) {
	data := buildPDF(t, "Senior Go engineer with five years of experience")

	got, err := Extract(data, MediaTypePDF)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if !strings.Contains(got, "Senior Go engineer with five years of experience") {
		t.Errorf("Extract() = %q, want the page text", got)
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		mediaType string
		want      bool
	}{
		{MediaTypePDF, true},
		{MediaTypeDOCX, true},
		{MediaTypeMSWord, true},
		{"text/plain", false},
		{"image/png", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.mediaType); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.mediaType, got, tt.want)
		}
	}
}

func TestExtractUnsupportedType(t *testing.T) {
	_, err := Extract([]byte("%PDF-1.4 pretend"), "text/plain")
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("error is not an AppError: %v", err)
	}
	if appErr.Code != apperrors.ErrCodeUnsupportedResumeType {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.ErrCodeUnsupportedResumeType)
	}
	if appErr.HTTPStatus != 400 {
		t.Errorf("HTTP status = %d, want 400", appErr.HTTPStatus)
	}
}

func TestExtractMalformedPDF(t *testing.T) {
	_, err := Extract([]byte("this is not a pdf at all"), MediaTypePDF)
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("error is not an AppError: %v", err)
	}
	if appErr.Code != apperrors.ErrCodeExtractionFailed {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.ErrCodeExtractionFailed)
	}
	if appErr.HTTPStatus != 500 {
		t.Errorf("HTTP status = %d, want 500", appErr.HTTPStatus)
	}
}

func TestExtractMalformedDOCX(t *testing.T) {
	for _, mediaType := range []string{MediaTypeDOCX, MediaTypeMSWord} {
		_, err := Extract([]byte("not a zip archive"), mediaType)
		appErr, ok := apperrors.AsAppError(err)
		if !ok {
			t.Fatalf("error for %s is not an AppError: %v", mediaType, err)
		}
		if appErr.Code != apperrors.ErrCodeExtractionFailed {
			t.Errorf("error code for %s = %s, want %s", mediaType, appErr.Code, apperrors.ErrCodeExtractionFailed)
		}
	}
}
