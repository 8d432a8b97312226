package extract

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"

	apperrors "github.com/skillsenselab/interview-coach/errors"
)

// extractDOCX concatenates paragraph text in document order, one newline per
// paragraph boundary.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.ExtractionFailed(err)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, para.String())
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}
