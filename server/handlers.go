package server

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/interview-coach/errors"
	"github.com/skillsenselab/interview-coach/interview"
	"github.com/skillsenselab/interview-coach/server/endpoint"
)

// Handler exposes the interview analysis API over HTTP.
type Handler struct {
	svc         *interview.Service
	serviceName string
}

// NewHandler creates a Handler backed by the given interview service.
func NewHandler(svc *interview.Service, serviceName string) *Handler {
	return &Handler{svc: svc, serviceName: serviceName}
}

// RegisterRoutes attaches all API routes to the engine.
func (h *Handler) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/", endpoint.Status(h.serviceName))
	engine.POST("/analyze-interview/", h.AnalyzeInterview)
	engine.POST("/transcribe/", h.Transcribe)
	engine.POST("/analyze-text/", h.AnalyzeText)
}

// AnalyzeInterview handles the full pipeline: audio upload, optional resume,
// transcription, and LLM analysis.
func (h *Handler) AnalyzeInterview(c *gin.Context) {
	audio, audioType, err := readUpload(c, "file")
	if err != nil {
		RespondWithError(c, err)
		return
	}

	in := interview.ProcessInput{
		Audio:          audio,
		AudioMediaType: audioType,
	}

	resume, resumeType, found, err := readOptionalUpload(c, "resume_file")
	if err != nil {
		RespondWithError(c, err)
		return
	}
	if found {
		in.Resume = resume
		in.ResumeMediaType = resumeType
	}

	result, err := h.svc.Process(c.Request.Context(), in)
	if err != nil {
		RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Transcribe handles transcription-only requests.
func (h *Handler) Transcribe(c *gin.Context) {
	audio, audioType, err := readUpload(c, "file")
	if err != nil {
		RespondWithError(c, err)
		return
	}

	transcript, err := h.svc.Transcribe(c.Request.Context(), audio, audioType)
	if err != nil {
		RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transcript": transcript})
}

type analyzeTextRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

// AnalyzeText handles analysis of an already-available transcript.
func (h *Handler) AnalyzeText(c *gin.Context) {
	var req analyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, apperrors.MissingField("transcript"))
		return
	}

	feedback, err := h.svc.AnalyzeText(c.Request.Context(), req.Transcript)
	if err != nil {
		RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// readUpload reads a required multipart file field and returns its bytes and
// declared content type.
func readUpload(c *gin.Context, field string) ([]byte, string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, "", apperrors.MissingField(field)
	}
	return readFileHeader(header)
}

// readOptionalUpload reads a multipart file field that may be absent. The
// third return reports whether the field was present.
func readOptionalUpload(c *gin.Context, field string) ([]byte, string, bool, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, "", false, nil
	}
	data, mediaType, err := readFileHeader(header)
	if err != nil {
		return nil, "", false, err
	}
	return data, mediaType, true, nil
}

func readFileHeader(header *multipart.FileHeader) ([]byte, string, error) {
	f, err := header.Open()
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	return data, header.Header.Get("Content-Type"), nil
}
