package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/interview-coach/errors"
	"github.com/skillsenselab/interview-coach/logger"
)

// RespondWithError writes an error response in the standard envelope. AppErrors
// keep their HTTP status and code; anything else becomes a 500 INTERNAL_ERROR.
func RespondWithError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Internal(err)
	}

	fields := logger.Fields(
		"code", appErr.Code,
		"status", appErr.HTTPStatus,
		"path", c.Request.URL.Path,
		logger.FieldError, appErr.Error(),
	)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Warn("Request rejected", fields)
	}

	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}
