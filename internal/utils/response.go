package utils

import (
	"errors"
	"net/http"

	"ridehail/internal/services"
	"ridehail/pkg/logger"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the body of most successful writes.
type MessageResponse struct {
	Message string `json:"message"`
}

func SuccessResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// CreatedResponse answers 201 with the message and the new document id under idKey.
func CreatedResponse(c *gin.Context, message, idKey, id string) {
	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		idKey:     id,
	})
}

// TextResponse writes a plain-text body, the format used for every API error.
func TextResponse(c *gin.Context, statusCode int, message string) {
	c.String(statusCode, message)
}

func BadRequestResponse(c *gin.Context, message string) {
	TextResponse(c, http.StatusBadRequest, message)
}

func NotFoundResponse(c *gin.Context) {
	TextResponse(c, http.StatusNotFound, MessageNotFound)
}

func InternalServerErrorResponse(c *gin.Context) {
	TextResponse(c, http.StatusInternalServerError, MessageInternalServer)
}

var statusByKind = map[services.ErrorKind]int{
	services.KindBadRequest:   http.StatusBadRequest,
	services.KindConflict:     http.StatusConflict,
	services.KindNotFound:     http.StatusNotFound,
	services.KindUnauthorized: http.StatusUnauthorized,
	services.KindInternal:     http.StatusInternalServerError,
}

func StatusCode(err error) int {
	if code, ok := statusByKind[services.KindOf(err)]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// HandleError writes err as a plain-text response. Internal causes are logged
// and never sent to the client.
func HandleError(c *gin.Context, log *logger.Logger, err error) {
	code := StatusCode(err)

	var appErr *services.AppError
	if !errors.As(err, &appErr) {
		appErr = services.Internal(MessageInternalServer, err)
	}

	if code >= http.StatusInternalServerError {
		log.WithRequestID(RequestID(c)).
			WithError(err).
			WithField("path", c.FullPath()).
			Error("Request failed")
	}

	TextResponse(c, code, appErr.Message)
}

func RequestID(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}
