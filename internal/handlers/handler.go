package handlers

import (
	"errors"
	"io"

	"ridehail/internal/utils"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the body into request. An empty body leaves request zeroed
// so that validation reports the missing fields. Any other decode failure
// answers 400 and returns false.
func bindJSON(c *gin.Context, request interface{}) bool {
	if err := c.ShouldBindJSON(request); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, utils.MessageBadJSON)
		return false
	}
	return true
}
