package utils

import (
	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Message string `json:"message"`
}

// ErrorResponse writes the error contract shared by every endpoint: a JSON
// body with a human-readable message.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Message: message})
}
