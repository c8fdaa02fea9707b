package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorEnvelope struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondError(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{Error: msg})
}

func RespondValidationError(c *gin.Context, details []string) {
	c.JSON(http.StatusUnprocessableEntity, ErrorEnvelope{
		Error:   "request validation failed",
		Details: details,
	})
}
