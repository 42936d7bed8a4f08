package httperr

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape: {success, data?, error?, message?}.
type Envelope struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// AbortWithError records the original error on the context for the error
// middleware and monitoring, and writes the failure envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	resp := Envelope{Status: status, Success: false, Error: msg}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

func SuccessMsg(c *gin.Context, status int, data any, msg string) {
	c.JSON(status, Envelope{Success: true, Data: data, Message: msg})
}
