package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/davidmichaelmontiza/Campus-Information-System/pkg/errors"
)

// ErrorBody is the error contract: message holds a string, or the list of field
// messages for validation failures.
type ErrorBody struct {
	Message interface{} `json:"message"`
	Code    string      `json:"code,omitempty"`
}

// MessageBody carries a plain confirmation message.
type MessageBody struct {
	Message string `json:"message"`
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

// JSON sends data as the bare response body.
func JSON(c *gin.Context, status int, data interface{}) {
	noStore(c)
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Message responds with a confirmation message.
func Message(c *gin.Context, status int, message string) {
	JSON(c, status, MessageBody{Message: message})
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	body := ErrorBody{Message: appErr.Message, Code: appErr.Code}
	if len(appErr.Details) > 0 {
		body.Message = appErr.Details
	}
	noStore(c)
	c.JSON(appErr.Status, body)
}

// Abort sends the error response and stops the middleware chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// Binary streams a rendered file.
func Binary(c *gin.Context, contentType, filename string, payload []byte) {
	noStore(c)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, payload)
}
