package response

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	pkgErrors "shareit/pkg/errors"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Empty sends 200 without a body.
func Empty(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Error sends the status carried by an HTTPError, or 500 for anything else.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, Resp{Error: httpErr.Message})
		return
	}
	InternalError(c, err)
}

// InternalError sends 500 with the error message and the current stack trace.
func InternalError(c *gin.Context, err error) {
	msg := DefaultErrorMessage
	if err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, Resp{
		Error:      msg,
		StackTrace: string(debug.Stack()),
	})
}

// Panic sends 500 for a recovered panic value and the stack it was captured with.
func Panic(c *gin.Context, recovered any, stack []byte) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		Error:      fmt.Sprint(recovered),
		StackTrace: string(stack),
	})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{Error: "rate limit exceeded"})
}

// BadRequest aborts with 400 and message.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Resp{Error: message})
}
