package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// From traduz a taxonomia de erros do núcleo para status HTTP:
// NotFound → 404, Validation → 400, qualquer falha de storage → 500.
func From(c *gin.Context, err error) {
	switch {
	case IsNotFound(err):
		NotFound(c, "not_found", err.Error())
	case IsValidation(err):
		BadRequest(c, "validation_error", err.Error())
	default:
		Internal(c, "internal_error", err.Error())
	}
}
