package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stable error-kind codes, one per failure class. Clients can branch on the
// code; the message stays human-readable.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotAllowed = "NOT_ALLOWED"
	CodeStore      = "STORE_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeMail       = "MAIL_ERROR"
	CodeUpload     = "UPLOAD_ERROR"
	CodeRateLimit  = "RATE_LIMIT"
	CodeInternal   = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type AppError struct {
	Status  int
	Code    string
	Message string
	Details interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, code, message string, details interface{}) *AppError {
	return &AppError{Status: status, Code: code, Message: message, Details: details}
}

func RespondError(c *gin.Context, err error) {
	appErr, ok := err.(*AppError)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ErrorBody{
			Code:    CodeInternal,
			Message: "internal server error",
		}})
		return
	}

	c.JSON(appErr.Status, ErrorResponse{Error: ErrorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	}})
}

func RespondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
		Code:    CodeValidation,
		Message: message,
	}})
}

func RespondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}
