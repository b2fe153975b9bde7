// Package handlers implements the endpoints of the lookup service.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/cloudsoda/go-hresult/internal/httpapi/middleware"
)

const (
	ErrCodeInvalidArgument  = "invalid_argument"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeInternal         = "internal_error"
)

// ErrorResponse is the error envelope of every endpoint.
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

// Fail aborts the request with an ErrorResponse. Server errors are logged.
func Fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).WithFields(log.Fields{
			"status": status,
			"code":   code,
		}).Error(msg)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: middleware.GetRequestID(c),
		Code:      code,
		Message:   msg,
	})
}
