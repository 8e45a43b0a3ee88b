package serializer

import (
	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Code    string  `json:"code" example:"NOT_FOUND"`
	Message string  `json:"message" example:"school not found"`
	Details *string `json:"details"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Success bool      `json:"success" example:"false"`
	Error   ErrorBody `json:"error"`
}

// Err builds an error body. details is only exposed outside release mode.
func Err(code, msg, details string) ErrorResponse {
	res := ErrorResponse{Error: ErrorBody{Code: code, Message: msg}}
	if details != "" && gin.Mode() != gin.ReleaseMode {
		res.Error.Details = &details
	}
	return res
}

// ParamErr
func ParamErr(msg string, err error) ErrorResponse {
	if msg == "" {
		msg = "parameter error"
	}
	var details string
	if err != nil {
		details = err.Error()
	}
	return Err("VALIDATION_ERROR", msg, details)
}

// AuthErr
func AuthErr(msg string) ErrorResponse {
	if msg == "" {
		msg = "authentication error"
	}
	return Err("UNAUTHORIZED", msg, "")
}

func RateLimitErr() ErrorResponse {
	return Err("RATE_LIMITED", "too many requests", "")
}

// PhotoURL is returned by the profile photo endpoint.
type PhotoURL struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in" example:"900"`
}

type Health struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}
