// Package dto provides data transfer objects for HTTP requests/responses
package dto

import (
	"errors"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/platformerrors"
)

// Response is a generic API response wrapper
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo holds error information
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OK wraps data in a success response.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// FromError maps an internal error to a safe client-facing response and its
// HTTP status. Internal detail never leaves the process: only validation and
// not-found errors expose their message.
func FromError(err error) (int, Response) {
	errType := platformerrors.TypeOf(err)
	status := platformerrors.HTTPStatus(errType)

	message := "something went wrong, please try again"
	switch errType {
	case platformerrors.ErrorTypeValidation, platformerrors.ErrorTypeNotFound:
		var platformErr *platformerrors.PlatformError
		if errors.As(err, &platformErr) {
			message = platformErr.Message
		}
	}

	return status, Response{
		Success: false,
		Error:   &ErrorInfo{Code: string(errType), Message: message},
	}
}
