package rest

import (
	"log/slog"
	"net/http"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode := application.ToHTTPStatus(err)
	errorCode := application.ToErrorCode(err)

	message := err.Error()
	if svcErr, ok := application.IsServiceError(err); ok {
		message = svcErr.Message
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed", "code", errorCode, "error", err)
	}

	response := ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    errorCode,
			Message: message,
		},
	}
	if procErr, ok := application.IsProcessorError(err); ok {
		response.Error.Details = map[string]string{
			"processorErrorCode": procErr.ErrorCode,
			"processorErrorType": procErr.ErrorType,
		}
		if procErr.PSPReference != "" {
			response.Error.Details["pspReference"] = procErr.PSPReference
		}
	}

	writeJSON(w, statusCode, response, logger)
}
