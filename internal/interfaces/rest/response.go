package rest

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
)

const maxBodyBytes = 1 << 20

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// WriteData writes data inside the success envelope.
func WriteData(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	writeJSON(w, status, SuccessResponse{Success: true, Data: data}, logger)
}

// WriteText writes a plain text body.
func WriteText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// DecodeJSON reads a bounded request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return application.NewInvalidJSONInputError("could not read request body", err)
	}
	if err := sonic.Unmarshal(body, dst); err != nil {
		return application.NewInvalidJSONInputError(fmt.Sprintf("malformed request body: %v", err), err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	body, err := sonic.Marshal(v)
	if err != nil {
		logger.Error("failed to encode response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
