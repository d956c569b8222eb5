package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/converters"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/services"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/interfaces/rest"
)

type CartRequest struct {
	CartID string `json:"cartId"`
}

type CreatePaymentRequest struct {
	CartID        string          `json:"cartId"`
	PaymentMethod json.RawMessage `json:"paymentMethod"`
	BrowserInfo   json.RawMessage `json:"browserInfo,omitempty"`
	Origin        string          `json:"origin,omitempty"`
}

type CreatePaymentResponse struct {
	PaymentReference string          `json:"paymentReference"`
	PSPReference     string          `json:"pspReference,omitempty"`
	ResultCode       string          `json:"resultCode"`
	RefusalReason    string          `json:"refusalReason,omitempty"`
	Action           json.RawMessage `json:"action,omitempty"`
}

type CreateSessionResponse struct {
	PaymentReference string `json:"paymentReference"`
	SessionID        string `json:"sessionId"`
	SessionData      string `json:"sessionData"`
}

func (h *Handlers) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	var req CartRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	methods, err := h.payments.PaymentMethods(r.Context(), req.CartID)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteData(w, http.StatusOK, methods, h.logger)
}

func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CartRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result, err := h.payments.CreateSession(r.Context(), services.CreateSessionCommand{CartID: req.CartID})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteData(w, http.StatusOK, CreateSessionResponse{
		PaymentReference: result.PaymentID,
		SessionID:        result.SessionID,
		SessionData:      result.SessionData,
	}, h.logger)
}

func (h *Handlers) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result, err := h.payments.CreatePayment(r.Context(), services.CreatePaymentCommand{
		CartID: req.CartID,
		Data: converters.CreatePaymentData{
			PaymentMethod: req.PaymentMethod,
			BrowserInfo:   req.BrowserInfo,
			Origin:        req.Origin,
		},
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteData(w, http.StatusOK, CreatePaymentResponse{
		PaymentReference: result.PaymentID,
		PSPReference:     result.PSPReference,
		ResultCode:       result.ResultCode,
		RefusalReason:    result.RefusalReason,
		Action:           result.Action,
	}, h.logger)
}
