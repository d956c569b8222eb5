package handlers

import (
	"net/http"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/services"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/interfaces/rest"
	"github.com/go-chi/chi/v5"
)

type ModifyPaymentAction struct {
	Action        string        `json:"action"`
	Amount        *domain.Money `json:"amount,omitempty"`
	TransactionID string        `json:"transactionId,omitempty"`
}

type ModifyPaymentRequest struct {
	Actions           []ModifyPaymentAction `json:"actions"`
	MerchantReference string                `json:"merchantReference,omitempty"`
}

type ModifyPaymentResponse struct {
	Outcome       string `json:"outcome"`
	PaymentID     string `json:"paymentId"`
	TransactionID string `json:"transactionId,omitempty"`
	PSPReference  string `json:"pspReference,omitempty"`
}

func (h *Handlers) ModifyPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentId")

	var req ModifyPaymentRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	if len(req.Actions) != 1 {
		rest.WriteError(w, application.NewInvalidJSONInputError("exactly one action is required", nil), h.logger)
		return
	}
	action := req.Actions[0]

	result, err := h.payments.ModifyPayment(r.Context(), services.ModifyPaymentCommand{
		PaymentID:         paymentID,
		Action:            action.Action,
		Amount:            action.Amount,
		MerchantReference: req.MerchantReference,
		TransactionID:     action.TransactionID,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteData(w, http.StatusOK, ModifyPaymentResponse{
		Outcome:       result.Outcome,
		PaymentID:     result.PaymentID,
		TransactionID: result.TransactionID,
		PSPReference:  result.PSPReference,
	}, h.logger)
}

func (h *Handlers) GetConfig(w http.ResponseWriter, r *http.Request) {
	rest.WriteData(w, http.StatusOK, h.payments.Config(), h.logger)
}

// GetStatus answers 200 unless every dependency is down.
func (h *Handlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	report := h.payments.Status(r.Context())
	status := http.StatusOK
	if report.Status == services.StatusUnavailable {
		status = http.StatusServiceUnavailable
	}
	rest.WriteData(w, status, report, h.logger)
}

func (h *Handlers) GetPaymentComponents(w http.ResponseWriter, r *http.Request) {
	rest.WriteData(w, http.StatusOK, h.payments.SupportedComponents(), h.logger)
}
