package handlers

import (
	"net/http"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/services"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/interfaces/rest"
)

const acceptedBody = "[accepted]"

// ReceiveNotification takes in an Adyen webhook. Unsupported event codes are
// acknowledged so Adyen stops redelivering them; any other failure answers
// with an error status so the delivery is retried.
func (h *Handlers) ReceiveNotification(w http.ResponseWriter, r *http.Request) {
	var n application.Notification
	if err := rest.DecodeJSON(r, &n); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	err := h.notifications.Process(r.Context(), n)
	if err != nil && !services.IsUnsupportedNotification(err) {
		rest.WriteError(w, err, h.logger)
		return
	}
	if err != nil {
		h.logger.Info("unsupported notification acknowledged", "reason", err)
	}

	rest.WriteText(w, http.StatusOK, acceptedBody)
}
