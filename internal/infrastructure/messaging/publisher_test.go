package messaging_test

import (
	"context"
	"testing"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/infrastructure/messaging"
	"github.com/stretchr/testify/assert"
)

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, messaging.NoopPublisher{}.Publish(context.Background(), application.TransactionEvent{PaymentID: "pay-1"}))
}
