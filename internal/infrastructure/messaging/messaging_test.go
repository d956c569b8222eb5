package messaging_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/infrastructure/messaging"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type recordingProcessor struct {
	received chan application.Notification
}

func (p *recordingProcessor) Process(_ context.Context, n application.Notification) error {
	p.received <- n
	return nil
}

type MessagingTestSuite struct {
	suite.Suite
	container testcontainers.Container
	conn      *nats.Conn
	logger    *slog.Logger
}

func TestMessagingSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping nats integration tests in short mode")
	}
	suite.Run(t, new(MessagingTestSuite))
}

func (suite *MessagingTestSuite) SetupSuite() {
	ctx := context.Background()
	t := suite.T()
	suite.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "nats:2-alpine",
			ExposedPorts: []string{"4222/tcp"},
			WaitingFor:   wait.ForLog("Server is ready").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	suite.container = container

	endpoint, err := container.PortEndpoint(ctx, "4222/tcp", "nats")
	require.NoError(t, err)

	suite.conn, err = messaging.Connect(endpoint, suite.logger)
	require.NoError(t, err)
}

func (suite *MessagingTestSuite) TearDownSuite() {
	suite.conn.Close()
	require.NoError(suite.T(), suite.container.Terminate(context.Background()))
}

func (suite *MessagingTestSuite) Test_PublisherEmitsEvent() {
	t := suite.T()
	received := make(chan *nats.Msg, 1)
	sub, err := suite.conn.ChanSubscribe("adyen.events.test", received)
	require.NoError(t, err)
	defer sub.Unsubscribe() //nolint:errcheck

	publisher := messaging.NewEventPublisher(suite.conn, "adyen.events.test")
	require.NoError(t, publisher.Ping(context.Background()))

	err = publisher.Publish(context.Background(), application.TransactionEvent{
		PaymentID:       "pay-1",
		PaymentVersion:  4,
		TransactionType: domain.TransactionTypeCharge,
		State:           domain.TransactionStateSuccess,
		Amount:          domain.Money{CentAmount: 1000, CurrencyCode: "EUR"},
		Source:          application.EventSourceNotification,
		EventCode:       "CAPTURE",
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		var event application.TransactionEvent
		require.NoError(t, sonic.Unmarshal(msg.Data, &event))
		assert.Equal(t, "pay-1", event.PaymentID)
		assert.Equal(t, domain.TransactionTypeCharge, event.TransactionType)
		assert.Equal(t, "CAPTURE", event.EventCode)
	case <-time.After(5 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func (suite *MessagingTestSuite) Test_SubscriberRepliesAccepted() {
	t := suite.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	processor := &recordingProcessor{received: make(chan application.Notification, 1)}
	subscriber := messaging.NewNotificationSubscriber(suite.conn, "adyen.notifications.test", "connector",
		processor, nil, suite.logger)
	require.NoError(t, subscriber.Start(ctx))

	body := []byte(`{"live":"false","notificationItems":[{"NotificationRequestItem":{
		"eventCode":"CAPTURE","success":"true","pspReference":"PSP-CAPTURE",
		"originalReference":"PSP-AUTH","merchantReference":"pay-1",
		"amount":{"currency":"EUR","value":500}}}]}`)

	reply, err := suite.conn.Request("adyen.notifications.test", body, 5*time.Second)

	require.NoError(t, err)
	assert.Equal(t, messaging.AcceptedReply, string(reply.Data))
	n := <-processor.received
	assert.Equal(t, "PSP-AUTH", n.NotificationItems[0].NotificationRequestItem.ReferencedPSP())
}
