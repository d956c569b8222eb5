package main

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

// connectorClient talks to a running connector's HTTP surface.
type connectorClient struct {
	http *resty.Client
}

type money struct {
	CentAmount   int64  `json:"centAmount"`
	CurrencyCode string `json:"currencyCode"`
}

type modifyAction struct {
	Action        string `json:"action"`
	Amount        *money `json:"amount,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}

type modifyRequest struct {
	Actions           []modifyAction `json:"actions"`
	MerchantReference string         `json:"merchantReference,omitempty"`
}

type modifyResult struct {
	Outcome       string `json:"outcome"`
	PaymentID     string `json:"paymentId"`
	TransactionID string `json:"transactionId,omitempty"`
	PSPReference  string `json:"pspReference,omitempty"`
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newConnectorClient(baseURL string, timeout time.Duration) *connectorClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	client.JSONMarshal = sonic.Marshal
	client.JSONUnmarshal = sonic.Unmarshal
	return &connectorClient{http: client}
}

// Notify posts a raw notification document and returns the acknowledgement body.
func (c *connectorClient) Notify(ctx context.Context, body []byte) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/notifications")
	if err != nil {
		return "", fmt.Errorf("send notification: %w", err)
	}
	if resp.IsError() {
		return "", responseError(resp)
	}
	return resp.String(), nil
}

// Modify submits a single modification action for paymentID.
func (c *connectorClient) Modify(ctx context.Context, paymentID string, req modifyRequest) (*modifyResult, error) {
	var out envelope[modifyResult]
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/operations/payment-intents/" + url.PathEscape(paymentID))
	if err != nil {
		return nil, fmt.Errorf("modify payment: %w", err)
	}
	if resp.IsError() {
		return nil, responseError(resp)
	}
	return &out.Data, nil
}

func responseError(resp *resty.Response) error {
	var body errorEnvelope
	if err := sonic.Unmarshal(resp.Body(), &body); err == nil && body.Error.Code != "" {
		return fmt.Errorf("status %d: %s: %s", resp.StatusCode(), body.Error.Code, body.Error.Message)
	}
	return fmt.Errorf("status %d: %s", resp.StatusCode(), resp.String())
}
