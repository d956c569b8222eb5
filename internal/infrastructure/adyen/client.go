// Package adyen is the HTTP client for the Adyen Checkout API.
package adyen

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
	"github.com/go-resty/resty/v2"
)

const apiVersion = "v71"

const (
	headerAPIKey         = "X-API-Key"
	headerIdempotencyKey = "Idempotency-Key"
)

type Client struct {
	http            *resty.Client
	merchantAccount string
}

var _ application.ProcessorClient = (*Client)(nil)

func NewClient(cfg config.ProcessorConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")+"/"+apiVersion).
		SetTimeout(cfg.Timeout).
		SetHeader(headerAPIKey, cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:            httpClient,
		merchantAccount: cfg.MerchantAccount,
	}
}

func (c *Client) Payments(ctx context.Context, req application.PaymentRequest, idempotencyKey string) (*application.PaymentResponse, error) {
	return sendRequest[application.PaymentRequest, application.PaymentResponse](ctx, c, "/payments", "", &req, idempotencyKey)
}

func (c *Client) PaymentMethods(ctx context.Context, req application.PaymentMethodsRequest) (*application.PaymentMethodsResponse, error) {
	return sendRequest[application.PaymentMethodsRequest, application.PaymentMethodsResponse](ctx, c, "/paymentMethods", "", &req, "")
}

func (c *Client) Sessions(ctx context.Context, req application.SessionRequest, idempotencyKey string) (*application.SessionResponse, error) {
	return sendRequest[application.SessionRequest, application.SessionResponse](ctx, c, "/sessions", "", &req, idempotencyKey)
}

func (c *Client) CaptureAuthorisedPayment(ctx context.Context, pspReference string, req application.PaymentCaptureRequest, idempotencyKey string) (*application.ModificationResponse, error) {
	return sendRequest[application.PaymentCaptureRequest, application.ModificationResponse](ctx, c, "/payments/{pspReference}/captures", pspReference, &req, idempotencyKey)
}

func (c *Client) CancelAuthorisedPaymentByPspReference(ctx context.Context, pspReference string, req application.PaymentCancelRequest, idempotencyKey string) (*application.ModificationResponse, error) {
	return sendRequest[application.PaymentCancelRequest, application.ModificationResponse](ctx, c, "/payments/{pspReference}/cancels", pspReference, &req, idempotencyKey)
}

func (c *Client) RefundCapturedPayment(ctx context.Context, pspReference string, req application.PaymentRefundRequest, idempotencyKey string) (*application.ModificationResponse, error) {
	return sendRequest[application.PaymentRefundRequest, application.ModificationResponse](ctx, c, "/payments/{pspReference}/refunds", pspReference, &req, idempotencyKey)
}

// Ping checks that the API key is accepted by listing payment methods.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.PaymentMethods(ctx, application.PaymentMethodsRequest{MerchantAccount: c.merchantAccount})
	return err
}

func sendRequest[Req any, Resp any](ctx context.Context, c *Client, path, pspReference string, body *Req, idempotencyKey string) (*Resp, error) {
	var result Resp
	var errBody application.ProcessorErrorResponse

	req := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		SetError(&errBody)

	if pspReference != "" {
		req.SetPathParam("pspReference", pspReference)
	}
	if idempotencyKey != "" {
		req.SetHeader(headerIdempotencyKey, idempotencyKey)
	}

	resp, err := req.Post(path)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}

	if resp.IsError() {
		return nil, processorError(resp, &errBody)
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return nil, fmt.Errorf("processor returned unexpected status %d", resp.StatusCode())
	}

	return &result, nil
}

func processorError(resp *resty.Response, body *application.ProcessorErrorResponse) *application.ProcessorError {
	if body.ErrorCode == "" && body.Message == "" {
		return &application.ProcessorError{
			StatusCode: resp.StatusCode(),
			ErrorType:  "http",
			Message:    strings.TrimSpace(string(resp.Body())),
		}
	}
	return &application.ProcessorError{
		StatusCode:   resp.StatusCode(),
		ErrorCode:    body.ErrorCode,
		Message:      body.Message,
		ErrorType:    body.ErrorType,
		PSPReference: body.PSPReference,
	}
}
