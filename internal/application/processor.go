package application

import "encoding/json"

// Wire types of the Adyen Checkout API (v71) used by the connector.

// Amount is a processor amount in the processor's minor units.
type Amount struct {
	Currency string `json:"currency"`
	Value    int64  `json:"value"`
}

// LineItem is one processor line-item record. Synthetic discount records only
// carry ID, Description, Quantity and AmountIncludingTax; shipping and
// discount-on-total records carry no ID.
type LineItem struct {
	ID                 string `json:"id,omitempty"`
	Description        string `json:"description"`
	Quantity           int64  `json:"quantity"`
	AmountIncludingTax int64  `json:"amountIncludingTax"`
	AmountExcludingTax *int64 `json:"amountExcludingTax,omitempty"`
	TaxAmount          *int64 `json:"taxAmount,omitempty"`
	TaxPercentage      *int64 `json:"taxPercentage,omitempty"`
}

type ProcessorAddress struct {
	City              string `json:"city"`
	Country           string `json:"country"`
	HouseNumberOrName string `json:"houseNumberOrName"`
	PostalCode        string `json:"postalCode"`
	StateOrProvince   string `json:"stateOrProvince,omitempty"`
	Street            string `json:"street"`
}

type ShopperName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ThreeDSRequestData struct {
	NativeThreeDS string `json:"nativeThreeDS,omitempty"`
}

type AuthenticationData struct {
	ThreeDSRequestData *ThreeDSRequestData `json:"threeDSRequestData,omitempty"`
}

type PaymentCaptureRequest struct {
	MerchantAccount string     `json:"merchantAccount"`
	Reference       string     `json:"reference"`
	Amount          Amount     `json:"amount"`
	LineItems       []LineItem `json:"lineItems,omitempty"`
}

type PaymentCancelRequest struct {
	MerchantAccount string `json:"merchantAccount"`
	Reference       string `json:"reference"`
}

type PaymentRefundRequest struct {
	MerchantAccount     string `json:"merchantAccount"`
	Reference           string `json:"reference"`
	Amount              Amount `json:"amount"`
	CapturePSPReference string `json:"capturePspReference,omitempty"`
}

// Modification status values returned by the processor.
const (
	ModificationStatusReceived = "received"
	ModificationStatusApproved = "approved"
)

// ModificationResponse is returned by the capture, cancel and refund endpoints.
type ModificationResponse struct {
	MerchantAccount     string  `json:"merchantAccount"`
	PaymentPSPReference string  `json:"paymentPspReference"`
	PSPReference        string  `json:"pspReference"`
	Reference           string  `json:"reference"`
	Status              string  `json:"status"`
	Amount              *Amount `json:"amount,omitempty"`
}

type PaymentRequest struct {
	Amount             Amount              `json:"amount"`
	MerchantAccount    string              `json:"merchantAccount"`
	Reference          string              `json:"reference"`
	CountryCode        string              `json:"countryCode,omitempty"`
	ShopperEmail       string              `json:"shopperEmail,omitempty"`
	ShopperLocale      string              `json:"shopperLocale,omitempty"`
	ShopperReference   string              `json:"shopperReference,omitempty"`
	Channel            string              `json:"channel"`
	ReturnURL          string              `json:"returnUrl"`
	PaymentMethod      json.RawMessage     `json:"paymentMethod"`
	BrowserInfo        json.RawMessage     `json:"browserInfo,omitempty"`
	Origin             string              `json:"origin,omitempty"`
	LineItems          []LineItem          `json:"lineItems,omitempty"`
	BillingAddress     *ProcessorAddress   `json:"billingAddress,omitempty"`
	DeliveryAddress    *ProcessorAddress   `json:"deliveryAddress,omitempty"`
	ShopperName        *ShopperName        `json:"shopperName,omitempty"`
	AuthenticationData *AuthenticationData `json:"authenticationData,omitempty"`
	Metadata           map[string]string   `json:"metadata,omitempty"`
}

// Result codes returned by /payments.
const (
	ResultCodeAuthorised       = "Authorised"
	ResultCodePending          = "Pending"
	ResultCodeReceived         = "Received"
	ResultCodeRefused          = "Refused"
	ResultCodeError            = "Error"
	ResultCodeCancelled        = "Cancelled"
	ResultCodeRedirectShopper  = "RedirectShopper"
	ResultCodeIdentifyShopper  = "IdentifyShopper"
	ResultCodeChallengeShopper = "ChallengeShopper"
	ResultCodePresentToShopper = "PresentToShopper"
)

type PaymentMethodDetails struct {
	Type  string `json:"type,omitempty"`
	Brand string `json:"brand,omitempty"`
}

type PaymentResponse struct {
	PSPReference      string                `json:"pspReference,omitempty"`
	ResultCode        string                `json:"resultCode"`
	MerchantReference string                `json:"merchantReference,omitempty"`
	RefusalReason     string                `json:"refusalReason,omitempty"`
	Action            json.RawMessage       `json:"action,omitempty"`
	Amount            *Amount               `json:"amount,omitempty"`
	PaymentMethod     *PaymentMethodDetails `json:"paymentMethod,omitempty"`
}

type SessionRequest struct {
	Amount          Amount            `json:"amount"`
	MerchantAccount string            `json:"merchantAccount"`
	Reference       string            `json:"reference"`
	CountryCode     string            `json:"countryCode,omitempty"`
	ShopperEmail    string            `json:"shopperEmail,omitempty"`
	ShopperLocale   string            `json:"shopperLocale,omitempty"`
	Channel         string            `json:"channel"`
	ReturnURL       string            `json:"returnUrl"`
	LineItems       []LineItem        `json:"lineItems,omitempty"`
	BillingAddress  *ProcessorAddress `json:"billingAddress,omitempty"`
	DeliveryAddress *ProcessorAddress `json:"deliveryAddress,omitempty"`
	ShopperName     *ShopperName      `json:"shopperName,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

type SessionResponse struct {
	ID              string `json:"id"`
	SessionData     string `json:"sessionData"`
	Amount          Amount `json:"amount"`
	ExpiresAt       string `json:"expiresAt"`
	MerchantAccount string `json:"merchantAccount"`
	Reference       string `json:"reference"`
	ReturnURL       string `json:"returnUrl"`
}

type PaymentMethodsRequest struct {
	MerchantAccount string  `json:"merchantAccount"`
	CountryCode     string  `json:"countryCode,omitempty"`
	Amount          *Amount `json:"amount,omitempty"`
	ShopperLocale   string  `json:"shopperLocale,omitempty"`
	Channel         string  `json:"channel,omitempty"`
}

type PaymentMethod struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Brands []string `json:"brands,omitempty"`
}

type PaymentMethodsResponse struct {
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
}

// ProcessorErrorResponse is the error body Adyen returns on non-2xx responses.
type ProcessorErrorResponse struct {
	Status       int    `json:"status"`
	ErrorCode    string `json:"errorCode"`
	Message      string `json:"message"`
	ErrorType    string `json:"errorType"`
	PSPReference string `json:"pspReference"`
}
