package converters

import (
	"net/url"
	"strings"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

const (
	channelWeb = "Web"

	returnURLPaymentToken = "{paymentId}"
	returnURLPaymentParam = "paymentReference"

	metadataCartID    = "ctCartId"
	metadataPaymentID = "ctPaymentId"
)

// ModifyPaymentRequest carries the caller-supplied parameters of a capture,
// cancel or refund.
type ModifyPaymentRequest struct {
	Amount            domain.Money
	MerchantReference string
	// TransactionID optionally names the Charge a refund is taken from.
	TransactionID string
}

func referenceFor(payment *domain.Payment, merchantReference string) string {
	if merchantReference != "" {
		return merchantReference
	}
	return payment.ID
}

func processorAmount(m domain.Money) application.Amount {
	return application.Amount{
		Currency: strings.ToUpper(m.CurrencyCode),
		Value:    m.ToProcessorAmount(),
	}
}

// BuildReturnURL substitutes the payment ID into template, or appends it as a
// query parameter when the template has no placeholder.
func BuildReturnURL(template, paymentID string) string {
	if strings.Contains(template, returnURLPaymentToken) {
		return strings.ReplaceAll(template, returnURLPaymentToken, url.PathEscape(paymentID))
	}

	u, err := url.Parse(template)
	if err != nil {
		return template
	}
	q := u.Query()
	q.Set(returnURLPaymentParam, paymentID)
	u.RawQuery = q.Encode()
	return u.String()
}

func mapAddress(a *domain.Address) *application.ProcessorAddress {
	if a == nil || a.Country == "" {
		return nil
	}
	return &application.ProcessorAddress{
		City:              a.City,
		Country:           a.Country,
		HouseNumberOrName: a.StreetNumber,
		PostalCode:        a.PostalCode,
		StateOrProvince:   a.State,
		Street:            a.StreetName,
	}
}

func mapShopperName(a *domain.Address) *application.ShopperName {
	if a == nil || (a.FirstName == "" && a.LastName == "") {
		return nil
	}
	return &application.ShopperName{FirstName: a.FirstName, LastName: a.LastName}
}

func cartMetadata(cart *domain.Cart, payment *domain.Payment) map[string]string {
	return map[string]string{
		metadataCartID:    cart.ID,
		metadataPaymentID: payment.ID,
	}
}
