package domain

const (
	ShippingModeSingle   = "Single"
	ShippingModeMultiple = "Multiple"
)

type TaxRate struct {
	Name            string  `json:"name,omitempty"`
	Amount          float64 `json:"amount"`
	IncludedInPrice bool    `json:"includedInPrice"`
}

// TaxedItemPrice is the net/gross/tax breakdown of an item's total.
type TaxedItemPrice struct {
	TotalNet   Money  `json:"totalNet"`
	TotalGross Money  `json:"totalGross"`
	TotalTax   *Money `json:"totalTax,omitempty"`
}

// Tax returns TotalTax, or gross minus net when it was not reported.
func (t TaxedItemPrice) Tax() int64 {
	if t.TotalTax != nil {
		return t.TotalTax.CentAmount
	}
	return t.TotalGross.CentAmount - t.TotalNet.CentAmount
}

type TaxedPrice struct {
	TotalNet   Money  `json:"totalNet"`
	TotalGross Money  `json:"totalGross"`
	TotalTax   *Money `json:"totalTax,omitempty"`
}

type Price struct {
	Value Money `json:"value"`
}

type LineItem struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"productId,omitempty"`
	Name       LocalizedString `json:"name"`
	Quantity   int64           `json:"quantity"`
	Price      Price           `json:"price"`
	TotalPrice Money           `json:"totalPrice"`
	TaxedPrice *TaxedItemPrice `json:"taxedPrice,omitempty"`
	TaxRate    *TaxRate        `json:"taxRate,omitempty"`
}

type CustomLineItem struct {
	ID         string          `json:"id"`
	Slug       string          `json:"slug,omitempty"`
	Name       LocalizedString `json:"name"`
	Quantity   int64           `json:"quantity"`
	Money      Money           `json:"money"`
	TotalPrice Money           `json:"totalPrice"`
	TaxedPrice *TaxedItemPrice `json:"taxedPrice,omitempty"`
	TaxRate    *TaxRate        `json:"taxRate,omitempty"`
}

type ShippingInfo struct {
	ShippingMethodName string          `json:"shippingMethodName"`
	Price              Money           `json:"price"`
	TaxedPrice         *TaxedItemPrice `json:"taxedPrice,omitempty"`
	TaxRate            *TaxRate        `json:"taxRate,omitempty"`
}

// Shipping is one entry of a multi-shipping cart.
type Shipping struct {
	ShippingKey  string       `json:"shippingKey"`
	ShippingInfo ShippingInfo `json:"shippingInfo"`
}

type DiscountOnTotalPrice struct {
	DiscountedAmount      Money  `json:"discountedAmount"`
	DiscountedNetAmount   *Money `json:"discountedNetAmount,omitempty"`
	DiscountedGrossAmount *Money `json:"discountedGrossAmount,omitempty"`
}

// Basket is the priced content shared by carts and orders.
type Basket struct {
	LineItems            []LineItem            `json:"lineItems"`
	CustomLineItems      []CustomLineItem      `json:"customLineItems"`
	ShippingMode         string                `json:"shippingMode,omitempty"`
	ShippingInfo         *ShippingInfo         `json:"shippingInfo,omitempty"`
	Shipping             []Shipping            `json:"shipping,omitempty"`
	DiscountOnTotalPrice *DiscountOnTotalPrice `json:"discountOnTotalPrice,omitempty"`
	TotalPrice           Money                 `json:"totalPrice"`
	TaxedPrice           *TaxedPrice           `json:"taxedPrice,omitempty"`
	Locale               string                `json:"locale,omitempty"`
}

// NormalizedShipping returns one ShippingInfo per shipping method regardless of
// whether the basket uses single or multiple shipping.
func (b *Basket) NormalizedShipping() []ShippingInfo {
	if b.ShippingMode == ShippingModeMultiple {
		out := make([]ShippingInfo, 0, len(b.Shipping))
		for _, s := range b.Shipping {
			out = append(out, s.ShippingInfo)
		}
		return out
	}
	if b.ShippingInfo == nil {
		return nil
	}
	return []ShippingInfo{*b.ShippingInfo}
}

// GrandTotal is the gross total when taxed, otherwise the flat total price.
func (b *Basket) GrandTotal() Money {
	if b.TaxedPrice != nil {
		return b.TaxedPrice.TotalGross
	}
	return b.TotalPrice
}

type Cart struct {
	ID              string   `json:"id"`
	Version         int64    `json:"version"`
	CustomerID      string   `json:"customerId,omitempty"`
	CustomerEmail   string   `json:"customerEmail,omitempty"`
	Country         string   `json:"country,omitempty"`
	BillingAddress  *Address `json:"billingAddress,omitempty"`
	ShippingAddress *Address `json:"shippingAddress,omitempty"`
	PaymentIDs      []string `json:"paymentIds"`
	Basket
}

// CountryCode prefers the cart country, then the billing and shipping address.
func (c *Cart) CountryCode() string {
	switch {
	case c.Country != "":
		return c.Country
	case c.BillingAddress != nil && c.BillingAddress.Country != "":
		return c.BillingAddress.Country
	case c.ShippingAddress != nil:
		return c.ShippingAddress.Country
	}
	return ""
}

// ShopperEmail prefers the customer email over the billing address email.
func (c *Cart) ShopperEmail() string {
	if c.CustomerEmail != "" {
		return c.CustomerEmail
	}
	if c.BillingAddress != nil {
		return c.BillingAddress.Email
	}
	return ""
}

type Order struct {
	ID          string   `json:"id"`
	OrderNumber string   `json:"orderNumber,omitempty"`
	CartID      string   `json:"cartId,omitempty"`
	PaymentIDs  []string `json:"paymentIds"`
	Basket
}
