// Package converters translates between the commerce payment model and the
// Adyen Checkout wire format.
package converters

import (
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	discountIDSuffix          = "-discount"
	discountDescriptionSuffix = " discount"
	shippingDescriptionPrefix = "Shipping - "
	totalDiscountDescription  = "Discount"
)

// MapLineItems flattens a cart or order into processor line items: every line
// item and custom line item (each followed by its per-item discount when one
// applies), then one record per shipping method, then the discount on the
// total price. Per-unit amounts are divided by quantity and rounded half away
// from zero after conversion to processor minor units.
func MapLineItems(b *domain.Basket) []application.LineItem {
	items := make([]application.LineItem, 0, len(b.LineItems)+len(b.CustomLineItems)+2)

	for _, li := range b.LineItems {
		items = append(items, mapItem(itemSource{
			id:         li.ID,
			name:       li.Name.In(b.Locale),
			quantity:   li.Quantity,
			unitPrice:  li.Price.Value,
			totalPrice: li.TotalPrice,
			taxedPrice: li.TaxedPrice,
			taxRate:    li.TaxRate,
		})...)
	}

	for _, cli := range b.CustomLineItems {
		items = append(items, mapItem(itemSource{
			id:         cli.ID,
			name:       cli.Name.In(b.Locale),
			quantity:   cli.Quantity,
			unitPrice:  cli.Money,
			totalPrice: cli.TotalPrice,
			taxedPrice: cli.TaxedPrice,
			taxRate:    cli.TaxRate,
		})...)
	}

	for _, shipping := range b.NormalizedShipping() {
		items = append(items, mapShipping(shipping))
	}

	if b.DiscountOnTotalPrice != nil {
		items = append(items, mapTotalDiscount(b.DiscountOnTotalPrice))
	}

	return items
}

type itemSource struct {
	id         string
	name       string
	quantity   int64
	unitPrice  domain.Money
	totalPrice domain.Money
	taxedPrice *domain.TaxedItemPrice
	taxRate    *domain.TaxRate
}

func mapItem(src itemSource) []application.LineItem {
	quantity := src.quantity
	if quantity < 1 {
		quantity = 1
	}

	primary := application.LineItem{
		ID:            src.id,
		Description:   src.name,
		Quantity:      quantity,
		TaxPercentage: int64Ptr(taxPercentage(src.taxRate)),
	}

	if src.taxedPrice != nil {
		gross := src.taxedPrice.TotalGross
		primary.AmountIncludingTax = perUnit(gross.CentAmount, gross.CurrencyCode, quantity)
		primary.AmountExcludingTax = int64Ptr(perUnit(src.taxedPrice.TotalNet.CentAmount, gross.CurrencyCode, quantity))
		primary.TaxAmount = int64Ptr(perUnit(src.taxedPrice.Tax(), gross.CurrencyCode, quantity))
	} else {
		amount := perUnit(src.totalPrice.CentAmount, src.totalPrice.CurrencyCode, quantity)
		primary.AmountIncludingTax = amount
		primary.AmountExcludingTax = int64Ptr(amount)
		primary.TaxAmount = int64Ptr(0)
	}

	items := []application.LineItem{primary}

	undiscounted := src.unitPrice.CentAmount * quantity
	if src.totalPrice.CentAmount < undiscounted {
		discount := undiscounted - src.totalPrice.CentAmount
		items = append(items, application.LineItem{
			ID:                 src.id + discountIDSuffix,
			Description:        src.name + discountDescriptionSuffix,
			Quantity:           quantity,
			AmountIncludingTax: -domain.ConvertCurrencyToProcessor(discount, src.totalPrice.CurrencyCode),
		})
	}

	return items
}

func mapShipping(s domain.ShippingInfo) application.LineItem {
	item := application.LineItem{
		Description: shippingDescriptionPrefix + s.ShippingMethodName,
		Quantity:    1,
	}

	if s.TaxedPrice == nil {
		item.AmountExcludingTax = int64Ptr(0)
		item.TaxAmount = int64Ptr(0)
		item.TaxPercentage = int64Ptr(0)
		return item
	}

	currency := s.TaxedPrice.TotalGross.CurrencyCode
	item.AmountIncludingTax = domain.ConvertCurrencyToProcessor(s.TaxedPrice.TotalGross.CentAmount, currency)
	item.AmountExcludingTax = int64Ptr(domain.ConvertCurrencyToProcessor(s.TaxedPrice.TotalNet.CentAmount, currency))
	item.TaxAmount = int64Ptr(domain.ConvertCurrencyToProcessor(s.TaxedPrice.Tax(), currency))
	item.TaxPercentage = int64Ptr(taxPercentage(s.TaxRate))
	return item
}

func mapTotalDiscount(d *domain.DiscountOnTotalPrice) application.LineItem {
	gross := d.DiscountedAmount
	if d.DiscountedGrossAmount != nil {
		gross = *d.DiscountedGrossAmount
	}
	net := d.DiscountedAmount
	if d.DiscountedNetAmount != nil {
		net = *d.DiscountedNetAmount
	}

	including := -domain.ConvertCurrencyToProcessor(gross.CentAmount, gross.CurrencyCode)
	excluding := -domain.ConvertCurrencyToProcessor(net.CentAmount, net.CurrencyCode)

	return application.LineItem{
		Description:        totalDiscountDescription,
		Quantity:           1,
		AmountIncludingTax: including,
		AmountExcludingTax: int64Ptr(excluding),
		TaxAmount:          int64Ptr(including - excluding),
	}
}

func perUnit(total int64, currency string, quantity int64) int64 {
	return domain.DivideRounded(domain.ConvertCurrencyToProcessor(total, currency), quantity)
}

// taxPercentage converts a decimal rate (0.19) to basis points (1900).
func taxPercentage(rate *domain.TaxRate) int64 {
	if rate == nil {
		return 0
	}
	return decimal.NewFromFloat(rate.Amount).Shift(4).Round(0).IntPart()
}

func int64Ptr(v int64) *int64 {
	return &v
}
