package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Adyen counts minor units differently from ISO 4217 for a handful of
// currencies. The deltas are powers of ten applied when moving an amount
// from one convention to the other.
var isoToProcessorExponent = map[string]int32{
	"CLP": 2,  // ISO 0 decimals, Adyen 2
	"CVE": -2, // ISO 2 decimals, Adyen 0
	"IDR": -2, // ISO 2 decimals, Adyen 0
	"ISK": 2,  // ISO 0 decimals, Adyen 2
}

var processorToISOExponent = map[string]int32{
	"CLP": -2,
	"CVE": 2,
	"IDR": 2,
	"ISK": -2,
}

// ConvertCurrencyToProcessor rescales an ISO minor-unit amount to the
// processor's minor units. Unlisted currencies are returned unchanged.
func ConvertCurrencyToProcessor(amount int64, currency string) int64 {
	return rescale(amount, isoToProcessorExponent[strings.ToUpper(currency)])
}

// ConvertCurrencyToISO rescales a processor minor-unit amount to ISO minor units.
func ConvertCurrencyToISO(amount int64, currency string) int64 {
	return rescale(amount, processorToISOExponent[strings.ToUpper(currency)])
}

// ProcessorExponent returns the ISO→processor delta for currency, zero when unmapped.
func ProcessorExponent(currency string) int32 {
	return isoToProcessorExponent[strings.ToUpper(currency)]
}

// ISOExponent returns the processor→ISO delta for currency, zero when unmapped.
func ISOExponent(currency string) int32 {
	return processorToISOExponent[strings.ToUpper(currency)]
}

// MappedCurrencies lists every currency with a non-identity conversion.
func MappedCurrencies() []string {
	out := make([]string, 0, len(isoToProcessorExponent))
	for c := range isoToProcessorExponent {
		out = append(out, c)
	}
	return out
}

// ToProcessorAmount converts m into processor minor units.
func (m Money) ToProcessorAmount() int64 {
	return ConvertCurrencyToProcessor(m.CentAmount, m.CurrencyCode)
}

// MoneyFromProcessor builds ISO Money from a processor amount.
func MoneyFromProcessor(value int64, currency string) Money {
	return Money{
		CentAmount:   ConvertCurrencyToISO(value, currency),
		CurrencyCode: strings.ToUpper(currency),
	}
}

// rescale computes amount * 10^delta rounded half away from zero.
func rescale(amount int64, delta int32) int64 {
	if delta == 0 {
		return amount
	}
	return decimal.New(amount, delta).Round(0).IntPart()
}

// DivideRounded divides total by quantity and rounds half away from zero.
// Quantities below one are treated as one.
func DivideRounded(total, quantity int64) int64 {
	if quantity <= 1 {
		return total
	}
	return decimal.NewFromInt(total).
		Div(decimal.NewFromInt(quantity)).
		Round(0).
		IntPart()
}
