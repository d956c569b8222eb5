package domain

import (
	"errors"
)

// Money is an amount in ISO 4217 minor units.
type Money struct {
	CentAmount   int64  `json:"centAmount"`
	CurrencyCode string `json:"currencyCode"`
}

func NewMoney(centAmount int64, currencyCode string) (Money, error) {
	if centAmount < 0 {
		return Money{}, errors.New("amount cannot be negative")
	}
	if currencyCode == "" {
		return Money{}, errors.New("currency is required")
	}
	return Money{CentAmount: centAmount, CurrencyCode: currencyCode}, nil
}

// IsZero reports whether no currency has been set.
func (m Money) IsZero() bool {
	return m.CurrencyCode == "" && m.CentAmount == 0
}

// LocalizedString maps a locale ("en", "de-DE") to a value.
type LocalizedString map[string]string

// In returns the value for locale, falling back to its language part and then
// to any value in deterministic order.
func (s LocalizedString) In(locale string) string {
	if v, ok := s[locale]; ok {
		return v
	}
	for i := 0; i < len(locale); i++ {
		if locale[i] == '-' || locale[i] == '_' {
			if v, ok := s[locale[:i]]; ok {
				return v
			}
			break
		}
	}
	best := ""
	for k := range s {
		if best == "" || k < best {
			best = k
		}
	}
	return s[best]
}

type Address struct {
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	StreetName   string `json:"streetName,omitempty"`
	StreetNumber string `json:"streetNumber,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
}
