// Package scholarship holds the static donation tier configuration. The two
// tiers and their INR bounds are fixed program policy, not tunable settings.
package scholarship

import (
	"errors"
	"strings"
)

const (
	TierMicro = "micro"
	TierBig   = "big"

	// boundedCurrency is the only currency the amount bounds are defined
	// in. Amounts in other currencies pass through unchecked; converting
	// the bounds per-currency is out of scope.
	boundedCurrency = "INR"
)

var (
	ErrUnknownTier      = errors.New("unknown scholarship tier")
	ErrMicroAmountRange = errors.New("micro scholarship must be between ₹10 and ₹5,000")
	ErrBigAmountRange   = errors.New("big scholarship must be between ₹10,000 and ₹10,00,000")
)

type Tier struct {
	Code      string  `json:"code"`
	MinAmount float64 `json:"min_amount"`
	MaxAmount float64 `json:"max_amount"`
	Currency  string  `json:"currency"`
}

var (
	Micro = Tier{Code: TierMicro, MinAmount: 10, MaxAmount: 5000, Currency: boundedCurrency}
	Big   = Tier{Code: TierBig, MinAmount: 10000, MaxAmount: 1000000, Currency: boundedCurrency}
)

func Tiers() []Tier {
	return []Tier{Micro, Big}
}

func TierByCode(code string) (Tier, bool) {
	switch code {
	case TierMicro:
		return Micro, true
	case TierBig:
		return Big, true
	}
	return Tier{}, false
}

// ValidateAmount checks a donation amount against the tier bounds. Both
// bounds are inclusive. The check only applies to INR amounts.
func ValidateAmount(code, currency string, amount float64) error {
	tier, ok := TierByCode(code)
	if !ok {
		return ErrUnknownTier
	}

	if !strings.EqualFold(currency, boundedCurrency) {
		return nil
	}

	if amount < tier.MinAmount || amount > tier.MaxAmount {
		if tier.Code == TierMicro {
			return ErrMicroAmountRange
		}
		return ErrBigAmountRange
	}

	return nil
}
