// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Side-effect free: Methods returns new instances rather than modifying state
package valueobject

import (
	"errors"
	"fmt"
	"math"
)

// Currency represents a monetary currency using ISO 4217 codes.
type Currency string

// CurrencyUSD is the only currency quotes are expressed in.
const CurrencyUSD Currency = "USD"

// Money errors define domain-specific error conditions.
var (
	ErrAmountOutOfRange = errors.New("money amount out of range")
)

// maxCents bounds amounts that convert to int64 cents without overflow.
const maxCents = float64(math.MaxInt64)

// Money represents a monetary value with currency.
// It stores amounts in the smallest unit (cents) to avoid floating-point issues.
//
// Example usage:
//
//	total, err := valueobject.NewMoneyFromFloat(0.8, valueobject.CurrencyUSD)
//	total.String() // "USD 0.80"
type Money struct {
	// Amount in smallest currency unit (e.g., cents for USD)
	Amount int64 `json:"amount"`

	// Currency using ISO 4217 code
	Currency Currency `json:"currency"`
}

// NewMoney creates a new Money value object.
//
// Parameters:
//   - amount: Amount in smallest unit (e.g., cents)
//   - currency: ISO 4217 currency code
//
// Returns:
//   - Money: the created Money value object
func NewMoney(amount int64, currency Currency) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// NewMoneyFromFloat creates a new Money from a decimal amount.
// The amount is rounded half away from zero to the nearest cent.
//
// Parameters:
//   - amount: Decimal amount (e.g., 19.99)
//   - currency: ISO 4217 currency code
//
// Returns:
//   - Money: the created Money value object
//   - error: ErrAmountOutOfRange if the amount is NaN, infinite or
//     does not fit in int64 cents
func NewMoneyFromFloat(amount float64, currency Currency) (Money, error) {
	cents := math.Round(amount * 100)
	if math.IsNaN(cents) || cents >= maxCents || cents < -maxCents {
		return Money{}, fmt.Errorf("%v: %w", amount, ErrAmountOutOfRange)
	}
	return NewMoney(int64(cents), currency), nil
}

// ToFloat converts the Money amount to a float64 representation.
//
// Returns:
//   - float64: Decimal representation (e.g., 19.99)
func (m Money) ToFloat() float64 {
	return float64(m.Amount) / 100.0
}

// String returns a formatted string representation of the Money, used in logs.
//
// Returns:
//   - string: Formatted string (e.g., "USD 19.99")
func (m Money) String() string {
	return fmt.Sprintf("%s %.2f", m.Currency, m.ToFloat())
}

// FormatAmount formats a decimal amount with the currency symbol and two
// decimal places, without passing through cents. Any float64 is accepted:
// negatives keep their sign after the symbol ("$-0.80", "$-0.00") and
// infinities print as "$+Inf"/"$-Inf".
//
// Parameters:
//   - amount: Decimal amount
//   - currency: ISO 4217 currency code
//
// Returns:
//   - string: Formatted string with currency symbol (e.g., "$19.99")
func FormatAmount(amount float64, currency Currency) string {
	return fmt.Sprintf("%s%.2f", currencySymbol(currency), amount)
}

// currencySymbol returns the symbol for a given currency.
func currencySymbol(c Currency) string {
	if c == CurrencyUSD {
		return "$"
	}
	return string(c) + " "
}
