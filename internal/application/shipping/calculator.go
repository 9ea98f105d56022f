// Package shipping contains the shipping rules applied to a package record.
package shipping

import (
	"github.com/burakkgenccc/package-express/internal/application/port"
	"github.com/burakkgenccc/package-express/internal/domain/entity"
	"github.com/burakkgenccc/package-express/internal/domain/valueobject"
)

const (
	// MaxWeight is the heaviest package accepted.
	MaxWeight = 50.0

	// MaxDimensionSum is the largest accepted width + height + length.
	MaxDimensionSum = 50.0

	// costDivisor scales the weight-volume product into dollars.
	costDivisor = 100.0
)

// Calculator applies the shipping rules to the package it owns.
// One Calculator is created per session.
type Calculator struct {
	pkg    *entity.Package
	logger port.Logger
}

// NewCalculator creates a Calculator wrapping a fresh, zero-valued Package.
// It subscribes to the package's change notifications; the subscriber is
// where per-field validation would hook in and currently only traces.
//
// Parameters:
//   - logger: logger for change traces (nil disables logging)
//
// Returns:
//   - *Calculator: new calculator
func NewCalculator(logger port.Logger) *Calculator {
	if logger == nil {
		logger = port.NopLogger{}
	}
	c := &Calculator{
		pkg:    entity.NewPackage(),
		logger: logger,
	}
	c.pkg.OnChange(c.packageChanged)
	return c
}

// Package returns the wrapped package record.
func (c *Calculator) Package() *entity.Package {
	return c.pkg
}

// ValidateWeight reports whether the weight is at most MaxWeight.
// Negative weights pass.
//
// Returns:
//   - bool: true if the package is light enough to ship
func (c *Calculator) ValidateWeight() bool {
	return c.pkg.Weight() <= MaxWeight
}

// ValidateSize reports whether width + height + length is at most MaxDimensionSum.
// Individual dimensions are not bounded.
//
// Returns:
//   - bool: true if the package is small enough to ship
func (c *Calculator) ValidateSize() bool {
	return c.pkg.Dimensions().Sum() <= MaxDimensionSum
}

// ComputeCost returns (width * height * length * weight) / 100, unrounded.
//
// Returns:
//   - float64: shipping cost in dollars
func (c *Calculator) ComputeCost() float64 {
	return c.pkg.Dimensions().Volume() * c.pkg.Weight() / costDivisor
}

// Quote returns the shipping cost as Money rounded to whole cents.
// Costs that cannot be held in cents (infinite, NaN, or beyond int64)
// are reported with valueobject.ErrAmountOutOfRange.
//
// Returns:
//   - valueobject.Money: shipping cost in USD
//   - error: ErrAmountOutOfRange if the cost does not fit in cents
func (c *Calculator) Quote() (valueobject.Money, error) {
	return valueobject.NewMoneyFromFloat(c.ComputeCost(), valueobject.CurrencyUSD)
}

// FormatCost renders the unrounded cost with two decimals, e.g. "$0.80".
// Every cost is printable, including ones Quote rejects.
//
// Returns:
//   - string: formatted cost
func (c *Calculator) FormatCost() string {
	return valueobject.FormatAmount(c.ComputeCost(), valueobject.CurrencyUSD)
}

func (c *Calculator) packageChanged(field entity.Field) {
	c.logger.Debug("Package field changed", "field", string(field))
}
