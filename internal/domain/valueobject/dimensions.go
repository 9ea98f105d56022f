// Package valueobject contains value objects that represent concepts without identity.
package valueobject

import "fmt"

// Dimensions represents the physical dimensions of a package.
// No unit is attached; the values are used as entered.
type Dimensions struct {
	// Width of the package.
	Width float64 `json:"width"`

	// Height of the package.
	Height float64 `json:"height"`

	// Length of the package.
	Length float64 `json:"length"`
}

// NewDimensions creates a new Dimensions value object.
//
// Parameters:
//   - width: Width of the package
//   - height: Height of the package
//   - length: Length of the package
//
// Returns:
//   - Dimensions: new Dimensions value object
func NewDimensions(width, height, length float64) Dimensions {
	return Dimensions{
		Width:  width,
		Height: height,
		Length: length,
	}
}

// Sum adds the three dimensions together (width + height + length).
// This is the figure the size limit is checked against.
//
// Returns:
//   - float64: combined dimension sum
func (d Dimensions) Sum() float64 {
	return d.Width + d.Height + d.Length
}

// Volume multiplies the three dimensions (width * height * length).
//
// Returns:
//   - float64: volume of the package
func (d Dimensions) Volume() float64 {
	return d.Width * d.Height * d.Length
}

// String returns a formatted string representation.
//
// Returns:
//   - string: formatted dimensions (e.g., "2.0x3.0x4.0")
func (d Dimensions) String() string {
	return fmt.Sprintf("%.1fx%.1fx%.1f", d.Width, d.Height, d.Length)
}
