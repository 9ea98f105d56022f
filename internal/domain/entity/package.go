// Package entity contains the core bussiness entities of the domain layer.
package entity

import "github.com/burakkgenccc/package-express/internal/domain/valueobject"

// Field names a settable attribute of a Package.
type Field string

const (
	FieldWeight Field = "Weight" // Package weight
	FieldWidth  Field = "Width"  // Package width
	FieldHeight Field = "Height" // Package height
	FieldLength Field = "Length" // Package length
)

// ChangeListener is notified after a Package field has been set.
type ChangeListener func(field Field)

// Package is the record of one package's physical attributes.
// All fields start at zero and carry no invariant of their own;
// validity is decided by the shipping calculator.
type Package struct {
	weight float64
	width  float64
	height float64
	length float64

	listeners []ChangeListener
}

// NewPackage creates a Package with every field set to zero.
//
// Returns:
//   - *Package: newly created Package
func NewPackage() *Package {
	return &Package{}
}

// OnChange registers a listener invoked synchronously after every field mutation.
// Listeners run in the order they were registered.
//
// Parameters:
//   - fn: listener receiving the name of the changed field
func (p *Package) OnChange(fn ChangeListener) {
	if fn == nil {
		return
	}
	p.listeners = append(p.listeners, fn)
}

// Weight returns the package weight.
func (p *Package) Weight() float64 { return p.weight }

// Width returns the package width.
func (p *Package) Width() float64 { return p.width }

// Height returns the package height.
func (p *Package) Height() float64 { return p.height }

// Length returns the package length.
func (p *Package) Length() float64 { return p.length }

// SetWeight updates the package weight.
// Any value is accepted, including zero and negative numbers.
//
// Parameters:
//   - weight: new weight
func (p *Package) SetWeight(weight float64) {
	p.weight = weight
	p.notify(FieldWeight)
}

// SetWidth updates the package width.
//
// Parameters:
//   - width: new width
func (p *Package) SetWidth(width float64) {
	p.width = width
	p.notify(FieldWidth)
}

// SetHeight updates the package height.
//
// Parameters:
//   - height: new height
func (p *Package) SetHeight(height float64) {
	p.height = height
	p.notify(FieldHeight)
}

// SetLength updates the package length.
//
// Parameters:
//   - length: new length
func (p *Package) SetLength(length float64) {
	p.length = length
	p.notify(FieldLength)
}

// Set updates the field identified by name.
// Unknown fields are ignored and report false.
//
// Parameters:
//   - field: the field to update
//   - value: new value
//
// Returns:
//   - bool: true if the field exists
func (p *Package) Set(field Field, value float64) bool {
	switch field {
	case FieldWeight:
		p.SetWeight(value)
	case FieldWidth:
		p.SetWidth(value)
	case FieldHeight:
		p.SetHeight(value)
	case FieldLength:
		p.SetLength(value)
	default:
		return false
	}
	return true
}

// Dimensions returns a snapshot of the package's width, height and length.
//
// Returns:
//   - valueobject.Dimensions: current dimensions
func (p *Package) Dimensions() valueobject.Dimensions {
	return valueobject.NewDimensions(p.width, p.height, p.length)
}

func (p *Package) notify(field Field) {
	for _, fn := range p.listeners {
		fn(field)
	}
}
