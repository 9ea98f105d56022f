package shipping

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/burakkgenccc/package-express/internal/application/port"
	"github.com/burakkgenccc/package-express/internal/domain/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalculator(weight, width, height, length float64) *Calculator {
	c := NewCalculator(nil)
	p := c.Package()
	p.SetWeight(weight)
	p.SetWidth(width)
	p.SetHeight(height)
	p.SetLength(length)
	return c
}

func TestNewCalculator_FreshPackage(t *testing.T) {
	c := NewCalculator(nil)

	require.NotNil(t, c.Package())
	assert.Zero(t, c.Package().Weight())
	assert.True(t, c.ValidateWeight())
	assert.True(t, c.ValidateSize())
	assert.Zero(t, c.ComputeCost())
}

func TestCalculator_ValidateWeight(t *testing.T) {
	tests := []struct {
		weight float64
		want   bool
	}{
		{0, true},
		{10, true},
		{49.99, true},
		{50, true},
		{50.01, false},
		{51, false},
		{60, false},
		{-5, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.weight), func(t *testing.T) {
			c := NewCalculator(nil)
			c.Package().SetWeight(tt.weight)
			assert.Equal(t, tt.want, c.ValidateWeight())
		})
	}
}

func TestCalculator_ValidateSize(t *testing.T) {
	tests := []struct {
		name                  string
		width, height, length float64
		want                  bool
	}{
		{"small", 2, 2, 2, true},
		{"exactly at limit", 20, 20, 10, true},
		{"just over", 20, 20, 10.5, false},
		{"sixty", 20, 20, 20, false},
		{"one huge dimension", 48, 1, 1, true},
		{"negative offsets", -30, 40, 40, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCalculator(1, tt.width, tt.height, tt.length)
			assert.Equal(t, tt.want, c.ValidateSize())
		})
	}
}

func TestCalculator_ComputeCost(t *testing.T) {
	tests := []struct {
		name                          string
		weight, width, height, length float64
	}{
		{"sample", 10, 2, 2, 2},
		{"zero weight", 0, 10, 10, 10},
		{"fractional", 12.5, 1.5, 2.25, 3.75},
		{"limits", 50, 16, 17, 17},
		{"negative", -2, 3, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCalculator(tt.weight, tt.width, tt.height, tt.length)
			want := tt.width * tt.height * tt.length * tt.weight / 100
			assert.InDelta(t, want, c.ComputeCost(), 1e-9)
		})
	}
}

func TestCalculator_Quote(t *testing.T) {
	c := newCalculator(10, 2, 2, 2)

	cost, err := c.Quote()
	require.NoError(t, err)
	assert.Equal(t, int64(80), cost.Amount)
	assert.Equal(t, valueobject.CurrencyUSD, cost.Currency)
	assert.Equal(t, "$0.80", c.FormatCost())
}

func TestCalculator_CostBeyondCents(t *testing.T) {
	tests := []struct {
		name                          string
		weight, width, height, length float64
		want                          string
	}{
		{"large negative weight", -1e20, 1, 1, 1, "$-1000000000000000000.00"},
		{"negative infinite weight", math.Inf(-1), 1, 1, 1, "$-Inf"},
		{"overflowing volume", 10, 1e200, -1e200, 50, "$-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCalculator(tt.weight, tt.width, tt.height, tt.length)
			require.True(t, c.ValidateWeight())
			require.True(t, c.ValidateSize())

			assert.Equal(t, tt.want, c.FormatCost())

			_, err := c.Quote()
			assert.ErrorIs(t, err, valueobject.ErrAmountOutOfRange)
		})
	}
}

func TestCalculator_TracesFieldChanges(t *testing.T) {
	rec := &recordingLogger{}
	c := NewCalculator(rec)

	c.Package().SetWeight(3)
	c.Package().SetLength(4)

	assert.Equal(t, []string{"Weight", "Length"}, rec.fields)
}

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(ErrTooHeavy))
	assert.True(t, IsRejection(fmt.Errorf("weight 60: %w", ErrTooBig)))
	assert.False(t, IsRejection(ErrInvalidInput))
	assert.False(t, IsRejection(nil))
}

type recordingLogger struct {
	port.NopLogger
	fields []string
}

func (r *recordingLogger) Debug(msg string, keysAndValues ...interface{}) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if keysAndValues[i] == "field" {
			r.fields = append(r.fields, keysAndValues[i+1].(string))
		}
	}
}

func (r *recordingLogger) With(...interface{}) port.Logger { return r }

func (r *recordingLogger) WithContext(context.Context) port.Logger { return r }
