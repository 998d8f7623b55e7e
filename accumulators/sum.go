package accumulators

import (
	"fmt"

	"github.com/go-sif/tidy"
)

// Adder returns a new Sum Accumulator
func Adder() func() tidy.Accumulator {
	return func() tidy.Accumulator {
		return &Sum{}
	}
}

// Sum sums numeric values
type Sum struct {
	sum float64
}

// GetSum returns the Sum from this Accumulator
func (a *Sum) GetSum() float64 {
	return a.sum
}

// Accumulate adds a value to this Accumulator
func (a *Sum) Accumulate(value interface{}) error {
	if value == nil {
		return nil
	}
	v, ok := tidy.ToFloat64(value)
	if !ok {
		return fmt.Errorf("Sum cannot accumulate non-numeric value %#v", value)
	}
	a.sum += v
	return nil
}

// Merge merges another Accumulator into this one
func (a *Sum) Merge(o tidy.Accumulator) error {
	ca, ok := o.(*Sum)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Sum Accumulator")
	}
	a.sum += ca.sum
	return nil
}

// Result returns the sum as a float64
func (a *Sum) Result() interface{} {
	return a.sum
}
