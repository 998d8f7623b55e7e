package accumulators

import (
	"fmt"

	"github.com/go-sif/tidy"
)

// Minimizer returns a new Extremum Accumulator tracking the smallest value
func Minimizer() func() tidy.Accumulator {
	return func() tidy.Accumulator {
		return &Extremum{less: func(a, b float64) bool { return a < b }}
	}
}

// Maximizer returns a new Extremum Accumulator tracking the largest value
func Maximizer() func() tidy.Accumulator {
	return func() tidy.Accumulator {
		return &Extremum{less: func(a, b float64) bool { return a > b }}
	}
}

// Extremum tracks the smallest (or largest) numeric value
type Extremum struct {
	less  func(a, b float64) bool
	value float64
	seen  bool
}

// Accumulate adds a value to this Accumulator
func (a *Extremum) Accumulate(value interface{}) error {
	if value == nil {
		return nil
	}
	v, ok := tidy.ToFloat64(value)
	if !ok {
		return fmt.Errorf("Extremum cannot accumulate non-numeric value %#v", value)
	}
	if !a.seen || a.less(v, a.value) {
		a.value = v
		a.seen = true
	}
	return nil
}

// Merge merges another Accumulator into this one
func (a *Extremum) Merge(o tidy.Accumulator) error {
	ea, ok := o.(*Extremum)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not an Extremum Accumulator")
	}
	if ea.seen {
		return a.Accumulate(ea.value)
	}
	return nil
}

// Result returns the extreme value as a float64, or nil if no values were accumulated
func (a *Extremum) Result() interface{} {
	if !a.seen {
		return nil
	}
	return a.value
}
