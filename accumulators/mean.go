package accumulators

import (
	"fmt"
	"math"

	"github.com/go-sif/tidy"
)

// Averager returns a new Mean Accumulator
func Averager() func() tidy.Accumulator {
	return func() tidy.Accumulator {
		return &Mean{}
	}
}

// Mean computes the arithmetic mean of numeric values
type Mean struct {
	sum   float64
	count int64
}

// Accumulate adds a value to this Accumulator
func (a *Mean) Accumulate(value interface{}) error {
	if value == nil {
		return nil
	}
	v, ok := tidy.ToFloat64(value)
	if !ok {
		return fmt.Errorf("Mean cannot accumulate non-numeric value %#v", value)
	}
	a.sum += v
	a.count++
	return nil
}

// Merge merges another Accumulator into this one
func (a *Mean) Merge(o tidy.Accumulator) error {
	ma, ok := o.(*Mean)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Mean Accumulator")
	}
	a.sum += ma.sum
	a.count += ma.count
	return nil
}

// Result returns the mean as a float64, or NaN if no values were accumulated
func (a *Mean) Result() interface{} {
	if a.count == 0 {
		return math.NaN()
	}
	return a.sum / float64(a.count)
}
