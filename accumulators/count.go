package accumulators

import (
	"fmt"

	"github.com/go-sif/tidy"
)

// Counter returns a new Count Accumulator
func Counter() func() tidy.Accumulator {
	return func() tidy.Accumulator {
		return &Count{}
	}
}

// Count counts non-nil values
type Count struct {
	count int64
}

// GetCount returns the count from this Accumulator
func (a *Count) GetCount() int64 {
	return a.count
}

// Accumulate adds a value to this Accumulator
func (a *Count) Accumulate(value interface{}) error {
	if value != nil {
		a.count++
	}
	return nil
}

// Merge merges another Accumulator into this one
func (a *Count) Merge(o tidy.Accumulator) error {
	ca, ok := o.(*Count)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Count Accumulator")
	}
	a.count += ca.count
	return nil
}

// Result returns the count as an int64
func (a *Count) Result() interface{} {
	return a.count
}
