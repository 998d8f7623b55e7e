package accumulators

import (
	"fmt"

	"github.com/go-sif/tidy"
)

// Compose returns a new Composed Accumulator
func Compose(faccs ...func() tidy.Accumulator) func() tidy.Accumulator {
	return func() tidy.Accumulator {
		accs := make([]tidy.Accumulator, len(faccs))
		for i, f := range faccs {
			accs[i] = f()
		}
		return &Composed{accs: accs}
	}
}

// Composed composes other Accumulators
type Composed struct {
	accs []tidy.Accumulator
}

// GetResults returns the contained Accumulators, so that their results may be accessed
func (c *Composed) GetResults() []tidy.Accumulator {
	return c.accs
}

// Accumulate adds a value to all contained Accumulators
func (c *Composed) Accumulate(value interface{}) error {
	for _, a := range c.accs {
		err := a.Accumulate(value)
		if err != nil {
			return err
		}
	}
	return nil
}

// Merge merges another Composed Accumulator into this one, merging all contained Accumulators
func (c *Composed) Merge(o tidy.Accumulator) error {
	compa, ok := o.(*Composed)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Composed Accumulator")
	}
	if len(compa.accs) != len(c.accs) {
		return fmt.Errorf("Incoming Composed Accumulator has %d accumulators, expected %d", len(compa.accs), len(c.accs))
	}
	for i, a := range c.accs {
		err := a.Merge(compa.accs[i])
		if err != nil {
			return err
		}
	}
	return nil
}

// Result returns the results of all contained Accumulators, in order
func (c *Composed) Result() interface{} {
	results := make([]interface{}, len(c.accs))
	for i, a := range c.accs {
		results[i] = a.Result()
	}
	return results
}
