package tidy

// An Accumulator is an alternative reduction technique, which siphons values from
// a Series into a custom data structure. Accumulators over disjoint parts of the
// same data may be combined via Merge(), which makes them suitable for computing
// per-group results and then combining them into a total.
type Accumulator interface {
	Accumulate(value interface{}) error // Accumulate adds a value to this Accumulator. Implementations ignore nil values.
	Merge(o Accumulator) error          // Merge merges another Accumulator into this one
	Result() interface{}                // Result returns the current value of this Accumulator
}
