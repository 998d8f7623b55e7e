package accumulators

import (
	"fmt"
	"math"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
)

// MeanWeighted computes the weighted arithmetic mean of values. Weights must be non-negative and
// as many as the values, which must not be empty. The result is NaN if any value or weight is NaN,
// or if every weight is zero.
func MeanWeighted(values []float64, weights []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.InvalidArgumentError{Argument: "values", Reason: "must not be empty"}
	}
	if len(weights) == 0 {
		return 0, errors.InvalidArgumentError{Argument: "weights", Reason: "must not be empty"}
	}
	if len(values) != len(weights) {
		return 0, errors.LengthMismatchError{Name: "weights", Expected: len(values), Actual: len(weights)}
	}
	for _, w := range weights {
		if w < 0 {
			return 0, errors.InvalidArgumentError{Argument: "weights", Reason: "must be non-negative"}
		}
	}
	var sum, totalWeight float64
	for i, v := range values {
		sum += v * weights[i]
		totalWeight += weights[i]
	}
	if totalWeight == 0 {
		return math.NaN(), nil
	}
	return sum / totalWeight, nil
}

// MeanWeightedOf computes the weighted mean of one numeric column of a Table, weighted by another.
// Missing values are treated as NaN.
func MeanWeightedOf(t tidy.Table, valueCol string, weightCol string) (float64, error) {
	values, err := numericValues(t, valueCol)
	if err != nil {
		return 0, err
	}
	weights, err := numericValues(t, weightCol)
	if err != nil {
		return 0, err
	}
	return MeanWeighted(values, weights)
}

func numericValues(t tidy.Table, colName string) ([]float64, error) {
	s, err := t.Column(colName)
	if err != nil {
		return nil, err
	}
	if !tidy.IsNumeric(s.Type()) {
		return nil, errors.IncompatibleTypeError{Name: colName, Expected: "numeric", Actual: s.Type().Name()}
	}
	result := make([]float64, s.Len())
	for i := range result {
		if s.IsNil(i) {
			result[i] = math.NaN()
			continue
		}
		v, ok := tidy.ToFloat64(s.Get(i))
		if !ok {
			return nil, fmt.Errorf("Column %s holds non-numeric value %#v", colName, s.Get(i))
		}
		result[i] = v
	}
	return result, nil
}
