package accumulators

import (
	"github.com/go-sif/tidy"
)

var (
	// SumAggregator sums the numeric values of a Series. Missing values are ignored.
	SumAggregator = Reduce(Adder())
	// CountAggregator counts the non-missing values of a Series
	CountAggregator = Reduce(Counter())
	// MeanAggregator averages the numeric values of a Series, producing NaN for a Series without values
	MeanAggregator = Reduce(Averager())
	// MinAggregator finds the smallest numeric value of a Series
	MinAggregator = Reduce(Minimizer())
	// MaxAggregator finds the largest numeric value of a Series
	MaxAggregator = Reduce(Maximizer())
)

// Reduce turns an Accumulator factory into an Aggregator, by accumulating every value of a Series into a fresh Accumulator
func Reduce(facc func() tidy.Accumulator) tidy.Aggregator {
	return func(values tidy.Series) (interface{}, error) {
		acc := facc()
		for i := 0; i < values.Len(); i++ {
			if err := acc.Accumulate(values.Get(i)); err != nil {
				return nil, err
			}
		}
		return acc.Result(), nil
	}
}
