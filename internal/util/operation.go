package util

import (
	"fmt"

	"github.com/go-sif/tidy"
)

// SafeFilterOperation wraps a FilterOperation such that panics are recovered and nice error messages are constructed
func SafeFilterOperation(filterOp tidy.FilterOperation) (safeFilterOp tidy.FilterOperation) {
	return func(row tidy.Row) (keep bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Filter Panic: %w\nRow: %s\n%s", anErr, row.ToString(), GetTrace())
				} else {
					err = fmt.Errorf("Filter Panic: %v\nRow: %s\n%s", r, row.ToString(), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Filter Error: %w\nRow: %s", err, row.ToString())
			}
		}()
		keep, err = filterOp(row)
		return
	}
}

// SafeKeyingOperation wraps a KeyingOperation such that panics are recovered and nice error messages are constructed
func SafeKeyingOperation(keyingOp tidy.KeyingOperation) (safeKeyingOp tidy.KeyingOperation) {
	return func(row tidy.Row) (key []byte, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Keying Panic: %w\nRow: %s\n%s", anErr, row.ToString(), GetTrace())
				} else {
					err = fmt.Errorf("Keying Panic: %v\nRow: %s\n%s", r, row.ToString(), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Keying Error: %w\nRow: %s", err, row.ToString())
			}
		}()
		key, err = keyingOp(row)
		return
	}
}

// SafePredicateOperation wraps a PredicateOperation such that panics are recovered and the mask length is verified
func SafePredicateOperation(predicateOp tidy.PredicateOperation) (safePredicateOp tidy.PredicateOperation) {
	return func(t tidy.Table) (mask []bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Predicate Panic: %w\n%s", anErr, GetTrace())
				} else {
					err = fmt.Errorf("Predicate Panic: %v\n%s", r, GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Predicate Error: %w", err)
			} else if len(mask) != t.NumRows() {
				err = fmt.Errorf("Predicate Error: produced %d values for %d rows", len(mask), t.NumRows())
			}
		}()
		mask, err = predicateOp(t)
		return
	}
}

// SafeAssignOperation wraps an AssignOperation such that panics are recovered and the result length is verified
func SafeAssignOperation(assignOp tidy.AssignOperation) (safeAssignOp tidy.AssignOperation) {
	return func(t tidy.Table) (values []interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Assign Panic: %w\n%s", anErr, GetTrace())
				} else {
					err = fmt.Errorf("Assign Panic: %v\n%s", r, GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Assign Error: %w", err)
			} else if len(values) != t.NumRows() {
				err = fmt.Errorf("Assign Error: produced %d values for %d rows", len(values), t.NumRows())
			}
		}()
		values, err = assignOp(t)
		return
	}
}

// SafeAggregator wraps an Aggregator such that panics are recovered and nice error messages are constructed
func SafeAggregator(agg tidy.Aggregator) (safeAgg tidy.Aggregator) {
	return func(values tidy.Series) (result interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Aggregator Panic: %w\n%s", anErr, GetTrace())
				} else {
					err = fmt.Errorf("Aggregator Panic: %v\n%s", r, GetTrace())
				}
			}
		}()
		result, err = agg(values)
		return
	}
}
