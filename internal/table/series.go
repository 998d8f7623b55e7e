package table

import (
	"fmt"
	"sort"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
)

// valueSeries stores non-categorical values in their canonical Go representation
type valueSeries struct {
	colType tidy.ColumnType
	values  []interface{}
}

func (s *valueSeries) Type() tidy.ColumnType {
	return s.colType
}

func (s *valueSeries) Len() int {
	return len(s.values)
}

func (s *valueSeries) Get(i int) interface{} {
	return s.values[i]
}

func (s *valueSeries) IsNil(i int) bool {
	return s.values[i] == nil
}

func (s *valueSeries) Take(rows []int) tidy.Series {
	values := make([]interface{}, len(rows))
	for i, r := range rows {
		if r >= 0 {
			values[i] = s.values[r]
		}
	}
	return &valueSeries{colType: s.colType, values: values}
}

func (s *valueSeries) Values() []interface{} {
	values := make([]interface{}, len(s.values))
	copy(values, s.values)
	return values
}

// categoricalSeries stores codes into the Levels of its CategoricalColumnType. -1 marks a missing value.
type categoricalSeries struct {
	colType *tidy.CategoricalColumnType
	codes   []int32
}

func (s *categoricalSeries) Type() tidy.ColumnType {
	return s.colType
}

func (s *categoricalSeries) Len() int {
	return len(s.codes)
}

func (s *categoricalSeries) Get(i int) interface{} {
	if s.codes[i] < 0 {
		return nil
	}
	return s.colType.Levels[s.codes[i]]
}

func (s *categoricalSeries) IsNil(i int) bool {
	return s.codes[i] < 0
}

func (s *categoricalSeries) Take(rows []int) tidy.Series {
	codes := make([]int32, len(rows))
	for i, r := range rows {
		if r >= 0 {
			codes[i] = s.codes[r]
		} else {
			codes[i] = -1
		}
	}
	return &categoricalSeries{colType: s.colType, codes: codes}
}

func (s *categoricalSeries) Values() []interface{} {
	values := make([]interface{}, len(s.codes))
	for i := range s.codes {
		values[i] = s.Get(i)
	}
	return values
}

func (s *categoricalSeries) Levels() []string {
	levels := make([]string, len(s.colType.Levels))
	copy(levels, s.colType.Levels)
	return levels
}

func (s *categoricalSeries) Code(i int) int {
	return int(s.codes[i])
}

// NewSeries builds a Series of the given type from arbitrary Go values, coercing each non-nil value.
// A CategoricalColumnType without Levels infers them from the distinct values, in lexicographic order.
func NewSeries(colType tidy.ColumnType, values []interface{}) (tidy.Series, error) {
	if catType, ok := colType.(*tidy.CategoricalColumnType); ok {
		labels := make([]interface{}, len(values))
		for i, v := range values {
			if v == nil {
				continue
			}
			label, err := catType.Coerce(v)
			if err != nil {
				return nil, err
			}
			labels[i] = label
		}
		if len(catType.Levels) == 0 {
			catType = &tidy.CategoricalColumnType{Levels: DistinctLabels(labels)}
		}
		return NewCategoricalSeriesFromLabels(catType.Levels, labels)
	}
	coerced := make([]interface{}, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		cv, err := colType.Coerce(v)
		if err != nil {
			return nil, err
		}
		coerced[i] = cv
	}
	return &valueSeries{colType: colType, values: coerced}, nil
}

// NewNilSeries builds a Series of the given type in which every value is missing
func NewNilSeries(colType tidy.ColumnType, length int) tidy.Series {
	if catType, ok := colType.(*tidy.CategoricalColumnType); ok {
		codes := make([]int32, length)
		for i := range codes {
			codes[i] = -1
		}
		return &categoricalSeries{colType: catType, codes: codes}
	}
	return &valueSeries{colType: colType, values: make([]interface{}, length)}
}

// NewCategoricalSeries builds a categorical Series directly from level codes. Codes must be -1 or valid indices into levels.
func NewCategoricalSeries(levels []string, codes []int32) tidy.Series {
	return &categoricalSeries{colType: &tidy.CategoricalColumnType{Levels: levels}, codes: codes}
}

// NewCategoricalSeriesFromLabels encodes labels (strings or nil) against an ordered list of levels
func NewCategoricalSeriesFromLabels(levels []string, labels []interface{}) (tidy.Series, error) {
	index := make(map[string]int32, len(levels))
	for i, l := range levels {
		if _, dup := index[l]; dup {
			return nil, errors.InvalidArgumentError{Argument: "levels", Reason: fmt.Sprintf("level %q appears more than once", l)}
		}
		index[l] = int32(i)
	}
	codes := make([]int32, len(labels))
	for i, v := range labels {
		if v == nil {
			codes[i] = -1
			continue
		}
		label, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("Value %#v is not a categorical label", v)
		}
		code, ok := index[label]
		if !ok {
			return nil, fmt.Errorf("Value %q is not a level of this categorical column", label)
		}
		codes[i] = code
	}
	return &categoricalSeries{colType: &tidy.CategoricalColumnType{Levels: levels}, codes: codes}, nil
}

// DistinctLabels returns the distinct non-nil labels within values, sorted lexicographically
func DistinctLabels(values []interface{}) []string {
	seen := make(map[string]bool)
	labels := []string{}
	for _, v := range values {
		if v == nil {
			continue
		}
		label := v.(string)
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels
}
