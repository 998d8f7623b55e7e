package table

import (
	"math"
	"strings"
	"time"

	"github.com/go-sif/tidy"
)

// Compare orders the values at positions i and j of a Series. Categorical values are ordered by
// level position, missing values and NaNs sort after everything else.
func Compare(s tidy.Series, i, j int) int {
	ni, nj := s.IsNil(i), s.IsNil(j)
	switch {
	case ni && nj:
		return 0
	case ni:
		return 1
	case nj:
		return -1
	}
	if cs, ok := s.(tidy.CategoricalSeries); ok {
		return compareInts(cs.Code(i), cs.Code(j))
	}
	return CompareValues(s.Get(i), s.Get(j))
}

// CompareValues orders two non-nil canonical values of the same ColumnType
func CompareValues(a, b interface{}) int {
	switch av := a.(type) {
	case int64:
		bv := b.(int64)
		if av < bv {
			return -1
		} else if av > bv {
			return 1
		}
		return 0
	case float64:
		return CompareFloats(av, b.(float64))
	case string:
		return strings.Compare(av, b.(string))
	case bool:
		bv := b.(bool)
		if av == bv {
			return 0
		} else if !av {
			return -1
		}
		return 1
	case time.Time:
		bv := b.(time.Time)
		if av.Before(bv) {
			return -1
		} else if av.After(bv) {
			return 1
		}
		return 0
	}
	return 0
}

// CompareFloats orders two floats ascending, placing NaN last
func CompareFloats(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal returns true iff the values at positions i and j of a Series are both missing or equal
func Equal(s tidy.Series, i, j int) bool {
	return Compare(s, i, j) == 0
}

func compareInts(a, b int) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}
