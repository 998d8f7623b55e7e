package group

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/internal/table"
	iutil "github.com/go-sif/tidy/internal/util"
)

// Group is a set of rows sharing the same values in the grouping columns
type Group struct {
	Key  []interface{} // Key holds the grouping values (labels for categorical columns), nil where missing
	Rows []int         // Rows holds the positions of the member rows, ascending
}

// String renders the key of this Group
func (g *Group) String() string {
	parts := make([]string, len(g.Key))
	for i, k := range g.Key {
		if k == nil {
			parts[i] = "<NA>"
		} else {
			parts[i] = fmt.Sprint(k)
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ColumnsKey produces a KeyingOperation which encodes the values of the named columns of a row
func ColumnsKey(cols []tidy.Series) tidy.KeyingOperation {
	return func(row tidy.Row) ([]byte, error) {
		var key []byte
		for _, s := range cols {
			key = appendKey(key, s, row.Position())
		}
		return key, nil
	}
}

func appendKey(key []byte, s tidy.Series, i int) []byte {
	if s.IsNil(i) {
		return append(key, 0)
	}
	key = append(key, 1)
	if cs, ok := s.(tidy.CategoricalSeries); ok {
		return binary.LittleEndian.AppendUint32(key, uint32(cs.Code(i)))
	}
	switch v := s.Get(i).(type) {
	case float64:
		return binary.LittleEndian.AppendUint64(key, math.Float64bits(v))
	case int64:
		return binary.LittleEndian.AppendUint64(key, uint64(v))
	default:
		str := s.Type().ToString(v)
		key = binary.LittleEndian.AppendUint32(key, uint32(len(str)))
		return append(key, str...)
	}
}

// Partition splits the rows of a Table into groups by the values of the named columns.
// Groups are returned in ascending key order (categorical keys by level position), with missing keys last.
// Without keys, a single group holds every row.
func Partition(t tidy.Table, keys []string) ([]*Group, error) {
	cols := make([]tidy.Series, len(keys))
	for i, k := range keys {
		s, err := t.Column(k)
		if err != nil {
			return nil, err
		}
		cols[i] = s
	}
	if len(keys) == 0 {
		rows := make([]int, t.NumRows())
		for i := range rows {
			rows[i] = i
		}
		return []*Group{{Key: []interface{}{}, Rows: rows}}, nil
	}

	kfn := iutil.SafeKeyingOperation(ColumnsKey(cols))
	buckets := make(map[uint64][]*Group)
	groups := []*Group{}
	err := t.ForEachRow(func(row tidy.Row) error {
		key, err := kfn(row)
		if err != nil {
			return err
		}
		hash := xxhash.Sum64(key)
		i := row.Position()
		for _, g := range buckets[hash] {
			if sameKey(cols, g.Rows[0], i) {
				g.Rows = append(g.Rows, i)
				return nil
			}
		}
		g := &Group{Key: keyValues(cols, i), Rows: []int{i}}
		buckets[hash] = append(buckets[hash], g)
		groups = append(groups, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(groups, func(a, b int) bool {
		ra, rb := groups[a].Rows[0], groups[b].Rows[0]
		for _, s := range cols {
			if c := table.Compare(s, ra, rb); c != 0 {
				return c < 0
			}
		}
		return false
	})
	return groups, nil
}

// Of returns the groups of a Table according to its own grouping columns
func Of(t tidy.Table) ([]*Group, error) {
	return Partition(t, t.Grouping())
}

func sameKey(cols []tidy.Series, i, j int) bool {
	for _, s := range cols {
		if !table.Equal(s, i, j) {
			return false
		}
	}
	return true
}

func keyValues(cols []tidy.Series, i int) []interface{} {
	key := make([]interface{}, len(cols))
	for c, s := range cols {
		key[c] = s.Get(i)
	}
	return key
}
