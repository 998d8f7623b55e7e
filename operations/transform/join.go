package transform

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/internal/table"
	"golang.org/x/exp/slices"
)

// JoinType selects which unmatched rows a Join keeps
type JoinType int

const (
	// InnerJoin keeps only rows with a match on both sides
	InnerJoin JoinType = iota
	// LeftJoin keeps every left row
	LeftJoin
	// RightJoin keeps every right row
	RightJoin
	// OuterJoin keeps every row of both sides
	OuterJoin
)

// Suffixes appended to non-key column names present on both sides of a Join
const (
	LeftSuffix  = "_x"
	RightSuffix = "_y"
)

// Join combines the rows of a Table with those of right which share the same values in the on columns.
// Output columns are the left columns followed by the non-key right columns; names present on both sides
// are suffixed with LeftSuffix and RightSuffix. Output rows follow the left Table (the right Table for a
// RightJoin), with an OuterJoin appending unmatched right rows. Missing key values never match.
func Join(right tidy.Table, how JoinType, on ...string) tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		if len(on) == 0 {
			return nil, errors.InvalidArgumentError{Argument: "on", Reason: "at least one key column is required"}
		}
		if how < InnerJoin || how > OuterJoin {
			return nil, errors.InvalidArgumentError{Argument: "how", Reason: fmt.Sprintf("unknown join type %d", how)}
		}
		lt, err := table.From(t)
		if err != nil {
			return nil, err
		}
		rt, err := table.From(right)
		if err != nil {
			return nil, err
		}
		lkeys, err := columnsOf(lt, on)
		if err != nil {
			return nil, err
		}
		rkeys, err := columnsOf(rt, on)
		if err != nil {
			return nil, err
		}

		leftRows, rightRows := matchRows(lkeys, rkeys, lt.NumRows(), rt.NumRows(), how)
		return assembleJoin(lt, rt, on, lkeys, rkeys, leftRows, rightRows)
	}
}

func columnsOf(t *table.Table, names []string) ([]tidy.Series, error) {
	cols := make([]tidy.Series, len(names))
	for i, name := range names {
		s, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = s
	}
	return cols, nil
}

// joinKey encodes the key values of a row by label, so that keys compare across Tables. Integers are encoded
// exactly, and whole floats match the equal integer. ok is false if any value is missing.
func joinKey(cols []tidy.Series, i int) (key string, ok bool) {
	var sb strings.Builder
	for _, s := range cols {
		if s.IsNil(i) {
			return "", false
		}
		v := s.Get(i)
		if n, isInt := v.(int64); isInt {
			fmt.Fprintf(&sb, "n%s\x1f", strconv.FormatInt(n, 10))
		} else if f, isNum := tidy.ToFloat64(v); isNum {
			if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
				fmt.Fprintf(&sb, "n%s\x1f", strconv.FormatInt(int64(f), 10))
			} else {
				fmt.Fprintf(&sb, "n%v\x1f", f)
			}
		} else {
			fmt.Fprintf(&sb, "s%s\x1f", s.Type().ToString(v))
		}
	}
	return sb.String(), true
}

func indexKeys(cols []tidy.Series, n int) map[string][]int {
	index := make(map[string][]int)
	for i := 0; i < n; i++ {
		if key, ok := joinKey(cols, i); ok {
			index[key] = append(index[key], i)
		}
	}
	return index
}

// matchRows pairs row positions of both sides. -1 marks the absent side of an unmatched row.
func matchRows(lkeys, rkeys []tidy.Series, nl, nr int, how JoinType) (leftRows, rightRows []int) {
	if how == RightJoin {
		rightRows, leftRows = matchRows(rkeys, lkeys, nr, nl, LeftJoin)
		return leftRows, rightRows
	}
	rindex := indexKeys(rkeys, nr)
	matched := make([]bool, nr)
	for l := 0; l < nl; l++ {
		key, ok := joinKey(lkeys, l)
		matches := rindex[key]
		if !ok || len(matches) == 0 {
			if how != InnerJoin {
				leftRows = append(leftRows, l)
				rightRows = append(rightRows, -1)
			}
			continue
		}
		for _, r := range matches {
			leftRows = append(leftRows, l)
			rightRows = append(rightRows, r)
			matched[r] = true
		}
	}
	if how == OuterJoin {
		for r, m := range matched {
			if !m {
				leftRows = append(leftRows, -1)
				rightRows = append(rightRows, r)
			}
		}
	}
	return leftRows, rightRows
}

func assembleJoin(lt, rt *table.Table, on []string, lkeys, rkeys []tidy.Series, leftRows, rightRows []int) (tidy.Table, error) {
	rightNames := []string{}
	for _, name := range rt.Schema().ColumnNames() {
		if !slices.Contains(on, name) {
			rightNames = append(rightNames, name)
		}
	}
	names := []string{}
	columns := []tidy.Series{}
	for _, name := range lt.Schema().ColumnNames() {
		s, err := lt.Column(name)
		if err != nil {
			return nil, err
		}
		if k := slices.Index(on, name); k >= 0 {
			if s, err = coalesceKey(lkeys[k], rkeys[k], leftRows, rightRows); err != nil {
				return nil, fmt.Errorf("Column %s: %w", name, err)
			}
		} else {
			if slices.Contains(rightNames, name) {
				name += LeftSuffix
			}
			s = s.Take(leftRows)
		}
		names = append(names, name)
		columns = append(columns, s)
	}
	for _, name := range rightNames {
		s, err := rt.Column(name)
		if err != nil {
			return nil, err
		}
		if lt.Schema().HasColumn(name) {
			name += RightSuffix
		}
		names = append(names, name)
		columns = append(columns, s.Take(rightRows))
	}
	grouping := []string{}
	for _, g := range lt.Grouping() {
		if slices.Contains(names, g) {
			grouping = append(grouping, g)
		}
	}
	return asTable(table.New(names, columns, grouping))
}

// coalesceKey builds a key column from the left values, falling back to the right values for rows only present on the right.
// Categorical keys gain any right-only labels as trailing levels.
func coalesceKey(left, right tidy.Series, leftRows, rightRows []int) (tidy.Series, error) {
	cs, categorical := left.(tidy.CategoricalSeries)
	_, isString := left.Type().(*tidy.StringColumnType)
	values := make([]interface{}, len(leftRows))
	for i := range leftRows {
		switch {
		case leftRows[i] >= 0:
			values[i] = left.Get(leftRows[i])
		case right.IsNil(rightRows[i]):
		case categorical || isString:
			values[i] = right.Type().ToString(right.Get(rightRows[i]))
		default:
			values[i] = right.Get(rightRows[i])
		}
	}
	if !categorical {
		return table.NewSeries(left.Type(), values)
	}
	levels := cs.Levels()
	for _, v := range values {
		if v != nil && !slices.Contains(levels, v.(string)) {
			levels = append(levels, v.(string))
		}
	}
	return table.NewCategoricalSeriesFromLabels(levels, values)
}
