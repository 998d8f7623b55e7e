package transform

import (
	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/internal/table"
	"golang.org/x/exp/slices"
)

// categoricalTargets resolves the categorical columns an operation applies to. Named columns
// must exist, but non-categorical ones are skipped. Without names, every categorical column is a target.
func categoricalTargets(t *table.Table, colNames []string) ([]string, error) {
	if len(colNames) == 0 {
		colNames = t.Schema().ColumnNames()
	}
	targets := []string{}
	for _, name := range colNames {
		col, err := t.Schema().GetColumn(name)
		if err != nil {
			return nil, err
		}
		if tidy.IsCategorical(col.Type()) {
			targets = append(targets, name)
		}
	}
	return targets, nil
}

// relevel applies fn to the levels of each target column, re-encoding its values against the result
func relevel(colNames []string, fn func(s tidy.CategoricalSeries) []string) tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		targets, err := categoricalTargets(ct, colNames)
		if err != nil {
			return nil, err
		}
		for _, name := range targets {
			s, err := ct.Column(name)
			if err != nil {
				return nil, err
			}
			cs := s.(tidy.CategoricalSeries)
			releveled, err := table.NewCategoricalSeriesFromLabels(fn(cs), cs.Values())
			if err != nil {
				return nil, err
			}
			if ct, err = ct.WithColumn(name, releveled); err != nil {
				return nil, err
			}
		}
		return ct, nil
	}
}

// DropUnusedLevels removes the levels which no value uses from the named categorical columns,
// or from every categorical column if none are named. The order of the remaining levels is kept.
func DropUnusedLevels(colNames ...string) tidy.TableOperation {
	return relevel(colNames, func(s tidy.CategoricalSeries) []string {
		used := make(map[int]bool)
		for i := 0; i < s.Len(); i++ {
			used[s.Code(i)] = true
		}
		levels := []string{}
		for code, l := range s.Levels() {
			if used[code] {
				levels = append(levels, l)
			}
		}
		return levels
	})
}

// ReverseCategories reverses the level order of the named categorical columns,
// or of every categorical column if none are named
func ReverseCategories(colNames ...string) tidy.TableOperation {
	return relevel(colNames, func(s tidy.CategoricalSeries) []string {
		levels := s.Levels()
		slices.Reverse(levels)
		return levels
	})
}
