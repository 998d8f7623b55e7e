package transform

import (
	"fmt"
	"time"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/internal/group"
	"github.com/go-sif/tidy/internal/table"
	iutil "github.com/go-sif/tidy/internal/util"
)

// Aggregation reduces one column of each group to a single value
type Aggregation struct {
	Column     string          // Column is the name of the column to reduce
	Label      string          // Label, if set, makes the output column name multi-level: (Column, Label)
	Aggregator tidy.Aggregator // Aggregator reduces the values of Column within a group
}

// name returns the output column name of this Aggregation
func (a Aggregation) name() string {
	if len(a.Label) == 0 {
		return a.Column
	}
	return tidy.MultiLevelName(a.Column, a.Label)
}

// Aggregate produces one row per group, holding the grouping columns followed by one column per Aggregation.
// An ungrouped Table is treated as a single group. The result is not grouped.
func Aggregate(aggs ...Aggregation) tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		if len(aggs) == 0 {
			return nil, errors.InvalidArgumentError{Argument: "aggregations", Reason: "at least one aggregation is required"}
		}
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		groups, err := group.Of(ct)
		if err != nil {
			return nil, err
		}
		representatives := make([]int, len(groups))
		for i, g := range groups {
			representatives[i] = -1
			if len(g.Rows) > 0 {
				representatives[i] = g.Rows[0]
			}
		}

		names := ct.Grouping()
		columns := make([]tidy.Series, 0, len(names)+len(aggs))
		for _, name := range names {
			s, err := ct.Column(name)
			if err != nil {
				return nil, err
			}
			columns = append(columns, s.Take(representatives))
		}
		for _, agg := range aggs {
			if agg.Aggregator == nil {
				return nil, errors.InvalidArgumentError{Argument: "aggregations", Reason: fmt.Sprintf("aggregation of %s has no Aggregator", agg.Column)}
			}
			s, err := ct.Column(agg.Column)
			if err != nil {
				return nil, err
			}
			safeAgg := iutil.SafeAggregator(agg.Aggregator)
			results := make([]interface{}, len(groups))
			for i, g := range groups {
				if results[i], err = safeAgg(s.Take(g.Rows)); err != nil {
					aggErr := errors.AggregationError{Column: agg.Column, Err: err}
					if ct.IsGrouped() {
						aggErr.Group = g.String()
					}
					return nil, aggErr
				}
			}
			out, err := table.NewSeries(inferColumnType(results), results)
			if err != nil {
				return nil, errors.AggregationError{Column: agg.Column, Err: err}
			}
			names = append(names, agg.name())
			columns = append(columns, out)
		}
		return asTable(table.New(names, columns, nil))
	}
}

// inferColumnType chooses a ColumnType able to hold every value. Mixed numeric values widen to float64.
func inferColumnType(values []interface{}) tidy.ColumnType {
	var result tidy.ColumnType
	for _, v := range values {
		var vt tidy.ColumnType
		switch v.(type) {
		case nil:
			continue
		case bool:
			vt = &tidy.BoolColumnType{}
		case int, int8, int16, int32, int64, uint8, uint16, uint32:
			vt = &tidy.Int64ColumnType{}
		case float32, float64, uint, uint64:
			vt = &tidy.Float64ColumnType{}
		case time.Time:
			vt = &tidy.TimeColumnType{}
		default:
			vt = &tidy.StringColumnType{}
		}
		switch {
		case result == nil:
			result = vt
		case tidy.IsNumeric(result) && tidy.IsNumeric(vt) && result.Name() != vt.Name():
			result = &tidy.Float64ColumnType{}
		}
	}
	if result == nil {
		return &tidy.Float64ColumnType{}
	}
	return result
}
