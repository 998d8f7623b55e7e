package transform

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/accumulators"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/internal/group"
	"github.com/go-sif/tidy/internal/table"
	iutil "github.com/go-sif/tidy/internal/util"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// DefaultOtherLabel is the label given to coalesced levels by SetCategorical's KeepOther option
const DefaultOtherLabel = "_other"

type categoricalConf struct {
	valueCol    string
	aggregator  tidy.Aggregator
	reverse     bool
	topN        int
	topNSet     bool
	keepOther   bool
	otherLabel  string
	orderGroups bool
}

// CategoricalOption configures SetCategorical
type CategoricalOption func(conf *categoricalConf)

// OrderBy orders levels by an aggregate of the named value column, descending, instead of lexicographically
func OrderBy(valueCol string) CategoricalOption {
	return func(conf *categoricalConf) {
		conf.valueCol = valueCol
	}
}

// AggregateWith sets the Aggregator applied to each level's values. Defaults to a sum.
func AggregateWith(agg tidy.Aggregator) CategoricalOption {
	return func(conf *categoricalConf) {
		conf.aggregator = agg
	}
}

// Reverse flips the level order: ascending by aggregate, or reverse-lexicographic without a value column
func Reverse() CategoricalOption {
	return func(conf *categoricalConf) {
		conf.reverse = true
	}
}

// TopN retains only the first n levels of the order. n must be positive.
func TopN(n int) CategoricalOption {
	return func(conf *categoricalConf) {
		conf.topN = n
		conf.topNSet = true
	}
}

// KeepOther remaps rows whose level falls outside TopN to the other label, instead of voiding them.
// A categorical column already ending in the other label keeps those rows in it, so reapplying is stable.
func KeepOther() CategoricalOption {
	return func(conf *categoricalConf) {
		conf.keepOther = true
	}
}

// OtherLabel sets the label of the coalesced level produced by KeepOther. Defaults to DefaultOtherLabel.
func OtherLabel(label string) CategoricalOption {
	return func(conf *categoricalConf) {
		conf.otherLabel = label
	}
}

// OrderGroupsByAggregate orders the groups of a grouped Table by their total aggregate before
// concatenating their levels, rather than keeping the upstream group order
func OrderGroupsByAggregate() CategoricalOption {
	return func(conf *categoricalConf) {
		conf.orderGroups = true
	}
}

func (conf *categoricalConf) validate() error {
	if conf.topNSet && conf.topN <= 0 {
		return errors.InvalidArgumentError{Argument: "top_n", Reason: fmt.Sprintf("must be positive, was %d", conf.topN)}
	}
	if conf.aggregator == nil {
		return errors.InvalidArgumentError{Argument: "aggregator", Reason: "must not be nil"}
	}
	if conf.keepOther && len(conf.otherLabel) == 0 {
		return errors.InvalidArgumentError{Argument: "other_label", Reason: "must not be empty"}
	}
	return nil
}

// levelAggregate pairs a level with the aggregate of its values
type levelAggregate struct {
	level     string
	aggregate float64
}

// groupLevels is the ordering computed for a single group
type groupLevels struct {
	group     *group.Group
	retained  []string
	excluded  map[string]bool
	aggregate float64
}

// SetCategorical converts a column to a categorical whose levels are ordered by an aggregate of a value
// column (see OrderBy), or lexicographically. Levels may be truncated to the top N (see TopN), with the
// remaining rows either voided or coalesced into a single trailing level (see KeepOther). On a grouped
// Table, aggregate-ordered levels are ordered within each group and the per-group orders are concatenated
// in group order, while lexicographic levels are sorted across the whole Table.
// Row count, row order and all other columns are preserved.
func SetCategorical(categoryCol string, opts ...CategoricalOption) tidy.TableOperation {
	conf := &categoricalConf{
		aggregator: accumulators.SumAggregator,
		otherLabel: DefaultOtherLabel,
	}
	for _, opt := range opts {
		opt(conf)
	}
	return func(t tidy.Table) (tidy.Table, error) {
		if err := conf.validate(); err != nil {
			return nil, err
		}
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		catSeries, err := ct.Column(categoryCol)
		if err != nil {
			return nil, err
		}
		var values tidy.Series
		if len(conf.valueCol) > 0 {
			if values, err = ct.Column(conf.valueCol); err != nil {
				return nil, err
			}
		}
		labels := labelsOf(catSeries)
		bucket := conf.keepOther && isOtherBucket(catSeries, conf.otherLabel)
		groups, err := group.Of(ct)
		if err != nil {
			return nil, err
		}

		orders := make([]*groupLevels, len(groups))
		for i, g := range groups {
			orders[i], err = orderGroupLevels(labels, values, g, conf, ct.IsGrouped(), bucket)
			if err != nil {
				return nil, err
			}
		}

		newLabels, coalesced := voidOrCoalesce(labels, orders, conf)
		if bucket && !coalesced {
			coalesced = containsLabel(newLabels, conf.otherLabel)
		}
		if values != nil && conf.orderGroups && len(orders) > 1 {
			if err := aggregateGroups(newLabels, values, orders, conf); err != nil {
				return nil, err
			}
			sort.SliceStable(orders, func(i, j int) bool {
				return aggregateLess(orders[i].aggregate, orders[j].aggregate, conf.reverse)
			})
		}

		levels := []string{}
		seen := make(map[string]bool)
		for _, o := range orders {
			for _, l := range o.retained {
				if !seen[l] {
					seen[l] = true
					levels = append(levels, l)
				}
			}
		}
		if values == nil {
			sort.Strings(levels)
			if conf.reverse {
				slices.Reverse(levels)
			}
		}
		if coalesced {
			levels = append(levels, conf.otherLabel)
		}
		log.WithFields(log.Fields{
			"column": categoryCol,
			"levels": len(levels),
			"groups": len(groups),
		}).Debug("ordered categorical levels")
		return convertToCategorical(ct, categoryCol, levels, newLabels)
	}
}

// labelsOf returns the values of a column as labels, nil where missing. Categorical columns are recast to their labels.
func labelsOf(s tidy.Series) []interface{} {
	labels := make([]interface{}, s.Len())
	for i := range labels {
		if s.IsNil(i) {
			continue
		}
		v := s.Get(i)
		if str, ok := v.(string); ok {
			labels[i] = str
		} else {
			labels[i] = s.Type().ToString(v)
		}
	}
	return labels
}

// isOtherBucket reports whether s is a categorical Series whose last level is the coalesced other label
func isOtherBucket(s tidy.Series, otherLabel string) bool {
	cs, ok := s.(tidy.CategoricalSeries)
	if !ok {
		return false
	}
	levels := cs.Levels()
	return len(levels) > 0 && levels[len(levels)-1] == otherLabel
}

func containsLabel(labels []interface{}, label string) bool {
	for _, l := range labels {
		if l != nil && l.(string) == label {
			return true
		}
	}
	return false
}

// orderGroupLevels computes the ordered, truncated levels of a single group.
// Rows in an existing other bucket take no part in ranking and keep their label.
func orderGroupLevels(labels []interface{}, values tidy.Series, g *group.Group, conf *categoricalConf, grouped bool, bucket bool) (*groupLevels, error) {
	// distinct levels, in order of first occurrence
	distinct := []string{}
	rowsOf := make(map[string][]int)
	for _, r := range g.Rows {
		if labels[r] == nil {
			continue
		}
		l := labels[r].(string)
		if bucket && l == conf.otherLabel {
			continue
		}
		if _, ok := rowsOf[l]; !ok {
			distinct = append(distinct, l)
		}
		rowsOf[l] = append(rowsOf[l], r)
	}

	var ordered []string
	if values == nil {
		ordered = slices.Clone(distinct)
		sort.Strings(ordered)
		if conf.reverse {
			slices.Reverse(ordered)
		}
	} else {
		aggs, err := groupByAggregate(distinct, rowsOf, values, g, conf, grouped)
		if err != nil {
			return nil, err
		}
		ordered = sortLevels(aggs, conf.reverse)
	}

	result := &groupLevels{group: g, retained: ordered, excluded: map[string]bool{}}
	if conf.topNSet && conf.topN < len(ordered) {
		result.retained = ordered[:conf.topN]
		for _, l := range ordered[conf.topN:] {
			result.excluded[l] = true
		}
	}
	if conf.topNSet && conf.keepOther && slices.Contains(result.retained, conf.otherLabel) {
		return nil, errors.InvalidArgumentError{
			Argument: "other_label",
			Reason:   fmt.Sprintf("%q collides with a retained level", conf.otherLabel),
		}
	}
	return result, nil
}

// groupByAggregate applies the configured Aggregator to the values of each level
func groupByAggregate(levels []string, rowsOf map[string][]int, values tidy.Series, g *group.Group, conf *categoricalConf, grouped bool) ([]levelAggregate, error) {
	agg := iutil.SafeAggregator(conf.aggregator)
	result := make([]levelAggregate, len(levels))
	for i, l := range levels {
		res, err := agg(values.Take(rowsOf[l]))
		if err == nil {
			result[i].aggregate, err = toAggregate(res)
		}
		if err != nil {
			aggErr := errors.AggregationError{Column: conf.valueCol, Level: l, Err: err}
			if grouped {
				aggErr.Group = g.String()
			}
			return nil, aggErr
		}
		result[i].level = l
	}
	return result, nil
}

// toAggregate converts an Aggregator result to a float64. nil is treated as NaN.
func toAggregate(res interface{}) (float64, error) {
	if res == nil {
		return math.NaN(), nil
	}
	f, ok := tidy.ToFloat64(res)
	if !ok {
		return 0, fmt.Errorf("aggregator returned non-scalar value of type %T", res)
	}
	return f, nil
}

// sortLevels orders levels by aggregate, descending (ascending if requested). Ties keep their incoming order, NaNs sort last.
func sortLevels(aggs []levelAggregate, ascending bool) []string {
	sorted := slices.Clone(aggs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return aggregateLess(sorted[i].aggregate, sorted[j].aggregate, ascending)
	})
	levels := make([]string, len(sorted))
	for i, la := range sorted {
		levels[i] = la.level
	}
	return levels
}

// aggregateLess orders aggregates descending, or ascending if requested, with NaN last either way
func aggregateLess(a, b float64, ascending bool) bool {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	if an || bn {
		return !an && bn
	}
	if ascending {
		return a < b
	}
	return a > b
}

// voidOrCoalesce relabels the rows whose level was excluded from their group's retained levels.
// It reports whether any row was coalesced into the other label.
func voidOrCoalesce(labels []interface{}, orders []*groupLevels, conf *categoricalConf) ([]interface{}, bool) {
	newLabels := make([]interface{}, len(labels))
	copy(newLabels, labels)
	coalesced := false
	for _, o := range orders {
		if len(o.excluded) == 0 {
			continue
		}
		for _, r := range o.group.Rows {
			if labels[r] == nil || !o.excluded[labels[r].(string)] {
				continue
			}
			if conf.keepOther {
				newLabels[r] = conf.otherLabel
				coalesced = true
			} else {
				newLabels[r] = nil
			}
		}
	}
	return newLabels, coalesced
}

// aggregateGroups computes each group's total aggregate over the rows which keep a label
func aggregateGroups(labels []interface{}, values tidy.Series, orders []*groupLevels, conf *categoricalConf) error {
	agg := iutil.SafeAggregator(conf.aggregator)
	for _, o := range orders {
		rows := make([]int, 0, len(o.group.Rows))
		for _, r := range o.group.Rows {
			if labels[r] != nil {
				rows = append(rows, r)
			}
		}
		res, err := agg(values.Take(rows))
		if err == nil {
			o.aggregate, err = toAggregate(res)
		}
		if err != nil {
			return errors.AggregationError{Column: conf.valueCol, Group: o.group.String(), Err: err}
		}
	}
	return nil
}

// convertToCategorical replaces a column with a categorical encoding of labels against ordered levels
func convertToCategorical(t *table.Table, colName string, levels []string, labels []interface{}) (tidy.Table, error) {
	s, err := table.NewCategoricalSeriesFromLabels(levels, labels)
	if err != nil {
		return nil, err
	}
	return asTable(t.WithColumn(colName, s))
}
