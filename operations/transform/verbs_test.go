package transform

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/accumulators"
	"github.com/go-sif/tidy/datasource/memory"
	terrors "github.com/go-sif/tidy/errors"
	"github.com/stretchr/testify/require"
)

func selectionTable(t *testing.T) tidy.Table {
	return createTable(t,
		memory.Strings("group", "a", "a", "a", "b", "b", "c"),
		memory.Ints("value1", 1, 2, 3, 4, 5, 7),
		memory.Ints("value2", 7, 5, 3, 1, -1, -3),
		memory.Ints("walue3", 2, 4, 6, 8, 10, 12),
	)
}

func unusedLevelsTable(t *testing.T) tidy.Table {
	levels := []string{"a", "b", "c", "unused"}
	return createTable(t,
		memory.Categories("group1", levels, "a", "a", "a", "b", "b", "c"),
		memory.Categories("group2", levels, "a", "a", "a", "b", "b", "c"),
		memory.Categories("group3", levels, "a", "a", "a", "b", "b", "c"),
		memory.Ints("value", 1, 2, 3, 4, 5, 7),
	)
}

func TestDropUnusedLevels(t *testing.T) {
	res, err := unusedLevelsTable(t).To(DropUnusedLevels())
	require.Nil(t, err)
	for _, col := range []string{"group1", "group2", "group3"} {
		require.Equal(t, []string{"a", "b", "c"}, levelsOf(t, res, col))
		require.Equal(t, []interface{}{"a", "a", "a", "b", "b", "c"}, valuesOf(t, res, col))
	}

	res, err = unusedLevelsTable(t).To(DropUnusedLevels("group2", "group3", "value"))
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b", "c", "unused"}, levelsOf(t, res, "group1"))
	require.Equal(t, []string{"a", "b", "c"}, levelsOf(t, res, "group2"))
	require.Equal(t, []string{"a", "b", "c"}, levelsOf(t, res, "group3"))

	twice, err := res.To(DropUnusedLevels())
	require.Nil(t, err)
	require.Nil(t, res.Schema().Equals(twice.Schema()))

	_, err = unusedLevelsTable(t).To(DropUnusedLevels("group4"))
	var notFound terrors.ColumnNotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestReverseCategories(t *testing.T) {
	in := unusedLevelsTable(t)
	res, err := in.To(ReverseCategories("group2"))
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b", "c", "unused"}, levelsOf(t, res, "group1"))
	require.Equal(t, []string{"unused", "c", "b", "a"}, levelsOf(t, res, "group2"))
	require.Equal(t, []interface{}{"a", "a", "a", "b", "b", "c"}, valuesOf(t, res, "group2"))

	twice, err := in.To(ReverseCategories(), ReverseCategories())
	require.Nil(t, err)
	require.Nil(t, in.Schema().Equals(twice.Schema()))
}

func TestSelectColumns(t *testing.T) {
	cases := []struct {
		patterns []string
		expected []string
	}{
		{[]string{"value2"}, []string{"value2"}},
		{[]string{"value2", "group"}, []string{"group", "value2"}},
		{[]string{"v.*"}, []string{"value1", "value2"}},
		{[]string{"g.*", ".*3"}, []string{"group", "walue3"}},
		{[]string{"v.*", ".*2"}, []string{"value1", "value2"}},
		{[]string{"value"}, []string{}},
	}
	for _, c := range cases {
		res, err := selectionTable(t).To(SelectColumns(c.patterns...))
		require.Nil(t, err)
		require.Equal(t, c.expected, res.Schema().ColumnNames(), "patterns %v", c.patterns)
		require.Equal(t, 6, res.NumRows())
	}

	res, err := selectionTable(t).To(SelectColumnsFold("V.*"))
	require.Nil(t, err)
	require.Equal(t, []string{"value1", "value2"}, res.Schema().ColumnNames())

	_, err = selectionTable(t).To(SelectColumns("("))
	var argErr terrors.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
}

func int64Mask(t tidy.Table, col string, fn func(v int64, all []int64) bool) ([]bool, error) {
	s, err := t.Column(col)
	if err != nil {
		return nil, err
	}
	all := make([]int64, s.Len())
	for i := range all {
		all[i] = s.Get(i).(int64)
	}
	mask := make([]bool, len(all))
	for i, v := range all {
		mask[i] = fn(v, all)
	}
	return mask, nil
}

func atMostMean(t tidy.Table) ([]bool, error) {
	return int64Mask(t, "value1", func(v int64, all []int64) bool {
		sum := int64(0)
		for _, a := range all {
			sum += a
		}
		return float64(v) <= float64(sum)/float64(len(all))
	})
}

func TestSelectRows(t *testing.T) {
	res, err := selectionTable(t).To(SelectRows(func(t tidy.Table) ([]bool, error) {
		return int64Mask(t, "value1", func(v int64, _ []int64) bool { return v >= 4 })
	}))
	require.Nil(t, err)
	require.Equal(t, []interface{}{"b", "b", "c"}, valuesOf(t, res, "group"))
	require.Equal(t, []interface{}{int64(8), int64(10), int64(12)}, valuesOf(t, res, "walue3"))

	res, err = selectionTable(t).To(SelectRows(atMostMean))
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, valuesOf(t, res, "value1"))
}

func TestGroupedSelectRows(t *testing.T) {
	res, err := selectionTable(t).To(GroupBy("group"), SelectRows(atMostMean))
	require.Nil(t, err)
	require.Equal(t, []interface{}{"a", "a", "b", "c"}, valuesOf(t, res, "group"))
	require.Equal(t, []interface{}{int64(1), int64(2), int64(4), int64(7)}, valuesOf(t, res, "value1"))
	require.Equal(t, []string{"group"}, res.Grouping())
}

func TestSelectRowsWrongLength(t *testing.T) {
	_, err := selectionTable(t).To(SelectRows(func(t tidy.Table) ([]bool, error) {
		return []bool{true}, nil
	}))
	require.NotNil(t, err)
}

func TestFilter(t *testing.T) {
	res, err := selectionTable(t).To(Filter(func(row tidy.Row) (bool, error) {
		v1, err := row.GetInt64("value1")
		if err != nil {
			return false, err
		}
		v2, err := row.GetInt64("value2")
		return v1 < v2, err
	}))
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(1), int64(2)}, valuesOf(t, res, "value1"))

	_, err = selectionTable(t).To(Filter(func(row tidy.Row) (bool, error) {
		_, err := row.GetInt64("nope")
		return false, err
	}))
	var notFound terrors.ColumnNotFoundError
	require.True(t, errors.As(err, &notFound))
}

func shareOfValue(t tidy.Table) ([]interface{}, error) {
	s, err := t.Column("value")
	if err != nil {
		return nil, err
	}
	sum, err := accumulators.SumAggregator(s)
	if err != nil {
		return nil, err
	}
	result := make([]interface{}, s.Len())
	for i := range result {
		result[i] = float64(s.Get(i).(int64)) / sum.(float64)
	}
	return result, nil
}

func assignTable(t *testing.T) tidy.Table {
	return createTable(t,
		memory.Strings("group1", "a", "a", "a", "b", "b", "c"),
		memory.Ints("group2", 1, 1, 2, 2, 2, 2),
		memory.Ints("value", 1, 2, 3, 4, 5, 7),
	)
}

func TestGroupedAssign(t *testing.T) {
	res, err := assignTable(t).To(GroupBy("group1"), Assign("centered", &tidy.Float64ColumnType{}, shareOfValue))
	require.Nil(t, err)
	require.Equal(t, []string{"group1", "group2", "value", "centered"}, res.Schema().ColumnNames())
	require.Equal(t, []interface{}{1.0 / 6, 2.0 / 6, 3.0 / 6, 4.0 / 9, 5.0 / 9, 1.0}, valuesOf(t, res, "centered"))

	res, err = assignTable(t).To(GroupBy("group1", "group2"), Assign("centered", &tidy.Float64ColumnType{}, shareOfValue))
	require.Nil(t, err)
	require.Equal(t, []interface{}{1.0 / 3, 2.0 / 3, 1.0, 4.0 / 9, 5.0 / 9, 1.0}, valuesOf(t, res, "centered"))
}

func TestGroupedAssignScattersToRowPositions(t *testing.T) {
	in := createTable(t,
		memory.Strings("g", "x", "y", "x", "y"),
		memory.Ints("value", 1, 10, 3, 30),
	)
	res, err := in.To(GroupBy("g"), Assign("share", &tidy.Float64ColumnType{}, shareOfValue))
	require.Nil(t, err)
	require.Equal(t, []interface{}{0.25, 0.25, 0.75, 0.75}, valuesOf(t, res, "share"))
}

func TestRenameAndRemoveColumns(t *testing.T) {
	res, err := assignTable(t).To(GroupBy("group1"), RenameColumn("group1", "letter"), RemoveColumns("group2"))
	require.Nil(t, err)
	require.Equal(t, []string{"letter", "value"}, res.Schema().ColumnNames())
	require.Equal(t, []string{"letter"}, res.Grouping())

	_, err = assignTable(t).To(RenameColumn("group1", "value"))
	var dup terrors.DuplicateColumnError
	require.True(t, errors.As(err, &dup))
}

func TestFlattenColumns(t *testing.T) {
	in := createTable(t,
		memory.Ints(tidy.MultiLevelName("col1_level1", "col1_level2"), 1, 2, 3),
		memory.Ints(tidy.MultiLevelName("col2_level1", "col2_level2", "col2_level3"), 1, 2, 3),
		memory.Ints("plain", 1, 2, 3),
	)
	res, err := in.To(FlattenColumns("_"))
	require.Nil(t, err)
	require.Equal(t, []string{"col1_level1_col1_level2", "col2_level1_col2_level2_col2_level3", "plain"}, res.Schema().ColumnNames())
	require.Equal(t, valuesOf(t, in, "plain"), valuesOf(t, res, "plain"))

	res, err = in.To(FlattenColumns("."))
	require.Nil(t, err)
	require.Equal(t, "col1_level1.col1_level2", res.Schema().ColumnNames()[0])

	trimmed := createTable(t, memory.Ints(tidy.MultiLevelName("count", ""), 1))
	res, err = trimmed.To(FlattenColumns("_"))
	require.Nil(t, err)
	require.Equal(t, []string{"count"}, res.Schema().ColumnNames())

	once, err := in.To(FlattenColumns("_"))
	require.Nil(t, err)
	twice, err := once.To(FlattenColumns("_"))
	require.Nil(t, err)
	require.Equal(t, once.Schema().ColumnNames(), twice.Schema().ColumnNames())
	require.Equal(t, once.ID(), twice.ID())
}

func TestToDate(t *testing.T) {
	in := createTable(t,
		memory.Strings("date1", "2022-08-08", "2022-08-09 04:04"),
		memory.Strings("date2", "2022-08-08", "2022-08-09 04:04"),
	)
	res, err := in.To(ToDate([]string{"date1"}, ""))
	require.Nil(t, err)
	require.Equal(t, []interface{}{
		time.Date(2022, 8, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 8, 9, 4, 4, 0, 0, time.UTC),
	}, valuesOf(t, res, "date1"))
	require.Equal(t, valuesOf(t, in, "date2"), valuesOf(t, res, "date2"))

	formatted := createTable(t, memory.Strings("date_col", "18 (Sep) 2022", "19 (Sep) 2022", nil))
	res, err = formatted.To(ToDate([]string{"date_col"}, "02 (Jan) 2006"))
	require.Nil(t, err)
	require.Equal(t, []interface{}{
		time.Date(2022, 9, 18, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 9, 19, 0, 0, 0, 0, time.UTC),
		nil,
	}, valuesOf(t, res, "date_col"))

	_, err = formatted.To(ToDate([]string{"date_col"}, ""))
	require.NotNil(t, err)
}

func TestAggregate(t *testing.T) {
	res, err := assignTable(t).To(GroupBy("group1"), Aggregate(Aggregation{Column: "value", Aggregator: accumulators.SumAggregator}))
	require.Nil(t, err)
	require.Equal(t, []string{"group1", "value"}, res.Schema().ColumnNames())
	require.Equal(t, []interface{}{"a", "b", "c"}, valuesOf(t, res, "group1"))
	require.Equal(t, []interface{}{6.0, 9.0, 7.0}, valuesOf(t, res, "value"))
	require.False(t, res.IsGrouped())
}

func TestAggregateLabelledAndFlattened(t *testing.T) {
	res, err := assignTable(t).To(
		GroupBy("group1"),
		Aggregate(
			Aggregation{Column: "value", Label: "sum", Aggregator: accumulators.SumAggregator},
			Aggregation{Column: "value", Label: "count", Aggregator: accumulators.CountAggregator},
		),
		FlattenColumns("_"),
	)
	require.Nil(t, err)
	require.Equal(t, []string{"group1", "value_sum", "value_count"}, res.Schema().ColumnNames())
	require.Equal(t, []interface{}{int64(3), int64(2), int64(1)}, valuesOf(t, res, "value_count"))
}

func TestAggregateUngroupedAndCategoricalKeys(t *testing.T) {
	res, err := assignTable(t).To(Aggregate(Aggregation{Column: "value", Aggregator: accumulators.MaxAggregator}))
	require.Nil(t, err)
	require.Equal(t, 1, res.NumRows())
	require.Equal(t, []interface{}{7.0}, valuesOf(t, res, "value"))

	res, err = assignTable(t).To(
		SetCategorical("group1", OrderBy("value")),
		GroupBy("group1"),
		Aggregate(Aggregation{Column: "value", Aggregator: accumulators.SumAggregator}),
	)
	require.Nil(t, err)
	require.Equal(t, []interface{}{"b", "c", "a"}, valuesOf(t, res, "group1"))
	require.Equal(t, []string{"b", "c", "a"}, levelsOf(t, res, "group1"))
}

func TestPivotLongerAndWider(t *testing.T) {
	wide := createTable(t,
		memory.Strings("country", "France", "Japan"),
		memory.Ints("y2020", 10, 30),
		memory.Ints("y2021", 20, nil),
	)
	long, err := wide.To(PivotLonger([]string{"y2021", "y2020"}, "year", "population"))
	require.Nil(t, err)
	require.Equal(t, []string{"country", "year", "population"}, long.Schema().ColumnNames())
	require.Equal(t, []interface{}{"France", "Japan", "France", "Japan"}, valuesOf(t, long, "country"))
	require.Equal(t, []interface{}{"y2021", "y2021", "y2020", "y2020"}, valuesOf(t, long, "year"))
	require.Equal(t, []string{"y2021", "y2020"}, levelsOf(t, long, "year"))
	require.Equal(t, []interface{}{int64(20), nil, int64(10), int64(30)}, valuesOf(t, long, "population"))

	back, err := long.To(PivotWider("year", "population"))
	require.Nil(t, err)
	require.Equal(t, []string{"country", "y2021", "y2020"}, back.Schema().ColumnNames())
	require.Equal(t, []interface{}{"France", "Japan"}, valuesOf(t, back, "country"))
	require.Equal(t, []interface{}{int64(20), nil}, valuesOf(t, back, "y2021"))
	require.Equal(t, []interface{}{int64(10), int64(30)}, valuesOf(t, back, "y2020"))
}

func TestPivotLongerMixedTypes(t *testing.T) {
	in := createTable(t,
		memory.Ints("a", 1),
		memory.Floats("b", 2.5),
		memory.Strings("c", "x"),
	)
	res, err := in.To(PivotLonger([]string{"a", "b"}, "name", "value"))
	require.Nil(t, err)
	require.Equal(t, []interface{}{1.0, 2.5}, valuesOf(t, res, "value"))

	_, err = in.To(PivotLonger([]string{"a", "c"}, "name", "value"))
	var typeErr terrors.IncompatibleTypeError
	require.True(t, errors.As(err, &typeErr))
}

func TestPivotWiderMultipleValues(t *testing.T) {
	long := createTable(t,
		memory.Strings("id", "b", "a", "a", "b"),
		memory.Strings("key", "x", "x", "y", "y"),
		memory.Ints("v", 1, 2, 3, 4),
		memory.Ints("w", 5, 6, 7, 8),
	)
	res, err := long.To(PivotWider("key", "v", "w"))
	require.Nil(t, err)
	require.Equal(t, []string{
		"id",
		tidy.MultiLevelName("v", "x"), tidy.MultiLevelName("v", "y"),
		tidy.MultiLevelName("w", "x"), tidy.MultiLevelName("w", "y"),
	}, res.Schema().ColumnNames())
	require.Equal(t, []interface{}{"a", "b"}, valuesOf(t, res, "id"))
	require.Equal(t, []interface{}{int64(2), int64(1)}, valuesOf(t, res, tidy.MultiLevelName("v", "x")))
	require.Equal(t, []interface{}{int64(7), int64(8)}, valuesOf(t, res, tidy.MultiLevelName("w", "y")))

	dup := createTable(t,
		memory.Strings("id", "a", "a"),
		memory.Strings("key", "x", "x"),
		memory.Ints("v", 1, 2),
	)
	_, err = dup.To(PivotWider("key", "v"))
	var argErr terrors.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
}

func joinTables(t *testing.T) (tidy.Table, tidy.Table) {
	left := createTable(t,
		memory.Strings("key", "a", "b", "c", nil),
		memory.Ints("value", 1, 2, 3, 4),
	)
	right := createTable(t,
		memory.Strings("key", "b", "c", "c", "d"),
		memory.Floats("value", 20, 30, 31, 40),
		memory.Strings("note", "x", "y", "z", "w"),
	)
	return left, right
}

func TestJoin(t *testing.T) {
	left, right := joinTables(t)

	res, err := left.To(Join(right, InnerJoin, "key"))
	require.Nil(t, err)
	require.Equal(t, []string{"key", "value_x", "value_y", "note"}, res.Schema().ColumnNames())
	require.Equal(t, []interface{}{"b", "c", "c"}, valuesOf(t, res, "key"))
	require.Equal(t, []interface{}{int64(2), int64(3), int64(3)}, valuesOf(t, res, "value_x"))
	require.Equal(t, []interface{}{20.0, 30.0, 31.0}, valuesOf(t, res, "value_y"))

	res, err = left.To(Join(right, LeftJoin, "key"))
	require.Nil(t, err)
	require.Equal(t, []interface{}{"a", "b", "c", "c", nil}, valuesOf(t, res, "key"))
	require.Equal(t, []interface{}{nil, "x", "y", "z", nil}, valuesOf(t, res, "note"))

	res, err = left.To(Join(right, RightJoin, "key"))
	require.Nil(t, err)
	require.Equal(t, []interface{}{"b", "c", "c", "d"}, valuesOf(t, res, "key"))
	require.Equal(t, []interface{}{int64(2), int64(3), int64(3), nil}, valuesOf(t, res, "value_x"))

	res, err = left.To(Join(right, OuterJoin, "key"))
	require.Nil(t, err)
	require.Equal(t, []interface{}{"a", "b", "c", "c", nil, "d"}, valuesOf(t, res, "key"))
	require.Equal(t, []interface{}{nil, 20.0, 30.0, 31.0, nil, 40.0}, valuesOf(t, res, "value_y"))
}

func TestJoinCategoricalKeys(t *testing.T) {
	left, right := joinTables(t)
	res, err := left.To(SetCategorical("key", OrderBy("value"), Reverse()), Join(right, OuterJoin, "key"))
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b", "c", "d"}, levelsOf(t, res, "key"))

	_, err = left.To(Join(right, InnerJoin, "missing"))
	var notFound terrors.ColumnNotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestJoinLargeIntegerKeys(t *testing.T) {
	left := createTable(t,
		memory.Ints("id", int64(1)<<53, int64(1)<<53+1),
		memory.Strings("name", "even", "odd"),
	)
	right := createTable(t,
		memory.Ints("id", int64(1)<<53+1),
		memory.Floats("score", 0.5),
	)
	res, err := left.To(Join(right, InnerJoin, "id"))
	require.Nil(t, err)
	require.Equal(t, []interface{}{"odd"}, valuesOf(t, res, "name"))

	ints := createTable(t, memory.Ints("id", 1, 2))
	floats := createTable(t,
		memory.Floats("id", 2.0, 2.5),
		memory.Strings("tag", "x", "y"),
	)
	res, err = ints.To(Join(floats, LeftJoin, "id"))
	require.Nil(t, err)
	require.Equal(t, []interface{}{nil, "x"}, valuesOf(t, res, "tag"))
}

func sampleTable(t *testing.T) tidy.Table {
	return createTable(t,
		memory.Strings("l1", "a", "a", "a", "a", "b", "b", "b"),
		memory.Strings("l2", "c", "c", "d", "d", "c", "c", "d"),
		memory.Ints("value", 0, 1, 2, 3, 4, 5, 6),
	)
}

func TestEquisample(t *testing.T) {
	res, err := sampleTable(t).To(Equisample(0, 20220106, "l1"))
	require.Nil(t, err)
	require.Equal(t, 6, res.NumRows())
	require.Equal(t, []interface{}{"a", "a", "a", "b", "b", "b"}, valuesOf(t, res, "l1"))
	seen := make(map[interface{}]bool)
	for _, v := range valuesOf(t, res, "value") {
		require.False(t, seen[v], "value %v sampled twice", v)
		seen[v] = true
	}

	again, err := sampleTable(t).To(Equisample(0, 20220106, "l1"))
	require.Nil(t, err)
	require.Equal(t, valuesOf(t, res, "value"), valuesOf(t, again, "value"))

	res, err = sampleTable(t).To(Equisample(2, 20220106, "l1"))
	require.Nil(t, err)
	require.Equal(t, []interface{}{"a", "a", "b", "b"}, valuesOf(t, res, "l1"))

	res, err = sampleTable(t).To(GroupBy("l1", "l2"), Equisample(0, 20220106))
	require.Nil(t, err)
	require.Equal(t, []interface{}{"a", "a", "b", "b"}, valuesOf(t, res, "l1"))
	require.Equal(t, []interface{}{"c", "d", "c", "d"}, valuesOf(t, res, "l2"))
	require.Equal(t, []interface{}{int64(6)}, valuesOf(t, res, "value")[3:])
}

func TestEquisampleReusedAcrossGroupings(t *testing.T) {
	in := createTable(t,
		memory.Strings("g", "a", "a", "b"),
		memory.Strings("h", "p", "q", "q"),
	)
	op := Equisample(1, 7)
	res, err := in.To(GroupBy("g"), op)
	require.Nil(t, err)
	require.Equal(t, []interface{}{"a", "b"}, valuesOf(t, res, "g"))

	res, err = in.To(GroupBy("h"), op)
	require.Nil(t, err)
	require.Equal(t, []interface{}{"p", "q"}, valuesOf(t, res, "h"))
}

func TestEquisampleErrors(t *testing.T) {
	var argErr terrors.InvalidArgumentError
	_, err := sampleTable(t).To(Equisample(4, 1, "l1"))
	require.True(t, errors.As(err, &argErr))
	_, err = sampleTable(t).To(Equisample(1, 1))
	require.True(t, errors.As(err, &argErr))

	res, err := sampleTable(t).To(EquisampleWithReplacement(5, 1, "l1"))
	require.Nil(t, err)
	require.Equal(t, 10, res.NumRows())
}

func TestArrange(t *testing.T) {
	in := createTable(t,
		memory.Strings("fruit", "apple", "banana", "cherry", "banana", nil),
		memory.Floats("qty", 3, math.NaN(), 1, 2, 5),
	)
	res, err := in.To(Arrange(Asc("qty")))
	require.Nil(t, err)
	require.Equal(t, []interface{}{"cherry", "banana", "apple", nil, "banana"}, valuesOf(t, res, "fruit"))

	res, err = in.To(Arrange(Desc("qty")))
	require.Nil(t, err)
	require.Equal(t, []interface{}{nil, "apple", "banana", "cherry", "banana"}, valuesOf(t, res, "fruit"))

	res, err = in.To(SetCategorical("fruit", Reverse()), Arrange(Asc("fruit"), Desc("qty")))
	require.Nil(t, err)
	require.Equal(t, []interface{}{"cherry", "banana", "banana", "apple", nil}, valuesOf(t, res, "fruit"))
	require.Equal(t, 2.0, valuesOf(t, res, "qty")[1])
}
