package transform

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/accumulators"
	"github.com/go-sif/tidy/datasource/memory"
	terrors "github.com/go-sif/tidy/errors"
	"github.com/stretchr/testify/require"
)

func fruitTable(t *testing.T) tidy.Table {
	return createTable(t,
		memory.Strings("fruit", "apple", "apple", "banana", "cherry", "cherry", "cherry"),
		memory.Ints("qty", 1, 2, 5, 1, 1, 1),
	)
}

func letterTable(t *testing.T, values ...interface{}) tidy.Table {
	return createTable(t,
		memory.Strings("group", "a", "a", "a", "b", "b", "c"),
		memory.Ints("value", values...),
	)
}

func TestSetCategoricalTiesKeepFirstOccurrence(t *testing.T) {
	res, err := fruitTable(t).To(SetCategorical("fruit", OrderBy("qty")))
	require.Nil(t, err)
	require.Equal(t, []string{"banana", "apple", "cherry"}, levelsOf(t, res, "fruit"))
	require.Equal(t, []interface{}{"apple", "apple", "banana", "cherry", "cherry", "cherry"}, valuesOf(t, res, "fruit"))
}

func TestSetCategoricalTopNKeepOther(t *testing.T) {
	res, err := fruitTable(t).To(SetCategorical("fruit", OrderBy("qty"), TopN(2), KeepOther()))
	require.Nil(t, err)
	require.Equal(t, []string{"banana", "apple", "_other"}, levelsOf(t, res, "fruit"))
	require.Equal(t, []interface{}{"apple", "apple", "banana", "_other", "_other", "_other"}, valuesOf(t, res, "fruit"))
	require.Equal(t, []interface{}{int64(1), int64(2), int64(5), int64(1), int64(1), int64(1)}, valuesOf(t, res, "qty"))
}

func TestSetCategoricalLexicographic(t *testing.T) {
	res, err := letterTable(t, 1, 2, 3, 4, 5, 7).To(SetCategorical("group"))
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b", "c"}, levelsOf(t, res, "group"))

	res, err = letterTable(t, 1, 2, 3, 4, 5, 7).To(SetCategorical("group", Reverse()))
	require.Nil(t, err)
	require.Equal(t, []string{"c", "b", "a"}, levelsOf(t, res, "group"))
}

func TestSetCategoricalDefaultAggregation(t *testing.T) {
	res, err := letterTable(t, 1, 2, 3, 4, 5, 7).To(SetCategorical("group", OrderBy("value")))
	require.Nil(t, err)
	require.Equal(t, []string{"b", "c", "a"}, levelsOf(t, res, "group"))

	res, err = letterTable(t, 1, 2, 3, 4, 5, 7).To(SetCategorical("group", OrderBy("value"), AggregateWith(accumulators.SumAggregator)))
	require.Nil(t, err)
	require.Equal(t, []string{"b", "c", "a"}, levelsOf(t, res, "group"))
}

func TestSetCategoricalReverse(t *testing.T) {
	res, err := letterTable(t, 1, 2, 3, 4, 5, 7).To(SetCategorical("group", OrderBy("value"), Reverse()))
	require.Nil(t, err)
	require.Equal(t, []string{"a", "c", "b"}, levelsOf(t, res, "group"))
}

func TestSetCategoricalTopNVoidsExcludedRows(t *testing.T) {
	in := letterTable(t, 1, 2, 3, 4, 5, 7)
	res, err := in.To(SetCategorical("group", OrderBy("value"), TopN(2)))
	require.Nil(t, err)
	require.Equal(t, in.NumRows(), res.NumRows())
	require.Equal(t, []string{"b", "c"}, levelsOf(t, res, "group"))
	require.Equal(t, []interface{}{nil, nil, nil, "b", "b", "c"}, valuesOf(t, res, "group"))
	require.Equal(t, valuesOf(t, in, "value"), valuesOf(t, res, "value"))
}

func TestSetCategoricalTopNReverse(t *testing.T) {
	// reverse applies first, so the smallest levels are retained
	res, err := letterTable(t, 1, 2, 3, 4, 5, 7).To(SetCategorical("group", OrderBy("value"), TopN(2), Reverse(), KeepOther()))
	require.Nil(t, err)
	require.Equal(t, []string{"a", "c", "_other"}, levelsOf(t, res, "group"))
	require.Equal(t, []interface{}{"a", "a", "a", "_other", "_other", "c"}, valuesOf(t, res, "group"))
}

func TestSetCategoricalTopNLargerThanLevels(t *testing.T) {
	res, err := letterTable(t, 1, 2, 3, 4, 5, 7).To(SetCategorical("group", OrderBy("value"), TopN(10), KeepOther()))
	require.Nil(t, err)
	require.Equal(t, []string{"b", "c", "a"}, levelsOf(t, res, "group"))
}

func TestSetCategoricalMeanAggregator(t *testing.T) {
	res, err := letterTable(t, 1, 2, 3, 4, 5, 10).To(SetCategorical("group",
		OrderBy("value"),
		AggregateWith(accumulators.MeanAggregator),
		TopN(2),
		KeepOther(),
	))
	require.Nil(t, err)
	require.Equal(t, []string{"c", "b", "_other"}, levelsOf(t, res, "group"))
}

func TestSetCategoricalOtherLabel(t *testing.T) {
	res, err := letterTable(t, 1, 2, 3, 4, 5, 7).To(SetCategorical("group", OrderBy("value"), TopN(2), KeepOther(), OtherLabel("new_label")))
	require.Nil(t, err)
	require.Equal(t, []string{"b", "c", "new_label"}, levelsOf(t, res, "group"))
	require.Equal(t, []interface{}{"new_label", "new_label", "new_label", "b", "b", "c"}, valuesOf(t, res, "group"))
}

func TestSetCategoricalOtherLabelCollision(t *testing.T) {
	_, err := letterTable(t, 1, 2, 3, 4, 5, 7).To(SetCategorical("group", OrderBy("value"), TopN(2), KeepOther(), OtherLabel("b")))
	var argErr terrors.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	require.Equal(t, "other_label", argErr.Argument)
}

func TestSetCategoricalInvalidTopN(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := letterTable(t, 1, 2, 3, 4, 5, 7).To(SetCategorical("group", OrderBy("value"), TopN(n)))
		var argErr terrors.InvalidArgumentError
		require.True(t, errors.As(err, &argErr), "top_n %d", n)
		require.Equal(t, "top_n", argErr.Argument)
	}
}

func TestSetCategoricalMissingColumns(t *testing.T) {
	_, err := fruitTable(t).To(SetCategorical("fruits", OrderBy("qty")))
	var notFound terrors.ColumnNotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "fruit", notFound.Suggestion)

	_, err = fruitTable(t).To(SetCategorical("fruit", OrderBy("quantity")))
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "quantity", notFound.Name)
}

func TestSetCategoricalAggregatorFailures(t *testing.T) {
	nonScalar := func(values tidy.Series) (interface{}, error) {
		return []int{1}, nil
	}
	_, err := fruitTable(t).To(SetCategorical("fruit", OrderBy("qty"), AggregateWith(nonScalar)))
	var aggErr terrors.AggregationError
	require.True(t, errors.As(err, &aggErr))
	require.Equal(t, "qty", aggErr.Column)
	require.Equal(t, "apple", aggErr.Level)

	panicky := func(values tidy.Series) (interface{}, error) {
		panic(fmt.Errorf("boom"))
	}
	_, err = fruitTable(t).To(SetCategorical("fruit", OrderBy("qty"), AggregateWith(panicky)))
	require.True(t, errors.As(err, &aggErr))
	require.Contains(t, err.Error(), "boom")

	_, err = fruitTable(t).To(SetCategorical("qty", OrderBy("fruit")))
	require.True(t, errors.As(err, &aggErr))
}

func TestSetCategoricalNaNAggregatesSortLast(t *testing.T) {
	nilForApple := func(values tidy.Series) (interface{}, error) {
		if values.Len() == 2 {
			return nil, nil
		}
		return accumulators.SumAggregator(values)
	}
	res, err := fruitTable(t).To(SetCategorical("fruit", OrderBy("qty"), AggregateWith(nilForApple)))
	require.Nil(t, err)
	require.Equal(t, []string{"banana", "cherry", "apple"}, levelsOf(t, res, "fruit"))

	res, err = fruitTable(t).To(SetCategorical("fruit", OrderBy("qty"), AggregateWith(nilForApple), Reverse()))
	require.Nil(t, err)
	require.Equal(t, []string{"cherry", "banana", "apple"}, levelsOf(t, res, "fruit"))
}

func TestSetCategoricalMissingLabels(t *testing.T) {
	in := createTable(t,
		memory.Strings("fruit", "apple", nil, "banana", nil),
		memory.Ints("qty", 1, 100, 2, 3),
	)
	res, err := in.To(SetCategorical("fruit", OrderBy("qty")))
	require.Nil(t, err)
	require.Equal(t, []string{"banana", "apple"}, levelsOf(t, res, "fruit"))
	require.Equal(t, []interface{}{"apple", nil, "banana", nil}, valuesOf(t, res, "fruit"))
}

func TestSetCategoricalDoesNotMutateInput(t *testing.T) {
	in := fruitTable(t)
	res, err := in.To(SetCategorical("fruit", OrderBy("qty"), TopN(1)))
	require.Nil(t, err)
	require.NotEqual(t, in.ID(), res.ID())
	col, err := in.Schema().GetColumn("fruit")
	require.Nil(t, err)
	require.IsType(t, &tidy.StringColumnType{}, col.Type())
	require.Equal(t, []interface{}{"apple", "apple", "banana", "cherry", "cherry", "cherry"}, valuesOf(t, in, "fruit"))

	inQty, err := in.Column("qty")
	require.Nil(t, err)
	resQty, err := res.Column("qty")
	require.Nil(t, err)
	require.Same(t, inQty, resQty)
}

func TestSetCategoricalIdempotent(t *testing.T) {
	op := SetCategorical("fruit", OrderBy("qty"))
	once, err := fruitTable(t).To(op)
	require.Nil(t, err)
	twice, err := once.To(op)
	require.Nil(t, err)
	require.Equal(t, levelsOf(t, once, "fruit"), levelsOf(t, twice, "fruit"))
	require.Equal(t, valuesOf(t, once, "fruit"), valuesOf(t, twice, "fruit"))
}

func TestSetCategoricalIdempotentWithOther(t *testing.T) {
	op := SetCategorical("fruit", OrderBy("qty"), TopN(1), KeepOther())
	once, err := fruitTable(t).To(op)
	require.Nil(t, err)
	require.Equal(t, []string{"banana", "_other"}, levelsOf(t, once, "fruit"))
	twice, err := once.To(op)
	require.Nil(t, err)
	require.Equal(t, levelsOf(t, once, "fruit"), levelsOf(t, twice, "fruit"))
	require.Equal(t, valuesOf(t, once, "fruit"), valuesOf(t, twice, "fruit"))

	// a categorical whose other level is not last holds a genuine level
	genuine, err := fruitTable(t).To(SetCategorical("fruit", OrderBy("qty"), TopN(1), KeepOther(), OtherLabel("apple")))
	require.Nil(t, err)
	require.Equal(t, []string{"banana", "apple"}, levelsOf(t, genuine, "fruit"))
	_, err = genuine.To(SetCategorical("fruit", Reverse(), TopN(1), KeepOther(), OtherLabel("banana")))
	var argErr terrors.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	require.Equal(t, "other_label", argErr.Argument)
}

func TestSetCategoricalOnCategorical(t *testing.T) {
	res, err := populationTable(t).To(
		SetCategorical("country", OrderBy("population")),
		SetCategorical("country", OrderBy("population"), TopN(2)),
	)
	require.Nil(t, err)
	require.Equal(t, 9, res.NumRows())
	require.Equal(t, []string{"China", "India"}, levelsOf(t, res, "country"))
	require.Equal(t, []interface{}{nil, nil, nil, "China", "India", nil, nil, nil, nil}, valuesOf(t, res, "country"))
}

func TestGroupedSetCategorical(t *testing.T) {
	res, err := populationTable(t).To(
		GroupBy("continent"),
		SetCategorical("country", OrderBy("population")),
	)
	require.Nil(t, err)
	require.Equal(t, []string{"United States", "Brazil", "Mexico", "China", "India", "Indonesia", "Germany", "Turkey", "France"},
		levelsOf(t, res, "country"))
	require.Equal(t, []string{"continent"}, res.Grouping())
	require.Equal(t, valuesOf(t, populationTable(t), "country"), valuesOf(t, res, "country"))
}

func TestGroupedSetCategoricalOrderGroups(t *testing.T) {
	res, err := populationTable(t).To(
		GroupBy("continent"),
		SetCategorical("country", OrderBy("population"), OrderGroupsByAggregate()),
	)
	require.Nil(t, err)
	require.Equal(t, []string{"China", "India", "Indonesia", "United States", "Brazil", "Mexico", "Germany", "Turkey", "France"},
		levelsOf(t, res, "country"))
}

func TestGroupedSetCategoricalWithCategoricalGroups(t *testing.T) {
	res, err := populationTable(t).To(
		SetCategorical("continent"),
		GroupBy("continent"),
		SetCategorical("country", OrderBy("population"), OrderGroupsByAggregate()),
	)
	require.Nil(t, err)
	require.Equal(t, []string{"China", "India", "Indonesia", "United States", "Brazil", "Mexico", "Germany", "Turkey", "France"},
		levelsOf(t, res, "country"))
}

func TestGroupedSetCategoricalTopNPerGroup(t *testing.T) {
	res, err := populationTable(t).To(
		GroupBy("continent"),
		SetCategorical("country", OrderBy("population"), TopN(2), OrderGroupsByAggregate()),
	)
	require.Nil(t, err)
	require.Equal(t, 9, res.NumRows())
	require.Equal(t, []string{"China", "India", "United States", "Brazil", "Germany", "Turkey"}, levelsOf(t, res, "country"))
	require.Equal(t, []interface{}{"Brazil", nil, "United States", "China", "India", nil, nil, "Germany", "Turkey"},
		valuesOf(t, res, "country"))
}

func TestGroupedSetCategoricalTopNReverse(t *testing.T) {
	res, err := populationTable(t).To(
		GroupBy("continent"),
		SetCategorical("country", OrderBy("population"), TopN(2), Reverse(), OrderGroupsByAggregate()),
	)
	require.Nil(t, err)
	require.Equal(t, []string{"France", "Turkey", "Mexico", "Brazil", "Indonesia", "India"}, levelsOf(t, res, "country"))
}

func TestGroupedSetCategoricalSharedLevelsAndOther(t *testing.T) {
	in := createTable(t,
		memory.Strings("region", "north", "north", "north", "south", "south", "south"),
		memory.Strings("fruit", "apple", "banana", "cherry", "cherry", "banana", "apple"),
		memory.Ints("qty", 5, 3, 1, 9, 2, 1),
	)
	res, err := in.To(
		GroupBy("region"),
		SetCategorical("fruit", OrderBy("qty"), TopN(1), KeepOther()),
	)
	require.Nil(t, err)
	require.Equal(t, []string{"apple", "cherry", "_other"}, levelsOf(t, res, "fruit"))
	require.Equal(t, []interface{}{"apple", "_other", "_other", "cherry", "_other", "_other"}, valuesOf(t, res, "fruit"))

	res, err = in.To(GroupBy("region"), SetCategorical("fruit", OrderBy("qty")))
	require.Nil(t, err)
	require.Equal(t, []string{"apple", "banana", "cherry"}, levelsOf(t, res, "fruit"))
}

func TestGroupedSetCategoricalLexicographic(t *testing.T) {
	in := createTable(t,
		memory.Strings("region", "north", "north", "south"),
		memory.Strings("fruit", "banana", "cherry", "apple"),
	)
	res, err := in.To(GroupBy("region"), SetCategorical("fruit"))
	require.Nil(t, err)
	require.Equal(t, []string{"apple", "banana", "cherry"}, levelsOf(t, res, "fruit"))
	require.Equal(t, []interface{}{"banana", "cherry", "apple"}, valuesOf(t, res, "fruit"))

	res, err = in.To(GroupBy("region"), SetCategorical("fruit", Reverse()))
	require.Nil(t, err)
	require.Equal(t, []string{"cherry", "banana", "apple"}, levelsOf(t, res, "fruit"))
}

func TestGroupedAggregationErrorNamesGroup(t *testing.T) {
	failing := func(values tidy.Series) (interface{}, error) {
		return nil, fmt.Errorf("no")
	}
	_, err := populationTable(t).To(GroupBy("continent"), SetCategorical("country", OrderBy("population"), AggregateWith(failing)))
	var aggErr terrors.AggregationError
	require.True(t, errors.As(err, &aggErr))
	require.Equal(t, "[Americas]", aggErr.Group)
	require.Equal(t, "Brazil", aggErr.Level)
}
