package transform

import (
	"testing"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/datasource/memory"
	"github.com/stretchr/testify/require"
)

func createTable(t *testing.T, cols ...memory.Column) tidy.Table {
	tbl, err := memory.CreateTable(cols...)
	require.Nil(t, err)
	return tbl
}

func levelsOf(t *testing.T, tbl tidy.Table, colName string) []string {
	s, err := tbl.Column(colName)
	require.Nil(t, err)
	cs, ok := s.(tidy.CategoricalSeries)
	require.True(t, ok, "column %s is not categorical", colName)
	return cs.Levels()
}

func valuesOf(t *testing.T, tbl tidy.Table, colName string) []interface{} {
	s, err := tbl.Column(colName)
	require.Nil(t, err)
	return s.Values()
}

func populationTable(t *testing.T) tidy.Table {
	return createTable(t,
		memory.Strings("continent", "Americas", "Americas", "Americas", "Asia", "Asia", "Asia", "Europe", "Europe", "Europe"),
		memory.Strings("country", "Brazil", "Mexico", "United States", "China", "India", "Indonesia", "France", "Germany", "Turkey"),
		memory.Ints("population", 179914212, 102479927, 287675526, 1280400000, 1034172547, 211060000, 59925035, 82350671, 67308928),
	)
}
