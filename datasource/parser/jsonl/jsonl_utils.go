package jsonl

import (
	"fmt"
	"math"

	"github.com/go-sif/tidy"
	"github.com/tidwall/gjson"
)

// ParseJSONRow extracts the value of each column from a line of JSON, using column names as gjson paths.
// Absent and null values are nil.
func ParseJSONRow(colNames []string, colTypes []tidy.ColumnType, rowString string, values []interface{}) error {
	if !gjson.Valid(rowString) {
		return fmt.Errorf("invalid JSON")
	}
	results := gjson.GetMany(rowString, colNames...)
	for i, res := range results {
		val, err := parseValue(res, colNames[i], colTypes[i])
		if err != nil {
			return err
		}
		values[i] = val
	}
	return nil
}

func parseValue(res gjson.Result, colName string, colType tidy.ColumnType) (interface{}, error) {
	if !res.Exists() || res.Type == gjson.Null {
		return nil, nil
	}
	switch colType.(type) {
	case *tidy.BoolColumnType:
		if !res.IsBool() {
			return nil, fmt.Errorf("Column %s was not a boolean. Was: %s", colName, res.Raw)
		}
		return res.Bool(), nil
	case *tidy.Int64ColumnType:
		if res.Type != gjson.Number || res.Num != math.Trunc(res.Num) {
			return nil, fmt.Errorf("Column %s was not an integer. Was: %s", colName, res.Raw)
		}
		return res.Int(), nil
	case *tidy.Float64ColumnType:
		if res.Type != gjson.Number {
			return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, res.Raw)
		}
		return res.Float(), nil
	case *tidy.StringColumnType, *tidy.CategoricalColumnType:
		if res.Type != gjson.String {
			return nil, fmt.Errorf("Column %s was not a string. Was: %s", colName, res.Raw)
		}
		return res.String(), nil
	case *tidy.TimeColumnType:
		if res.Type != gjson.String {
			return nil, fmt.Errorf("Column %s was not a datetime string. Was: %s", colName, res.Raw)
		}
		tval, err := colType.Coerce(res.String())
		if err != nil {
			return nil, fmt.Errorf("Column %s: %w", colName, err)
		}
		return tval, nil
	}
	return nil, fmt.Errorf("JSONL parsing does not support column type %T", colType)
}
