package dsv

import (
	"fmt"
	"strconv"

	"github.com/go-sif/tidy"
)

// Parses the fields of a record into values, according to a schema
func scanRow(conf *ParserConf, names []string, colTypes []tidy.ColumnType, positions []int, record []string, values []interface{}) error {
	for i, pos := range positions {
		colVal := record[pos]
		values[i] = nil
		// check for a nil value
		if len(colVal) == 0 || colVal == conf.NilValue {
			continue
		}
		// otherwise, parse type
		switch colTypes[i].(type) {
		case *tidy.BoolColumnType:
			bval, err := strconv.ParseBool(colVal)
			if err != nil {
				return fmt.Errorf("Column %s was not a boolean. Was: %#v", names[i], colVal)
			}
			values[i] = bval
		case *tidy.Int64ColumnType:
			ival, err := strconv.ParseInt(colVal, 10, 64)
			if err != nil {
				return fmt.Errorf("Column %s was not an integer. Was: %#v", names[i], colVal)
			}
			values[i] = ival
		case *tidy.Float64ColumnType:
			fval, err := strconv.ParseFloat(colVal, 64)
			if err != nil {
				return fmt.Errorf("Column %s was not a number. Was: %#v", names[i], colVal)
			}
			values[i] = fval
		case *tidy.StringColumnType, *tidy.CategoricalColumnType:
			values[i] = colVal
		case *tidy.TimeColumnType:
			tval, err := colTypes[i].Coerce(colVal)
			if err != nil {
				return fmt.Errorf("Column %s: %w", names[i], err)
			}
			values[i] = tval
		default:
			return fmt.Errorf("DSV parsing does not support column type %T", colTypes[i])
		}
	}
	return nil
}
