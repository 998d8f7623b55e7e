// Package serializer compresses Tables into portable snapshots and restores them.
package serializer

import (
	"encoding/gob"
	"fmt"
	"io"
	"time"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/internal/table"
)

// TableSerializer writes a Table to a stream and reads it back
type TableSerializer interface {
	Serialize(w io.Writer, t tidy.Table) error    // Serialize compresses a Table onto a write stream
	Deserialize(r io.Reader) (tidy.Table, error) // Deserialize restores a Table from a read stream
}

// snapshot is the wire representation of a Table
type snapshot struct {
	Names    []string
	Grouping []string
	NumRows  int
	Columns  []snapshotColumn
}

// snapshotColumn stores the values of a single column in a typed slice matching its ColumnType.
// Missing marks missing values, whose slots hold zero values.
type snapshotColumn struct {
	Type    string
	Format  string
	Levels  []string
	Missing []bool
	Bools   []bool
	Ints    []int64
	Floats  []float64
	Strings []string
	Times   []time.Time
	Codes   []int32
}

func encode(w io.Writer, t tidy.Table) error {
	names := t.Schema().ColumnNames()
	snap := snapshot{
		Names:    names,
		Grouping: t.Grouping(),
		NumRows:  t.NumRows(),
		Columns:  make([]snapshotColumn, len(names)),
	}
	for i, name := range names {
		s, err := t.Column(name)
		if err != nil {
			return err
		}
		if snap.Columns[i], err = encodeColumn(s); err != nil {
			return fmt.Errorf("Column %s: %w", name, err)
		}
	}
	return gob.NewEncoder(w).Encode(&snap)
}

func encodeColumn(s tidy.Series) (snapshotColumn, error) {
	col := snapshotColumn{Type: s.Type().Name(), Missing: make([]bool, s.Len())}
	for i := range col.Missing {
		col.Missing[i] = s.IsNil(i)
	}
	switch colType := s.Type().(type) {
	case *tidy.CategoricalColumnType:
		cs := s.(tidy.CategoricalSeries)
		col.Levels = cs.Levels()
		col.Codes = make([]int32, s.Len())
		for i := range col.Codes {
			col.Codes[i] = int32(cs.Code(i))
		}
	case *tidy.BoolColumnType:
		col.Bools = make([]bool, s.Len())
		for i := range col.Bools {
			if !col.Missing[i] {
				col.Bools[i] = s.Get(i).(bool)
			}
		}
	case *tidy.Int64ColumnType:
		col.Ints = make([]int64, s.Len())
		for i := range col.Ints {
			if !col.Missing[i] {
				col.Ints[i] = s.Get(i).(int64)
			}
		}
	case *tidy.Float64ColumnType:
		col.Floats = make([]float64, s.Len())
		for i := range col.Floats {
			if !col.Missing[i] {
				col.Floats[i] = s.Get(i).(float64)
			}
		}
	case *tidy.StringColumnType:
		col.Strings = make([]string, s.Len())
		for i := range col.Strings {
			if !col.Missing[i] {
				col.Strings[i] = s.Get(i).(string)
			}
		}
	case *tidy.TimeColumnType:
		col.Format = colType.Format
		col.Times = make([]time.Time, s.Len())
		for i := range col.Times {
			if !col.Missing[i] {
				col.Times[i] = s.Get(i).(time.Time)
			}
		}
	default:
		return col, fmt.Errorf("Column type %s cannot be serialized", s.Type().Name())
	}
	return col, nil
}

func decode(r io.Reader) (tidy.Table, error) {
	var snap snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("Unable to decode table snapshot: %w", err)
	}
	if len(snap.Columns) != len(snap.Names) {
		return nil, fmt.Errorf("Corrupt table snapshot: %d names for %d columns", len(snap.Names), len(snap.Columns))
	}
	columns := make([]tidy.Series, len(snap.Columns))
	for i, col := range snap.Columns {
		s, err := decodeColumn(col)
		if err != nil {
			return nil, fmt.Errorf("Column %s: %w", snap.Names[i], err)
		}
		if s.Len() != snap.NumRows {
			return nil, fmt.Errorf("Corrupt table snapshot: column %s holds %d of %d rows", snap.Names[i], s.Len(), snap.NumRows)
		}
		columns[i] = s
	}
	t, err := table.New(snap.Names, columns, snap.Grouping)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func decodeColumn(col snapshotColumn) (tidy.Series, error) {
	colType, err := tidy.ColumnTypeFromName(col.Type, col.Format, col.Levels)
	if err != nil {
		return nil, err
	}
	if tidy.IsCategorical(colType) {
		for _, c := range col.Codes {
			if int(c) >= len(col.Levels) || c < -1 {
				return nil, fmt.Errorf("Corrupt table snapshot: level code %d out of range", c)
			}
		}
		return table.NewCategoricalSeries(col.Levels, col.Codes), nil
	}
	values := make([]interface{}, len(col.Missing))
	for i := range values {
		if col.Missing[i] {
			continue
		}
		switch colType.(type) {
		case *tidy.BoolColumnType:
			values[i] = col.Bools[i]
		case *tidy.Int64ColumnType:
			values[i] = col.Ints[i]
		case *tidy.Float64ColumnType:
			values[i] = col.Floats[i]
		case *tidy.StringColumnType:
			values[i] = col.Strings[i]
		case *tidy.TimeColumnType:
			values[i] = col.Times[i]
		}
	}
	return table.NewSeries(colType, values)
}
