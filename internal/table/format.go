package table

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/go-sif/tidy"
)

// missingValue is how a nil value is rendered
const missingValue = "<NA>"

// DisplayName renders a possibly multi-level column name for humans
func DisplayName(name string) string {
	return strings.Join(tidy.NameLevels(name), "/")
}

// FormatValue renders the i-th value of a Series
func FormatValue(s tidy.Series, i int) string {
	if s.IsNil(i) {
		return missingValue
	}
	return s.Type().ToString(s.Get(i))
}

// Format renders a Table as aligned text. At most maxRows rows are shown when maxRows > 0,
// and columns are dropped from the right to fit within maxWidth characters when maxWidth > 0.
func Format(t *Table, maxRows int, maxWidth int) string {
	names := t.schema.ColumnNames()
	shown := t.numRows
	if maxRows > 0 && maxRows < shown {
		shown = maxRows
	}
	cells := make([][]string, len(names))
	widths := make([]int, len(names))
	for c, name := range names {
		col := make([]string, shown+2)
		col[0] = DisplayName(name)
		col[1] = "<" + t.columns[c].Type().Name() + ">"
		for i := 0; i < shown; i++ {
			col[i+2] = FormatValue(t.columns[c], i)
		}
		for _, cell := range col {
			if len(cell) > widths[c] {
				widths[c] = len(cell)
			}
		}
		cells[c] = col
	}
	visible := len(names)
	if maxWidth > 0 {
		total := 0
		for c := range names {
			total += widths[c] + 2
			if total > maxWidth && c > 0 {
				visible = c
				break
			}
		}
	}

	var res strings.Builder
	fmt.Fprintf(&res, "# Table: %d x %d\n", t.numRows, len(names))
	if len(t.grouping) > 0 {
		fmt.Fprintf(&res, "# Groups: %s\n", strings.Join(t.grouping, ", "))
	}
	w := tabwriter.NewWriter(&res, 0, 0, 2, ' ', 0)
	for r := 0; r < shown+2; r++ {
		for c := 0; c < visible; c++ {
			fmt.Fprintf(w, "%s\t", cells[c][r])
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	if shown < t.numRows {
		fmt.Fprintf(&res, "# ... with %d more rows\n", t.numRows-shown)
	}
	if visible < len(names) {
		hidden := make([]string, 0, len(names)-visible)
		for _, name := range names[visible:] {
			hidden = append(hidden, DisplayName(name))
		}
		fmt.Fprintf(&res, "# ... with %d more columns: %s\n", len(hidden), strings.Join(hidden, ", "))
	}
	return res.String()
}
