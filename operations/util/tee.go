package util

import (
	"fmt"
	"io"

	"github.com/go-sif/tidy"
	log "github.com/sirupsen/logrus"
)

// TeeRows is the number of rows printed when a side computation produces a Table
const TeeRows = 10

// Tee runs a side computation on a Table and writes its result to w, returning the Table unchanged.
// Tables are rendered with at most TeeRows rows, any other result with fmt.
func Tee(fn func(t tidy.Table) (interface{}, error), w io.Writer) tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		res, err := fn(t)
		if err != nil {
			return nil, fmt.Errorf("Tee failed: %w", err)
		}
		switch r := res.(type) {
		case tidy.Table:
			_, err = io.WriteString(w, r.ToString(TeeRows))
		case nil:
			log.WithField("table", t.ID()).Debug("tee produced no result")
		default:
			_, err = fmt.Fprintln(w, r)
		}
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}
