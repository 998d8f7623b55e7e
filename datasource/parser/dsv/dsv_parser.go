package dsv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/internal/table"
	iutil "github.com/go-sif/tidy/internal/util"
	multierror "github.com/hashicorp/go-multierror"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	HeaderLines int    // The number of lines to ignore from the beginning of each file. Defaults to 0.
	MatchHeader bool   // If true, the first line after HeaderLines names the columns, and is matched against the Schema by name. Extra columns are ignored.
	Delimiter   rune   // The delimiter separating columns in the file. Defaults to ,
	Comment     rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
	MaxErrors   int    // The number of malformed rows reported before parsing gives up. Defaults to 10.
}

// Parser produces Tables from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	if conf.MaxErrors == 0 {
		conf.MaxErrors = 10
	}
	return &Parser{conf: conf}
}

// Parse parses DSV data to produce a Table respecting schema. Malformed rows are
// collected and reported together, up to MaxErrors of them.
func (p *Parser) Parse(r io.Reader, schema tidy.Schema) (tidy.Table, error) {
	// start parsing by creating a reader
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = schema.NumColumns()
	reader.ReuseRecord = true

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		reader.FieldsPerRecord = -1
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
		reader.FieldsPerRecord = schema.NumColumns()
	}

	positions := make([]int, schema.NumColumns())
	for i := range positions {
		positions[i] = i
	}
	if p.conf.MatchHeader {
		reader.FieldsPerRecord = 0
		header, err := reader.Read()
		if err == io.EOF {
			return nil, fmt.Errorf("DSV data has no header line")
		} else if err != nil {
			return nil, err
		}
		if positions, err = matchHeader(header, schema); err != nil {
			return nil, err
		}
		reader.FieldsPerRecord = len(header)
	}

	builder := table.NewBuilder(schema)
	colTypes := schema.ColumnTypes()
	names := schema.ColumnNames()
	values := make([]interface{}, len(names))
	var merr *multierror.Error
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			merr = multierror.Append(merr, err)
		} else {
			line, _ := reader.FieldPos(0)
			if err := scanRow(p.conf, names, colTypes, positions, record, values); err != nil {
				merr = multierror.Append(merr, fmt.Errorf("line %d: %w", line, err))
			} else if err := builder.Append(values...); err != nil {
				merr = multierror.Append(merr, fmt.Errorf("line %d: %w", line, err))
			}
		}
		if merr != nil && len(merr.Errors) >= p.conf.MaxErrors {
			break
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	t, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return t, nil
}

// matchHeader returns, for each Schema column, its position within the header
func matchHeader(header []string, schema tidy.Schema) ([]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}
	names := schema.ColumnNames()
	positions := make([]int, len(names))
	for i, name := range names {
		pos, ok := index[name]
		if !ok {
			return nil, errors.ColumnNotFoundError{Name: name, Suggestion: iutil.Suggest(name, header)}
		}
		positions[i] = pos
	}
	return positions, nil
}
