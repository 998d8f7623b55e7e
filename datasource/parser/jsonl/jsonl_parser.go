package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/internal/table"
	multierror "github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	HeaderLines   int  // The number of lines to ignore from the beginning of each file. Defaults to 0.
	Comment       rune // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize int  // Maximum size in bytes of the buffer used to read lines from the file
	MaxErrors     int  // The number of malformed lines reported before parsing gives up. Defaults to 10.
}

// Parser produces Tables from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Columns are parsed from each row of JSON using their column name, which should be a gjson path. Values within the JSON which do not correspond to a Schema column are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	if conf.MaxErrors == 0 {
		conf.MaxErrors = 10
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data to produce a Table respecting schema. Blank lines are skipped.
func (p *Parser) Parse(r io.Reader, schema tidy.Schema) (tidy.Table, error) {
	// start parsing by creating a scanner
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	builder := table.NewBuilder(schema)
	colNames := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	values := make([]interface{}, len(colNames))
	var merr *multierror.Error
	line := p.conf.HeaderLines
	for scanner.Scan() {
		line++
		rowString := scanner.Text()
		trimmed := strings.TrimSpace(rowString)
		if len(trimmed) == 0 || (p.conf.Comment != 0 && strings.HasPrefix(trimmed, string(p.conf.Comment))) {
			continue
		}
		err := ParseJSONRow(colNames, colTypes, rowString, values)
		if err == nil {
			err = builder.Append(values...)
		}
		if err != nil {
			log.Debugf("Unable to parse line:\n\t%s", rowString)
			merr = multierror.Append(merr, fmt.Errorf("line %d: %w", line, err))
			if len(merr.Errors) >= p.conf.MaxErrors {
				break
			}
		}
	}
	if err := scanner.Err(); err != nil {
		merr = multierror.Append(merr, err)
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
