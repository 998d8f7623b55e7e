package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/accumulators"
	"github.com/go-sif/tidy/datasource/parser/dsv"
	"github.com/go-sif/tidy/datasource/parser/jsonl"
	"github.com/go-sif/tidy/operations/transform"
	"github.com/go-sif/tidy/schema"
	"github.com/go-sif/tidy/serializer"
	"github.com/pelletier/go-toml/v2"
)

// ColumnConf declares a Schema column
type ColumnConf struct {
	Name   string   `toml:"name"`
	Type   string   `toml:"type"`
	Format string   `toml:"format"`
	Levels []string `toml:"levels"`
}

// CategoricalConf holds the options of the categorical command
type CategoricalConf struct {
	Column      string `toml:"column"`
	OrderBy     string `toml:"order_by"`
	Aggregate   string `toml:"aggregate"`
	Reverse     bool   `toml:"reverse"`
	TopN        int    `toml:"top_n"`
	KeepOther   bool   `toml:"keep_other"`
	OtherLabel  string `toml:"other_label"`
	OrderGroups bool   `toml:"order_groups"`
}

// Config describes an input file and how to process it
type Config struct {
	Input       string          `toml:"input"`
	Format      string          `toml:"format"` // csv or jsonl, inferred from the input extension when empty
	Delimiter   string          `toml:"delimiter"`
	HeaderLines int             `toml:"header_lines"`
	MatchHeader bool            `toml:"match_header"`
	NilValue    string          `toml:"nil_value"`
	Compression string          `toml:"compression"` // lz4 or zstd, for snapshots
	GroupBy     []string        `toml:"group_by"`
	Columns     []ColumnConf    `toml:"columns"`
	Categorical CategoricalConf `toml:"categorical"`
}

// LoadConfig reads a TOML Config. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	conf := &Config{}
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(conf); err != nil {
		return nil, fmt.Errorf("Unable to read config %s: %w", path, err)
	}
	return conf, nil
}

// Schema builds the Schema declared by the columns of this Config
func (c *Config) Schema() (tidy.Schema, error) {
	if len(c.Columns) == 0 {
		return nil, fmt.Errorf("no columns declared")
	}
	s := schema.CreateSchema()
	for _, col := range c.Columns {
		colType, err := tidy.ColumnTypeFromName(col.Type, col.Format, col.Levels)
		if err != nil {
			return nil, fmt.Errorf("Column %s: %w", col.Name, err)
		}
		if _, err := s.CreateColumn(col.Name, colType); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Parser builds the DataSourceParser matching the input format
func (c *Config) Parser() (tidy.DataSourceParser, error) {
	format := strings.ToLower(c.Format)
	if len(format) == 0 {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(c.Input)), ".")
	}
	switch format {
	case "csv", "tsv", "dsv":
		conf := &dsv.ParserConf{
			HeaderLines: c.HeaderLines,
			MatchHeader: c.MatchHeader,
			NilValue:    c.NilValue,
		}
		if format == "tsv" {
			conf.Delimiter = '\t'
		}
		if len(c.Delimiter) > 0 {
			runes := []rune(c.Delimiter)
			if len(runes) != 1 {
				return nil, fmt.Errorf("delimiter must be a single character, was %q", c.Delimiter)
			}
			conf.Delimiter = runes[0]
		}
		return dsv.CreateParser(conf), nil
	case "jsonl", "json", "ndjson":
		return jsonl.CreateParser(&jsonl.ParserConf{HeaderLines: c.HeaderLines}), nil
	}
	return nil, fmt.Errorf("unknown input format %q", format)
}

// Serializer builds the TableSerializer used for snapshots
func (c *Config) Serializer() (serializer.TableSerializer, error) {
	switch strings.ToLower(c.Compression) {
	case "", "lz4":
		return serializer.NewLZ4TableSerializer(), nil
	case "zstd":
		return serializer.NewZstdTableSerializer()
	}
	return nil, fmt.Errorf("unknown compression %q", c.Compression)
}

// CategoricalOptions translates the categorical section into SetCategorical options
func (c *Config) CategoricalOptions() ([]transform.CategoricalOption, error) {
	cc := c.Categorical
	opts := []transform.CategoricalOption{}
	if len(cc.OrderBy) > 0 {
		opts = append(opts, transform.OrderBy(cc.OrderBy))
	}
	if len(cc.Aggregate) > 0 {
		agg, err := aggregatorByName(cc.Aggregate)
		if err != nil {
			return nil, err
		}
		opts = append(opts, transform.AggregateWith(agg))
	}
	if cc.Reverse {
		opts = append(opts, transform.Reverse())
	}
	if cc.TopN != 0 {
		opts = append(opts, transform.TopN(cc.TopN))
	}
	if cc.KeepOther {
		opts = append(opts, transform.KeepOther())
	}
	if len(cc.OtherLabel) > 0 {
		opts = append(opts, transform.OtherLabel(cc.OtherLabel))
	}
	if cc.OrderGroups {
		opts = append(opts, transform.OrderGroupsByAggregate())
	}
	return opts, nil
}

func aggregatorByName(name string) (tidy.Aggregator, error) {
	switch strings.ToLower(name) {
	case "sum":
		return accumulators.SumAggregator, nil
	case "mean":
		return accumulators.MeanAggregator, nil
	case "count":
		return accumulators.CountAggregator, nil
	case "min":
		return accumulators.MinAggregator, nil
	case "max":
		return accumulators.MaxAggregator, nil
	}
	return nil, fmt.Errorf("unknown aggregator %q", name)
}
