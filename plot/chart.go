package plot

import (
	"fmt"
	"math"
	"time"

	"github.com/go-sif/tidy"
	iutil "github.com/go-sif/tidy/internal/util"
	jsoniter "github.com/json-iterator/go"
)

// SchemaURL is the Vega-Lite schema which produced charts conform to
const SchemaURL = "https://vega.github.io/schema/vega-lite/v5.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Vega-Lite encoding types
const (
	Quantitative = "quantitative"
	Temporal     = "temporal"
	Ordinal      = "ordinal"
	Nominal      = "nominal"
)

// Data holds the inline values of a Chart, one object per row
type Data struct {
	Values []map[string]interface{} `json:"values"`
}

// Mark describes how a Chart draws its data
type Mark struct {
	Type       string  `json:"type"`
	Color      string  `json:"color,omitempty"`
	Size       float64 `json:"size,omitempty"`
	Opacity    float64 `json:"opacity,omitempty"`
	StrokeDash []int   `json:"strokeDash,omitempty"`
}

// Field encodes a column onto a visual channel
type Field struct {
	Field string   `json:"field"`
	Type  string   `json:"type"`
	Sort  []string `json:"sort,omitempty"`
	Title string   `json:"title,omitempty"`
}

// Chart is a Vega-Lite specification. A Chart either draws a Mark, or layers other Charts.
type Chart struct {
	Schema   string            `json:"$schema,omitempty"`
	Title    string            `json:"title,omitempty"`
	Data     *Data             `json:"data,omitempty"`
	Mark     *Mark             `json:"mark,omitempty"`
	Encoding map[string]*Field `json:"encoding,omitempty"`
	Layer    []*Chart          `json:"layer,omitempty"`

	types map[string]tidy.ColumnType
}

// NewChart creates a Chart whose data are the rows of a Table. Times are rendered in RFC 3339,
// and missing values and NaNs become nulls.
func NewChart(t tidy.Table) (*Chart, error) {
	names := t.Schema().ColumnNames()
	types := make(map[string]tidy.ColumnType, len(names))
	for i, colType := range t.Schema().ColumnTypes() {
		types[names[i]] = colType
	}
	values := make([]map[string]interface{}, 0, t.NumRows())
	err := t.ForEachRow(func(row tidy.Row) error {
		obj := make(map[string]interface{}, len(names))
		for _, name := range names {
			v, err := row.Get(name)
			if err != nil {
				return err
			}
			obj[name] = jsonValue(v)
		}
		values = append(values, obj)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Chart{
		Schema: SchemaURL,
		Data:   &Data{Values: values},
		types:  types,
	}, nil
}

func jsonValue(v interface{}) interface{} {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
	case time.Time:
		return val.Format(time.RFC3339)
	}
	return v
}

// MarkWith sets the Mark of this Chart, e.g. "line", "bar", "point" or "rule"
func (c *Chart) MarkWith(markType string, opts ...MarkOption) *Chart {
	c.Mark = &Mark{Type: markType}
	for _, opt := range opts {
		opt(c.Mark)
	}
	return c
}

// Encode maps a column onto a channel such as "x", "y" or "color". The encoding type is
// derived from the column type. Categorical columns are sorted by their levels.
func (c *Chart) Encode(channel string, colName string) (*Chart, error) {
	colType, ok := c.types[colName]
	if !ok {
		candidates := make([]string, 0, len(c.types))
		for name := range c.types {
			candidates = append(candidates, name)
		}
		return nil, fmt.Errorf("Column %s does not exist in chart data%s", colName, suggestion(colName, candidates))
	}
	f := &Field{Field: colName}
	switch ct := colType.(type) {
	case *tidy.Int64ColumnType, *tidy.Float64ColumnType:
		f.Type = Quantitative
	case *tidy.TimeColumnType:
		f.Type = Temporal
	case *tidy.CategoricalColumnType:
		f.Type = Ordinal
		f.Sort = append([]string{}, ct.Levels...)
	default:
		f.Type = Nominal
	}
	if c.Encoding == nil {
		c.Encoding = make(map[string]*Field)
	}
	c.Encoding[channel] = f
	return c, nil
}

// EncodeAll encodes several channels at once, from a map of channel to column name
func (c *Chart) EncodeAll(channels map[string]string) (*Chart, error) {
	for channel, colName := range channels {
		if _, err := c.Encode(channel, colName); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithTitle sets the title of this Chart
func (c *Chart) WithTitle(title string) *Chart {
	c.Title = title
	return c
}

// ToJSON renders this Chart as a Vega-Lite specification
func (c *Chart) ToJSON() ([]byte, error) {
	return json.Marshal(c)
}

func suggestion(name string, candidates []string) string {
	if s := iutil.Suggest(name, candidates); len(s) > 0 {
		return fmt.Sprintf(" (did you mean %s?)", s)
	}
	return ""
}
