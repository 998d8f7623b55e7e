package plot

// MarkOption configures a Mark
type MarkOption func(m *Mark)

// Color sets the color of a Mark, as a Vega-Lite color name or hex code
func Color(color string) MarkOption {
	return func(m *Mark) {
		m.Color = color
	}
}

// Size sets the size (the width, for lines) of a Mark
func Size(size float64) MarkOption {
	return func(m *Mark) {
		m.Size = size
	}
}

// Opacity sets the opacity of a Mark
func Opacity(opacity float64) MarkOption {
	return func(m *Mark) {
		m.Opacity = opacity
	}
}

// StrokeDash sets the dash pattern of a Mark's stroke
func StrokeDash(pattern ...int) MarkOption {
	return func(m *Mark) {
		m.StrokeDash = pattern
	}
}

func referenceMark(markType string, defaults []MarkOption, opts []MarkOption) *Mark {
	m := &Mark{Type: markType}
	for _, opt := range append(defaults, opts...) {
		opt(m)
	}
	return m
}

// HorizontalLine draws a rule crossing the y axis at y. It is black and 2 wide unless configured otherwise.
func HorizontalLine(y float64, opts ...MarkOption) *Chart {
	return &Chart{
		Data: &Data{Values: []map[string]interface{}{{"y": y}}},
		Mark: referenceMark("rule", []MarkOption{Color("black"), Size(2)}, opts),
		Encoding: map[string]*Field{
			"y": {Field: "y", Type: Quantitative},
		},
	}
}

// VerticalLine draws a rule crossing the x axis at x. It is black and 2 wide unless configured otherwise.
func VerticalLine(x float64, opts ...MarkOption) *Chart {
	return &Chart{
		Data: &Data{Values: []map[string]interface{}{{"x": x}}},
		Mark: referenceMark("rule", []MarkOption{Color("black"), Size(2)}, opts),
		Encoding: map[string]*Field{
			"x": {Field: "x", Type: Quantitative},
		},
	}
}

// DiagonalLine draws a line from (xs[0], ys[0]) to (xs[1], ys[1]). It is a faint, dashed
// black line unless configured otherwise.
func DiagonalLine(xs [2]float64, ys [2]float64, opts ...MarkOption) *Chart {
	defaults := []MarkOption{Color("black"), Size(2), Opacity(0.4), StrokeDash(5, 5)}
	return &Chart{
		Data: &Data{Values: []map[string]interface{}{
			{"x": xs[0], "y": ys[0]},
			{"x": xs[1], "y": ys[1]},
		}},
		Mark: referenceMark("line", defaults, opts),
		Encoding: map[string]*Field{
			"x": {Field: "x", Type: Quantitative},
			"y": {Field: "y", Type: Quantitative},
		},
	}
}

// Layer draws charts on top of each other, in order
func Layer(charts ...*Chart) *Chart {
	layered := &Chart{Schema: SchemaURL, Layer: make([]*Chart, len(charts))}
	for i, c := range charts {
		child := *c
		child.Schema = ""
		layered.Layer[i] = &child
	}
	return layered
}
