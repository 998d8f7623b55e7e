// Package plot builds Vega-Lite chart specifications from Tables. Categorical columns are
// encoded with an explicit sort, so that charts respect the order of their levels.
package plot
