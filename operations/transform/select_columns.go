package transform

import (
	"regexp"
	"strings"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/internal/table"
	lru "github.com/hashicorp/golang-lru"
)

const patternCacheSize = 256

var patternCache *lru.Cache

func init() {
	var err error
	patternCache, err = lru.New(patternCacheSize)
	if err != nil {
		panic(err)
	}
}

// compilePatterns builds a single regular expression fully matching any of the given patterns
func compilePatterns(patterns []string, fold bool) (*regexp.Regexp, error) {
	parts := make([]string, len(patterns))
	for i, p := range patterns {
		parts[i] = "(?:" + p + ")"
	}
	expr := "^(?:" + strings.Join(parts, "|") + ")$"
	if fold {
		expr = "(?i)" + expr
	}
	if cached, ok := patternCache.Get(expr); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.InvalidArgumentError{Argument: "patterns", Reason: err.Error()}
	}
	patternCache.Add(expr, re)
	return re, nil
}

func selectColumns(patterns []string, fold bool) tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		if len(patterns) == 0 {
			return nil, errors.InvalidArgumentError{Argument: "patterns", Reason: "at least one pattern is required"}
		}
		re, err := compilePatterns(patterns, fold)
		if err != nil {
			return nil, err
		}
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		selected := []string{}
		for _, name := range ct.Schema().ColumnNames() {
			if re.MatchString(name) {
				selected = append(selected, name)
			}
		}
		return asTable(ct.Select(selected))
	}
}

// SelectColumns keeps the columns whose names fully match any of the given regular expressions.
// Literal names are patterns too. Columns keep their Schema order and are selected at most once.
// A Table with no matching columns keeps its rows, but has no columns.
func SelectColumns(patterns ...string) tidy.TableOperation {
	return selectColumns(patterns, false)
}

// SelectColumnsFold is SelectColumns with case-insensitive matching
func SelectColumnsFold(patterns ...string) tidy.TableOperation {
	return selectColumns(patterns, true)
}
