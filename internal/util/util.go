package util

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// minSuggestionSimilarity is the Levenshtein similarity below which no suggestion is offered
const minSuggestionSimilarity = 0.5

// GetTrace produces the string representation of a stack trace
func GetTrace() string {
	var name, file string
	var line int
	var pc [16]uintptr
	var res strings.Builder
	n := runtime.Callers(3, pc[:])
	for _, pc := range pc[:n] {
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		file, line = fn.FileLine(pc)
		name = fn.Name()
		if !strings.HasPrefix(name, "runtime.") {
			fmt.Fprintf(&res, "%s\n\t%s:%d\n", name, file, line)
		}
	}
	return res.String()
}

// FormatMultiError formats multierrors for logging
func FormatMultiError(merrs []error) string {
	var msg = ""
	for i := 0; i < len(merrs); i++ {
		msg += fmt.Sprintf("%+v\n", merrs[i])
	}
	return msg
}

// Suggest returns the candidate most similar to name, or "" if none is similar enough
func Suggest(name string, candidates []string) string {
	metric := metrics.NewLevenshtein()
	metric.CaseSensitive = false
	best := ""
	bestScore := minSuggestionSimilarity
	for _, c := range candidates {
		score := strutil.Similarity(name, c, metric)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}
