package plot

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// kmgtSuffixes are the engineering magnitude suffixes, by power of 1000
var kmgtSuffixes = []string{"", "K", "M", "G", "T", "P", "E", "Z", "Y"}

// KMGTLabels formats axis values with engineering orders of magnitude, e.g. 1230000 as 1.23M.
// Values of 1000^9 and beyond are printed in full, and values below 1 get no suffix.
func KMGTLabels(nums []float64, prefix string, suffix string) []string {
	labels := make([]string, len(nums))
	for i, num := range nums {
		labels[i] = prefix + kmgtLabel(num) + suffix
	}
	return labels
}

func kmgtLabel(num float64) string {
	if num == 0 {
		return "0"
	}
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return strconv.FormatFloat(num, 'g', -1, 64)
	}
	scale := int(math.Floor((math.Ceil(math.Log10(math.Abs(num*1.1))) - 1) / 3))
	if scale >= len(kmgtSuffixes) {
		return strconv.FormatFloat(num, 'g', -1, 64)
	}
	if scale < 0 {
		scale = 0
	}
	return strconv.FormatFloat(num/math.Pow10(3*scale), 'g', 3, 64) + kmgtSuffixes[scale]
}

// QuarterLabels formats times as year and quarter, e.g. 2022Q3
func QuarterLabels(times []time.Time) []string {
	labels := make([]string, len(times))
	for i, t := range times {
		labels[i] = fmt.Sprintf("%dQ%d", t.Year(), (int(t.Month())-1)/3+1)
	}
	return labels
}
