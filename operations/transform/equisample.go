package transform

import (
	"fmt"
	"math/rand"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/internal/group"
	"github.com/go-sif/tidy/internal/table"
	log "github.com/sirupsen/logrus"
)

// Equisample draws a random sample of n rows, without replacement, from each group of the named columns
// (or of the Table's own grouping, if none are named). n == 0 samples as many rows as the smallest group has.
// Output rows are ordered by group, then by draw. The same seed always produces the same sample.
func Equisample(n int, seed int64, grouping ...string) tidy.TableOperation {
	return equisample(n, seed, false, grouping)
}

// EquisampleWithReplacement is Equisample drawing rows with replacement, so n may exceed a group's size
func EquisampleWithReplacement(n int, seed int64, grouping ...string) tidy.TableOperation {
	return equisample(n, seed, true, grouping)
}

func equisample(n int, seed int64, replace bool, grouping []string) tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		if n < 0 {
			return nil, errors.InvalidArgumentError{Argument: "n", Reason: fmt.Sprintf("must not be negative, was %d", n)}
		}
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		keys := grouping
		if len(keys) == 0 {
			keys = ct.Grouping()
		}
		if len(keys) == 0 {
			return nil, errors.InvalidArgumentError{Argument: "grouping", Reason: "at least one column is required for an ungrouped table"}
		}
		groups, err := group.Partition(ct, keys)
		if err != nil {
			return nil, err
		}
		size := n
		if size == 0 {
			size = -1
			for _, g := range groups {
				if size < 0 || len(g.Rows) < size {
					size = len(g.Rows)
				}
			}
			if size < 0 {
				size = 0
			}
		}
		rng := rand.New(rand.NewSource(seed))
		rows := make([]int, 0, size*len(groups))
		for _, g := range groups {
			if replace {
				for i := 0; i < size; i++ {
					rows = append(rows, g.Rows[rng.Intn(len(g.Rows))])
				}
				continue
			}
			if size > len(g.Rows) {
				return nil, errors.InvalidArgumentError{
					Argument: "n",
					Reason:   fmt.Sprintf("cannot sample %d rows without replacement from group %s of %d rows", size, g.String(), len(g.Rows)),
				}
			}
			for _, i := range rng.Perm(len(g.Rows))[:size] {
				rows = append(rows, g.Rows[i])
			}
		}
		log.WithFields(log.Fields{"groups": len(groups), "per_group": size}).Debug("sampled groups")
		return ct.Take(rows), nil
	}
}
