package dataset

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// Group is one group-by bucket. Valid is false when every value in the bucket
// failed numeric coercion, so the sum is null rather than zero.
type Group struct {
	Key   string
	Value float64
	Valid bool
	Count int
}

// GroupSum groups raw values by the aligned keys and sums the values that
// coerce to numbers. A group whose values all fail coercion stays in the
// result with Valid=false. Group order is first appearance of each key.
func GroupSum(keys, raw []string) []Group {
	n := len(keys)
	if len(raw) < n {
		n = len(raw)
	}
	order := make([]string, 0)
	buckets := make(map[string][]float64)
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		k := keys[i]
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
		cell := raw[i]
		if cell == "" {
			continue
		}
		if v, err := parseNumber(cell); err == nil {
			buckets[k] = append(buckets[k], v)
		}
	}
	out := make([]Group, 0, len(order))
	for _, k := range order {
		g := Group{Key: k, Count: counts[k]}
		if vals := buckets[k]; len(vals) > 0 {
			s, err := stats.Sum(vals)
			if err == nil {
				g.Value = s
				g.Valid = true
			}
		}
		out = append(out, g)
	}
	return out
}

// GroupCount counts occurrences of each key, in first-appearance order.
// Empty keys are kept; callers decide whether to relabel or drop them.
func GroupCount(keys []string) []Group {
	order := make([]string, 0)
	counts := make(map[string]int)
	for _, k := range keys {
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	out := make([]Group, 0, len(order))
	for _, k := range order {
		out = append(out, Group{Key: k, Value: float64(counts[k]), Valid: true, Count: counts[k]})
	}
	return out
}

// MaxGroup returns the group with the largest valid value. Empty or all-null
// input is a failure, not a defined result.
func MaxGroup(groups []Group) (Group, error) {
	return extremalGroup(groups, func(a, b float64) bool { return a > b })
}

// MinGroup returns the group with the smallest valid value.
func MinGroup(groups []Group) (Group, error) {
	return extremalGroup(groups, func(a, b float64) bool { return a < b })
}

func extremalGroup(groups []Group, better func(a, b float64) bool) (Group, error) {
	var best Group
	found := false
	for _, g := range groups {
		if !g.Valid {
			continue
		}
		if !found || better(g.Value, best.Value) {
			best = g
			found = true
		}
	}
	if !found {
		return Group{}, ErrNoData
	}
	return best, nil
}

// TopN returns at most n groups sorted descending by value. Null groups are
// excluded; ties break by key so the ranking is deterministic.
func TopN(groups []Group, n int) []Group {
	valid := make([]Group, 0, len(groups))
	for _, g := range groups {
		if g.Valid {
			valid = append(valid, g)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].Value != valid[j].Value {
			return valid[i].Value > valid[j].Value
		}
		return valid[i].Key < valid[j].Key
	})
	if len(valid) > n {
		valid = valid[:n]
	}
	return valid
}

// ColumnMax is the coerced maximum of a value slice.
func ColumnMax(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoNumeric
	}
	return stats.Max(values)
}

// ColumnMin is the coerced minimum of a value slice.
func ColumnMin(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoNumeric
	}
	return stats.Min(values)
}
