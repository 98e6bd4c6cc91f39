package dataset

import (
	"sort"
	"strings"
)

// ColumnMap maps a normalized logical field name to the actual header text it
// resolved to. Keys with no match are absent from the map.
type ColumnMap map[string]string

// Get resolves a logical name (in any spelling) to the actual header.
func (m ColumnMap) Get(logical string) (string, bool) {
	actual, ok := m[NormalizeKey(logical)]
	return actual, ok
}

// NormalizeKey canonicalizes a column label: lower-case, underscores removed,
// all whitespace removed. Idempotent and total over any string.
func NormalizeKey(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "")
	return strings.Join(strings.Fields(s), "")
}

// Resolve maps each desired logical name to the best matching actual header.
// An exact normalized match always wins. Otherwise every header whose
// normalized key contains the desired key (or vice versa) is scored and the
// best candidate is taken: longest shared prefix with the desired key first,
// then the shorter key, then lexicographic order. The scoring makes the
// result independent of header iteration order.
//
// Headers that normalize to the same key are not distinguished; the later
// column wins the lookup slot.
func Resolve(headers []string, want []string) ColumnMap {
	norm := make(map[string]string, len(headers))
	keys := make([]string, 0, len(headers))
	for _, h := range headers {
		k := NormalizeKey(h)
		if k == "" {
			continue
		}
		if _, seen := norm[k]; !seen {
			keys = append(keys, k)
		}
		norm[k] = h
	}
	sort.Strings(keys)

	out := make(ColumnMap, len(want))
	for _, w := range want {
		wk := NormalizeKey(w)
		if wk == "" {
			continue
		}
		if actual, ok := norm[wk]; ok {
			out[wk] = actual
			continue
		}
		best := ""
		bestScore := -1
		for _, k := range keys {
			if !strings.Contains(k, wk) && !strings.Contains(wk, k) {
				continue
			}
			score := sharedPrefixLen(k, wk)
			if score > bestScore || (score == bestScore && len(k) < len(best)) {
				best = k
				bestScore = score
			}
		}
		if best != "" {
			out[wk] = norm[best]
		}
	}
	return out
}

func sharedPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
