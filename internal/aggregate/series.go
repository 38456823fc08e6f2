// Package aggregate turns raw ledger record sets into chronologically ordered
// derived series. Every operation is a pure fold over immutable inputs: no
// package-level accumulators, no mutation of source rows. The same routines
// feed every report surface so the numbers cannot drift between them.
package aggregate

import (
	"sort"
	"time"

	"vixboard/internal/ledger"
)

// Record is the minimal view a date-keyed aggregation needs.
type Record interface {
	TradeDate() ledger.Time
	TradeStatus() ledger.Status
}

// Point is one step of a derived time series. Date is the MM/DD/YYYY bucket
// key; Value is already rounded for emission.
type Point struct {
	Date  string
	Value float64
}

// DateMap is a per-day sum of weights.
type DateMap map[string]float64

// AggregateByDate buckets rows by calendar day and sums weight per bucket.
// status filters rows when non-empty. Rows whose date failed to parse are
// dropped as a data-quality condition, not an error.
func AggregateByDate[T Record](rows []T, status ledger.Status, weight float64) DateMap {
	out := make(DateMap)
	for _, r := range rows {
		if status != "" && r.TradeStatus() != status {
			continue
		}
		key := r.TradeDate().DateKey()
		if key == "" {
			continue
		}
		out[key] += weight
	}
	return out
}

// CumulativeSeries orders the buckets chronologically and runs a prefix sum.
// The output has one point per distinct date key and its last value equals
// the sum of all weights.
func CumulativeSeries(m DateMap) []Point {
	keys := sortedKeys(m)
	out := make([]Point, 0, len(keys))
	sum := 0.0
	for _, k := range keys {
		sum += m[k]
		out = append(out, Point{Date: k, Value: sum})
	}
	return out
}

// Partition splits rows into those matching pred and the rest. Every row
// lands in exactly one side; the combined size always equals len(rows).
func Partition[T any](rows []T, pred func(T) bool) (in, out []T) {
	for _, r := range rows {
		if pred(r) {
			in = append(in, r)
		} else {
			out = append(out, r)
		}
	}
	return in, out
}

// parseKey turns a bucket key back into a time for ordering.
func parseKey(k string) time.Time {
	t, _ := time.Parse("01/02/2006", k)
	return t
}

func sortedKeys(m DateMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return parseKey(keys[i]).Before(parseKey(keys[j]))
	})
	return keys
}

// unionDates merges bucket keys from several maps into chronological order.
func unionDates(maps ...DateMap) []string {
	union := make(DateMap)
	for _, m := range maps {
		for k := range m {
			union[k] = 0
		}
	}
	return sortedKeys(union)
}

// ratio divides num by den with the site's zero-denominator convention: an
// empty bucket reports 1.0, i.e. 100% of the structurally-zero numerator.
// Kept for fidelity with the published charts; isolated here so the policy
// is one line to change.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 1
	}
	return num / den
}
