package report

import (
	"fmt"
	"io"

	"vixboard/internal/aggregate"
	"vixboard/internal/feed"
	"vixboard/internal/ledger"
)

// FormatCount renders a transaction count the way the metric boxes do:
// millions with an M suffix, ten-thousands and up with k, small counts
// verbatim.
func FormatCount(n float64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.2fM", n/1_000_000)
	case n >= 10_000:
		return fmt.Sprintf("%.2fk", n/1_000)
	default:
		return fmt.Sprintf("%d", int64(n))
	}
}

// WinRate is the share of realized outcomes (exited entries, exercised
// legs) that closed positive. ok is false when nothing has been realized
// yet, in which case the box shows a placeholder instead of a number.
func WinRate(snap *feed.Snapshot) (float64, bool) {
	var wins, total int

	_, exited := splitEntries(snap.Entries)
	for _, e := range exited {
		total++
		if ledger.ExitedReturn(e).IsPositive() {
			wins++
		}
	}
	for _, l := range exercisedOnly(snap.LongLegs) {
		total++
		if l.Return.IsPositive() {
			wins++
		}
	}
	for _, l := range exercisedOnly(snap.ShortLegs) {
		total++
		if l.Payoff.IsPositive() {
			wins++
		}
	}

	if total == 0 {
		return 0, false
	}
	return float64(wins) / float64(total) * 100, true
}

// Metrics prints the headline boxes above the charts.
func Metrics(out io.Writer, snap *feed.Snapshot, tx []aggregate.TxPoint) {
	fmt.Fprintf(out, "\nTotal Transactions Count: %s TXs\n", FormatCount(aggregate.TotalTransactions(tx)))

	if rate, ok := WinRate(snap); ok {
		fmt.Fprintf(out, "Current Win Rate: %.2f%%\n", rate)
	} else {
		fmt.Fprintf(out, "Current Win Rate: %s%%\n", dash)
	}
}
