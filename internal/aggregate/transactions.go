package aggregate

import "vixboard/internal/ledger"

// legsPerFill is the transaction weight of one entry fill: a put-spread
// executes two legs at the exchange.
const legsPerFill = 2

// TxPoint is one day of the cumulative transaction chart.
type TxPoint struct {
	Date      string
	Filled    float64
	Completed float64
	Cancelled float64
	// Valid is filled+completed, the denominator of the cancellation chart.
	Valid float64
}

// RatioPoint is one day of a rate chart; the two sides always sum to 1.
type RatioPoint struct {
	Date string
	A    float64
	B    float64
}

// TransactionSeries walks the union of entry and exit dates and accumulates
// fills (weight 2), completions (exits, weight 1) and cancellations
// (weight 1). Days present in only one source still advance the other
// cumulative values unchanged.
func TransactionSeries(entries []ledger.EntryTrade, exits []ledger.ExitTrade) []TxPoint {
	filled := AggregateByDate(entries, ledger.StatusFilled, legsPerFill)
	completed := AggregateByDate(exits, "", 1)
	cancelled := AggregateByDate(entries, ledger.StatusPartialCancelled, 1)

	dates := unionDates(filled, completed, cancelled)

	out := make([]TxPoint, 0, len(dates))
	var cumFilled, cumCompleted, cumCancelled float64
	for _, d := range dates {
		cumFilled += filled[d]
		cumCompleted += completed[d]
		cumCancelled += cancelled[d]
		out = append(out, TxPoint{
			Date:      d,
			Filled:    cumFilled,
			Completed: cumCompleted,
			Cancelled: cumCancelled,
			Valid:     cumFilled + cumCompleted,
		})
	}
	return out
}

// TotalTransactions is the headline count: cumulative filled plus completed,
// cancellations excluded.
func TotalTransactions(series []TxPoint) float64 {
	if len(series) == 0 {
		return 0
	}
	last := series[len(series)-1]
	return last.Filled + last.Completed
}

// SuccessRatioSeries derives the entry/exit rate chart: A is the share of
// filled transactions, B the remainder.
func SuccessRatioSeries(series []TxPoint) []RatioPoint {
	out := make([]RatioPoint, 0, len(series))
	for _, p := range series {
		success := ratio(p.Filled, p.Filled+p.Completed)
		out = append(out, RatioPoint{Date: p.Date, A: success, B: 1 - success})
	}
	return out
}

// CancelRatioSeries derives the valid-vs-cancelled rate chart: A is the
// share of valid transactions, B the cancelled remainder.
func CancelRatioSeries(series []TxPoint) []RatioPoint {
	out := make([]RatioPoint, 0, len(series))
	for _, p := range series {
		valid := ratio(p.Valid, p.Valid+p.Cancelled)
		out = append(out, RatioPoint{Date: p.Date, A: valid, B: 1 - valid})
	}
	return out
}

// CancelledSeries is the cumulative count of cancelled orders by day.
func CancelledSeries(entries []ledger.EntryTrade) []Point {
	return CumulativeSeries(AggregateByDate(entries, ledger.StatusPartialCancelled, 1))
}
