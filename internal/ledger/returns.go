package ledger

import "github.com/shopspring/decimal"

// exitFee is the brokerage cost of unwinding a spread early, subtracted from
// the displayed return of exited trades.
var exitFee = decimal.NewFromFloat(1.311)

// BacktestedReturn estimates what the trade would have returned under the
// historical backtest: AVG expiry value minus the absolute cost of entry.
// It is independent of the realized exit join.
func BacktestedReturn(e EntryTrade) Money {
	return Money{e.AvgExpiry.Decimal.Sub(e.TotalCosts.Decimal.Abs())}
}

// ExitedReturn is the realized return column for an exited entry: current
// expiry value plus (negative) total costs, net of the exit fee.
func ExitedReturn(e EntryTrade) Money {
	return Money{e.CurrentExpiry.Decimal.Add(e.TotalCosts.Decimal).Sub(exitFee)}
}

// LegBacktestedReturn is BacktestedReturn computed from an exercised leg's
// own fields.
func LegBacktestedReturn(l LegTrade) Money {
	return Money{l.AvgExpiry.Decimal.Sub(l.TotalCosts.Decimal.Abs())}
}
