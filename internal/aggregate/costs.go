package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"vixboard/internal/ledger"
)

// perExitCost is the flat brokerage charge booked per exit row; the exit
// file itself carries no cost column.
var perExitCost = decimal.NewFromFloat(1.47)

// CostPoint is one day of the cumulative cost/commission chart. Cost is
// emitted as an absolute value (entry costs are negative on the wire).
type CostPoint struct {
	Date       string
	Cost       float64
	Commission float64
}

// CostSeries accumulates entry costs and commissions by day, plus the flat
// per-exit charge, over the union of entry and exit dates.
func CostSeries(entries []ledger.EntryTrade, exits []ledger.ExitTrade) []CostPoint {
	entryCosts := make(map[string]decimal.Decimal)
	entryCommissions := make(map[string]decimal.Decimal)
	for _, e := range entries {
		key := e.Date.DateKey()
		if key == "" {
			continue
		}
		entryCosts[key] = entryCosts[key].Add(e.TotalCosts.Decimal)
		entryCommissions[key] = entryCommissions[key].Add(e.TotalCommissions.Decimal)
	}

	exitCosts := make(map[string]decimal.Decimal)
	for _, x := range exits {
		key := x.Date.DateKey()
		if key == "" {
			continue
		}
		exitCosts[key] = exitCosts[key].Add(perExitCost)
	}

	dates := unionDates(asDateMap(entryCosts), asDateMap(exitCosts))

	out := make([]CostPoint, 0, len(dates))
	cumCost := decimal.Zero
	cumCommission := decimal.Zero
	for _, d := range dates {
		cumCost = cumCost.Add(entryCosts[d]).Add(exitCosts[d])
		cumCommission = cumCommission.Add(entryCommissions[d])
		out = append(out, CostPoint{
			Date:       d,
			Cost:       round2(cumCost.Abs()),
			Commission: round2(cumCommission),
		})
	}
	return out
}

// CancelledCostSeries folds the costs of cancelled orders in chronological
// order, one point per record. Ties in date keep input order.
func CancelledCostSeries(entries []ledger.EntryTrade) []Point {
	cancelled, _ := Partition(entries, func(e ledger.EntryTrade) bool {
		return e.Status == ledger.StatusPartialCancelled && e.Date.DateKey() != ""
	})
	sort.SliceStable(cancelled, func(i, j int) bool {
		return cancelled[i].Date.Before(cancelled[j].Date.Time)
	})

	out := make([]Point, 0, len(cancelled))
	cum := decimal.Zero
	for _, e := range cancelled {
		cum = cum.Add(e.TotalCosts.Decimal)
		out = append(out, Point{Date: e.Date.DateKey(), Value: round2(cum)})
	}
	return out
}
