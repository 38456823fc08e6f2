package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"vixboard/internal/ledger"
)

// ReturnPoint is one day of the cumulative return chart. Row is the gross
// realized value, Net is net of costs; both are rounded on emit only.
type ReturnPoint struct {
	Date string
	Row  float64
	Net  float64
}

// ReturnSeries combines the three realized-return sources into one
// chronological cumulative pair:
//
//   - exits contribute the sell-leg value (gross) and expiry value plus
//     costs (net), bucketed by exit date;
//   - exercised long legs contribute their expiry value (gross) and Return
//     (net), bucketed by expiration;
//   - exercised short legs contribute their Payoff (net only).
//
// Days after now are excluded: expirations in the future have no realized
// value yet. Accumulation runs at full decimal precision.
func ReturnSeries(exits []ledger.ExitTrade, longs, shorts []ledger.LegTrade, now time.Time) []ReturnPoint {
	exitByDate := make(map[string]ledger.ExitTrade)
	exitDates := make(DateMap)
	for _, x := range exits {
		key := x.Date.DateKey()
		if key == "" {
			continue
		}
		exitDates[key] = 0
		// One exit per day is expected; the first row wins when the feed
		// ever delivers more.
		if _, dup := exitByDate[key]; !dup {
			exitByDate[key] = x
		}
	}

	longGross := legSum(longs, func(l ledger.LegTrade) ledger.Money { return l.CurrentExpiry })
	longNet := legSum(longs, func(l ledger.LegTrade) ledger.Money { return l.Return })
	shortNet := legSum(shorts, func(l ledger.LegTrade) ledger.Money { return l.Payoff })

	dates := unionDates(exitDates, asDateMap(longGross), asDateMap(longNet), asDateMap(shortNet))

	out := make([]ReturnPoint, 0, len(dates))
	cumRow := decimal.Zero
	cumNet := decimal.Zero
	for _, d := range dates {
		if parseKey(d).After(now) {
			continue
		}
		row := longGross[d]
		net := longNet[d].Add(shortNet[d])
		if x, ok := exitByDate[d]; ok {
			row = row.Add(x.SellLegValue.Decimal)
			net = net.Add(x.CurrentExpiry.Decimal).Add(x.TotalCosts.Decimal)
		}
		cumRow = cumRow.Add(row)
		cumNet = cumNet.Add(net)
		out = append(out, ReturnPoint{Date: d, Row: round2(cumRow), Net: round2(cumNet)})
	}
	return out
}

// legSum buckets one money field of the legs by expiration day.
func legSum(legs []ledger.LegTrade, field func(ledger.LegTrade) ledger.Money) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, l := range legs {
		key := l.Expiration.DateKey()
		if key == "" {
			continue
		}
		out[key] = out[key].Add(field(l).Decimal)
	}
	return out
}

func asDateMap(m map[string]decimal.Decimal) DateMap {
	out := make(DateMap, len(m))
	for k := range m {
		out[k] = 0
	}
	return out
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
