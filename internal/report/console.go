// Package report renders the dashboard surfaces: console tables mirroring
// the site's overview page, headline metrics, and CSV artifacts of the
// derived series for the charting frontend.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"

	"vixboard/internal/feed"
	"vixboard/internal/ledger"
)

// dash is the placeholder for a value that is missing or failed to join.
const dash = "—"

// Renderer writes the console dashboard.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Overview prints the four trade tables of the overview page: active,
// exited, exercised long legs and exercised short legs. Rows are sorted by
// trade date, newest first.
func (r *Renderer) Overview(snap *feed.Snapshot) {
	active, exited := splitEntries(snap.Entries)

	fmt.Fprintln(r.out, "\nActive trades: Put-Spreads")
	r.activeTable(active)

	fmt.Fprintln(r.out, "\nExited trades")
	r.exitedTable(exited, snap.Exits)

	fmt.Fprintln(r.out, "\nExercised Long leg Trades")
	r.legTable(exercisedOnly(snap.LongLegs), "Return", func(l ledger.LegTrade) ledger.Money { return l.Return })

	fmt.Fprintln(r.out, "\nExercised Short leg Trades")
	r.legTable(exercisedOnly(snap.ShortLegs), "Payoff", func(l ledger.LegTrade) ledger.Money { return l.Payoff })
}

func splitEntries(entries []ledger.EntryTrade) (active, exited []ledger.EntryTrade) {
	for _, e := range entries {
		if e.Status.Active() {
			active = append(active, e)
		} else {
			exited = append(exited, e)
		}
	}
	sortByDateDesc(active)
	sortByDateDesc(exited)
	return active, exited
}

func sortByDateDesc(entries []ledger.EntryTrade) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date.Time)
	})
}

func exercisedOnly(legs []ledger.LegTrade) []ledger.LegTrade {
	out := make([]ledger.LegTrade, 0, len(legs))
	for _, l := range legs {
		if l.Status == ledger.StatusExercised {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

func (r *Renderer) activeTable(entries []ledger.EntryTrade) {
	table := tablewriter.NewWriter(r.out)
	table.Header("Date", "Expiration", "Short Put", "Long Put", "Status",
		"Qty Buy", "Qty Sell", "Total Costs", "Current Expiry", "AVG Expiry")
	for _, e := range entries {
		table.Append(
			fmtDateTime(e.Date),
			fmtDate(e.Expiration),
			fmtStrike(e.StrikeShortPut),
			fmtStrike(e.StrikeLongPut),
			string(e.Status),
			fmt.Sprintf("%d", int(e.QtyBuy)),
			fmt.Sprintf("%d", int(e.QtySell)),
			e.TotalCosts.Display(),
			e.CurrentExpiry.Display(),
			e.AvgExpiry.Display(),
		)
	}
	table.Render()
}

func (r *Renderer) exitedTable(entries []ledger.EntryTrade, exits []ledger.ExitTrade) {
	table := tablewriter.NewWriter(r.out)
	table.Header("Date", "Expiration", "Short Put", "Long Put", "Status",
		"Qty Buy", "Qty Sell", "Total Costs", "AVG Backtested Return", "Return", "Expected Return")
	for _, e := range entries {
		expected := dash
		if m, ok := ledger.JoinExitReturn(e, exits); ok {
			expected = m.Display()
		}
		table.Append(
			fmtDateTime(e.Date),
			fmtDate(e.Expiration),
			fmtStrike(e.StrikeShortPut),
			fmtStrike(e.StrikeLongPut),
			string(e.Status),
			fmt.Sprintf("%d", int(e.QtyBuy)),
			fmt.Sprintf("%d", int(e.QtySell)),
			e.TotalCosts.Display(),
			ledger.BacktestedReturn(e).Display(),
			ledger.ExitedReturn(e).Display(),
			expected,
		)
	}
	table.Render()
}

func (r *Renderer) legTable(legs []ledger.LegTrade, valueHeader string, value func(ledger.LegTrade) ledger.Money) {
	table := tablewriter.NewWriter(r.out)
	table.Header("Date", "Expiration", "Short Put", "Long Put", "Status",
		"Qty Buy", "Qty Sell", "Total Costs", "AVG Backtested Return", valueHeader)
	for _, l := range legs {
		table.Append(
			fmtDateTime(l.Date),
			fmtDate(l.Expiration),
			fmtStrike(l.StrikeShortPut),
			fmtStrike(l.StrikeLongPut),
			string(l.Status),
			fmt.Sprintf("%d", int(l.QtyBuy)),
			fmt.Sprintf("%d", int(l.QtySell)),
			l.TotalCosts.Display(),
			ledger.LegBacktestedReturn(l).Display(),
			value(l).Display(),
		)
	}
	table.Render()
}

// Strategies prints the backtest summary table.
func (r *Renderer) Strategies(strategies []ledger.StrategySummary) {
	if len(strategies) == 0 {
		return
	}
	fmt.Fprintln(r.out, "\nBacktested strategies")
	table := tablewriter.NewWriter(r.out)
	table.Header("VIX Threshold", "Sell Strike", "Trades", "Total Return", "Winrate (%)", "Risk/Reward")
	for _, s := range strategies {
		table.Append(
			s.VIXThreshold,
			fmtStrike(s.SellStrike),
			fmt.Sprintf("%d", int(s.NumberOfTrades)),
			s.TotalReturn.Display(),
			fmt.Sprintf("%.2f", float64(s.Winrate)),
			fmt.Sprintf("%.2f", float64(s.RiskReward)),
		)
	}
	table.Render()
}

func fmtDateTime(t ledger.Time) string {
	if t.IsZero() {
		return dash
	}
	return t.Format("01/02/2006 15:04")
}

func fmtDate(t ledger.Time) string {
	if t.IsZero() {
		return dash
	}
	return t.Format("01/02/2006")
}

func fmtStrike(n ledger.Number) string {
	return fmt.Sprintf("%.2f", float64(n))
}
