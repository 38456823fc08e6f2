package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"vixboard/internal/aggregate"
)

// Exporter writes the derived series as CSV artifacts for the charting
// frontend. One file per chart, header row first, values already rounded by
// the aggregator's emit step.
type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// ExportAll writes every chart series. Returns the first write error; files
// already written are left in place.
func (e *Exporter) ExportAll(
	tx []aggregate.TxPoint,
	success, cancelRatio []aggregate.RatioPoint,
	returns []aggregate.ReturnPoint,
	costs []aggregate.CostPoint,
	cancelledCosts []aggregate.Point,
) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return err
	}

	if err := e.writeFile("transactions.csv",
		[]string{"date", "filled", "completed", "cancelled", "valid"},
		len(tx), func(i int) []string {
			p := tx[i]
			return []string{p.Date, num(p.Filled), num(p.Completed), num(p.Cancelled), num(p.Valid)}
		}); err != nil {
		return err
	}

	if err := e.writeFile("entry_exit_rates.csv",
		[]string{"date", "success_rate", "fail_rate"},
		len(success), func(i int) []string {
			p := success[i]
			return []string{p.Date, rate(p.A), rate(p.B)}
		}); err != nil {
		return err
	}

	if err := e.writeFile("cancel_rates.csv",
		[]string{"date", "valid_ratio", "cancelled_ratio"},
		len(cancelRatio), func(i int) []string {
			p := cancelRatio[i]
			return []string{p.Date, rate(p.A), rate(p.B)}
		}); err != nil {
		return err
	}

	if err := e.writeFile("cumulative_returns.csv",
		[]string{"date", "row_return", "net_return"},
		len(returns), func(i int) []string {
			p := returns[i]
			return []string{p.Date, money(p.Row), money(p.Net)}
		}); err != nil {
		return err
	}

	if err := e.writeFile("cumulative_costs.csv",
		[]string{"date", "cost", "commission"},
		len(costs), func(i int) []string {
			p := costs[i]
			return []string{p.Date, money(p.Cost), money(p.Commission)}
		}); err != nil {
		return err
	}

	return e.writeFile("cancelled_costs.csv",
		[]string{"date", "cost"},
		len(cancelledCosts), func(i int) []string {
			p := cancelledCosts[i]
			return []string{p.Date, money(p.Value)}
		})
}

func (e *Exporter) writeFile(name string, header []string, n int, row func(int) []string) error {
	path := filepath.Join(e.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func num(f float64) string   { return strconv.FormatFloat(f, 'f', -1, 64) }
func rate(f float64) string  { return strconv.FormatFloat(f, 'f', 4, 64) }
func money(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
