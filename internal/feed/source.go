// Package feed fetches and decodes the pre-generated CSV files the batch
// trader publishes. The feed is read-only and best-effort: a dataset that
// cannot be fetched or decoded loads as empty rather than failing the
// snapshot, matching the dashboard's tolerance for a missing chart.
package feed

import (
	"context"
	"io"
)

// Dataset file names as published under the site's data directory.
const (
	DatasetEntries    = "entry_trades.csv"
	DatasetExits      = "exit_trades.csv"
	DatasetLongLegs   = "longleg_trades.csv"
	DatasetShortLegs  = "shortleg_trades.csv"
	DatasetStrategies = "Selected_Strategies_Summary.csv"
)

// Source hands out raw dataset bytes. Implementations: HTTP against the
// static site, or a local directory for offline runs and tests.
type Source interface {
	Fetch(ctx context.Context, name string) (io.ReadCloser, error)
}
