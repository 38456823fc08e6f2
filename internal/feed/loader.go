package feed

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/gocarina/gocsv"

	"vixboard/internal/ledger"
	"vixboard/internal/logger"
)

// Snapshot is one point-in-time load of every dataset. It is replaced
// atomically: readers either see the previous snapshot or this one complete,
// never a half-filled mix.
type Snapshot struct {
	Entries    []ledger.EntryTrade
	Exits      []ledger.ExitTrade
	LongLegs   []ledger.LegTrade
	ShortLegs  []ledger.LegTrade
	Strategies []ledger.StrategySummary
	FetchedAt  time.Time
}

// Loader fetches and decodes all datasets from a Source.
type Loader struct {
	src Source
}

func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// Load fans out one fetch per dataset and waits for all of them. There is no
// ordering dependency between the fetches; a failed one logs a warning and
// contributes an empty set. Synthetic IDs and the exit links are established
// before the snapshot is handed out.
func (l *Loader) Load(ctx context.Context) *Snapshot {
	op := logger.StartOperation(ctx, "feed.load")
	defer op.End()
	ctx = op.Context()

	snap := &Snapshot{FetchedAt: time.Now()}

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		snap.Entries = loadDataset[ledger.EntryTrade](ctx, l.src, DatasetEntries)
	}()
	go func() {
		defer wg.Done()
		snap.Exits = loadDataset[ledger.ExitTrade](ctx, l.src, DatasetExits)
	}()
	go func() {
		defer wg.Done()
		snap.LongLegs = loadDataset[ledger.LegTrade](ctx, l.src, DatasetLongLegs)
	}()
	go func() {
		defer wg.Done()
		snap.ShortLegs = loadDataset[ledger.LegTrade](ctx, l.src, DatasetShortLegs)
	}()
	go func() {
		defer wg.Done()
		snap.Strategies = loadDataset[ledger.StrategySummary](ctx, l.src, DatasetStrategies)
	}()
	wg.Wait()

	ledger.AssignIDs(snap.Entries, snap.Exits, snap.LongLegs, snap.ShortLegs)
	ledger.LinkExits(snap.Entries, snap.Exits)

	logger.Info(ctx, "snapshot loaded",
		"entries", len(snap.Entries),
		"exits", len(snap.Exits),
		"long_legs", len(snap.LongLegs),
		"short_legs", len(snap.ShortLegs),
		"strategies", len(snap.Strategies),
	)
	return snap
}

func loadDataset[T any](ctx context.Context, src Source, name string) []T {
	rc, err := src.Fetch(ctx, name)
	if err != nil {
		logger.Warn(ctx, "dataset unavailable, loading empty", "dataset", name, "error", err)
		return nil
	}
	defer rc.Close()

	rows, err := decode[T](rc)
	if err != nil {
		logger.Warn(ctx, "dataset decode failed, loading empty", "dataset", name, "error", err)
		return nil
	}
	logger.Debug(ctx, "dataset loaded", "dataset", name, "rows", len(rows))
	return rows
}

// decode parses CSV into rows of T. Header cells are trimmed first: the exit
// file has shipped with a trailing space in a header ("Expected return "),
// and normalizing at this boundary keeps both spellings mapped to the same
// field. Ragged rows are padded to the header width so one bad line cannot
// sink the whole file.
func decode[T any](r io.Reader) ([]T, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	width := len(header)
	for i := 1; i < len(records); i++ {
		for len(records[i]) < width {
			records[i] = append(records[i], "")
		}
		records[i] = records[i][:width]
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}

	var out []T
	if err := gocsv.UnmarshalBytes(buf.Bytes(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
