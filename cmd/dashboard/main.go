package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"vixboard/internal/aggregate"
	"vixboard/internal/config"
	"vixboard/internal/feed"
	"vixboard/internal/logger"
	"vixboard/internal/report"
	"vixboard/internal/session"
)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", true, "render once and exit instead of polling")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.LoadConfig(*configPath)
	must(err)

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	must(logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Tracing: cfg.Log.Tracing}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer logger.Shutdown(context.Background())

	cal, err := cfg.Calendar()
	must(err)

	src, err := buildSource(cfg)
	must(err)
	loader := feed.NewLoader(src)

	if cfg.Feed.DiscoverURL != "" {
		if urls, err := feed.Discover(cfg.Feed.DiscoverURL, cfg.FeedTimeout()); err != nil {
			logger.Warn(ctx, "dataset discovery failed", "url", cfg.Feed.DiscoverURL, "error", err)
		} else {
			logger.Info(ctx, "datasets discovered", "count", len(urls), "urls", urls)
		}
	}

	render(ctx, cfg, cal, loader)
	if *once {
		return
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	// Refresh cadence for a long-running dashboard; each pass replaces the
	// previous output wholesale.
	tick := time.NewTicker(5 * time.Minute)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			render(ctx, cfg, cal, loader)
		case <-sigc:
			logger.Info(ctx, "shutting down")
			return
		case <-ctx.Done():
			return
		}
	}
}

func buildSource(cfg *config.Config) (feed.Source, error) {
	if cfg.Feed.Dir != "" {
		return feed.NewDirSource(cfg.Feed.Dir), nil
	}
	return feed.NewHTTPSource(cfg.Feed.BaseURL, cfg.FeedTimeout(), cfg.Feed.RatePerSec)
}

func render(ctx context.Context, cfg *config.Config, cal *session.Calendar, loader *feed.Loader) {
	now := time.Now()
	st := cal.Status(now)
	if st.Open {
		fmt.Printf("[%s] market open — closes in %s\n", cfg.Exchange.Name, session.FormatCountdown(st.Countdown))
	} else {
		fmt.Printf("[%s] market closed — opens in %s\n", cfg.Exchange.Name, session.FormatCountdown(st.Countdown))
	}

	snap := loader.Load(ctx)

	op := logger.StartOperation(ctx, "aggregate.series")
	tx := aggregate.TransactionSeries(snap.Entries, snap.Exits)
	success := aggregate.SuccessRatioSeries(tx)
	cancelRatio := aggregate.CancelRatioSeries(tx)
	returns := aggregate.ReturnSeries(snap.Exits, snap.LongLegs, snap.ShortLegs, now)
	costs := aggregate.CostSeries(snap.Entries, snap.Exits)
	cancelledCosts := aggregate.CancelledCostSeries(snap.Entries)
	op.End()

	r := report.NewRenderer(os.Stdout)
	report.Metrics(os.Stdout, snap, tx)
	if cfg.Report.Tables {
		r.Overview(snap)
		r.Strategies(snap.Strategies)
	}

	if cfg.Report.ExportDir != "" {
		exp := report.NewExporter(cfg.Report.ExportDir)
		if err := exp.ExportAll(tx, success, cancelRatio, returns, costs, cancelledCosts); err != nil {
			logger.ErrorWithErr(ctx, "series export failed", err)
			return
		}
		logger.Info(ctx, "series exported", "dir", cfg.Report.ExportDir)
	}
}
