package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"vixboard/internal/config"
	"vixboard/internal/session"
)

// The live-status widget as a terminal line: open/closed plus the countdown
// to the next transition, refreshed in place every poll interval.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	cal, err := cfg.Calendar()
	if err != nil {
		log.Fatal(err)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	tick := time.NewTicker(cfg.PollInterval())
	defer tick.Stop()

	printStatus(cfg.Exchange.Name, cal)
	for {
		select {
		case <-tick.C:
			printStatus(cfg.Exchange.Name, cal)
		case <-sigc:
			fmt.Println()
			return
		}
	}
}

func printStatus(exchange string, cal *session.Calendar) {
	st := cal.Status(time.Now())
	if st.Open {
		fmt.Printf("\r[%s] Live Status: OPEN  — closes in %s ", exchange, session.FormatCountdown(st.Countdown))
	} else {
		fmt.Printf("\r[%s] Live Status: CLOSED — opens in %s ", exchange, session.FormatCountdown(st.Countdown))
	}
}
