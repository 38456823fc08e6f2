// Package session implements the exchange session clock: whether the market
// is open at an instant and how long until the next transition. One shared
// implementation replaces the per-page variants the site used to carry, so
// every surface agrees on the same boundary rules.
package session

import (
	"fmt"
	"time"
)

// Calendar is a named exchange schedule: Mon-Fri business days with fixed
// open and close wall-clock times in the exchange's timezone. Holidays are
// not modeled.
type Calendar struct {
	loc            *time.Location
	openH, openM   int
	closeH, closeM int
}

// NewCalendar builds a calendar for tz (IANA name) with open/close given as
// "HH:MM". Misconfiguration (unknown zone, open at or after close) is a
// startup error, not something to limp through.
func NewCalendar(tz, open, close string) (*Calendar, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("session: load timezone %q: %w", tz, err)
	}
	oh, om, err := parseWall(open)
	if err != nil {
		return nil, fmt.Errorf("session: open time: %w", err)
	}
	ch, cm, err := parseWall(close)
	if err != nil {
		return nil, fmt.Errorf("session: close time: %w", err)
	}
	if oh*60+om >= ch*60+cm {
		return nil, fmt.Errorf("session: open %s is not before close %s", open, close)
	}
	return &Calendar{loc: loc, openH: oh, openM: om, closeH: ch, closeM: cm}, nil
}

func parseWall(s string) (h, m int, err error) {
	if _, err = fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, 0, fmt.Errorf("parse %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("wall time %q out of range", s)
	}
	return h, m, nil
}

// Status is the clock's answer for one instant.
type Status struct {
	// Open reports whether now is inside a business day's trading hours.
	Open bool
	// Next is the upcoming transition: today's close when open, the next
	// business-day open otherwise.
	Next time.Time
	// Countdown is the non-negative time until Next.
	Countdown time.Duration
}

// Status evaluates the clock at now. Pure: same instant, same answer. The
// trading interval is half-open, [open, close): the opening instant counts
// as open, the closing instant as closed.
func (c *Calendar) Status(now time.Time) Status {
	local := now.In(c.loc)
	open := c.openAt(local)
	close := c.closeAt(local)

	if isBusinessDay(local.Weekday()) && !local.Before(open) && local.Before(close) {
		return Status{Open: true, Next: close, Countdown: close.Sub(now)}
	}

	// Closed: walk forward day by day until a business-day open strictly
	// after now (today's open still counts if not yet reached).
	next := open
	for !isBusinessDay(next.Weekday()) || !next.After(local) {
		next = c.openAt(next.AddDate(0, 0, 1))
	}
	return Status{Open: false, Next: next, Countdown: next.Sub(now)}
}

func (c *Calendar) openAt(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.openH, c.openM, 0, 0, c.loc)
}

func (c *Calendar) closeAt(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.closeH, c.closeM, 0, 0, c.loc)
}

func isBusinessDay(d time.Weekday) bool {
	return d >= time.Monday && d <= time.Friday
}

// FormatCountdown renders d as D:HH:MM:SS, the format the live-status widget
// shows. Negative durations clamp to zero.
func FormatCountdown(d time.Duration) string {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}
	days := total / 86400
	h := total % 86400 / 3600
	m := total % 3600 / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d:%02d", days, h, m, s)
}
