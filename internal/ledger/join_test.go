package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(date, exp string, short, long float64, costs float64) EntryTrade {
	return EntryTrade{
		Date:           ParseTime(date),
		Expiration:     ParseTime(exp),
		StrikeShortPut: Number(short),
		StrikeLongPut:  Number(long),
		Status:         StatusFilled,
		TotalCosts:     NewMoney(costs),
	}
}

func exit(date, exp string, short, long float64, costs, expected float64) ExitTrade {
	return ExitTrade{
		Date:           ParseTime(date),
		Expiration:     ParseTime(exp),
		StrikeShortPut: Number(short),
		StrikeLongPut:  Number(long),
		Status:         StatusExited,
		TotalCosts:     NewMoney(costs),
		ExpectedReturn: NewMoney(expected),
	}
}

func TestBacktestedReturn(t *testing.T) {
	e := entry("2020-01-02", "2020-01-17", 20, 15, -1.31)
	e.AvgExpiry = NewMoney(5.00)
	assert.Equal(t, "3.69", BacktestedReturn(e).Display())
}

func TestExitedReturnNetsExitFee(t *testing.T) {
	e := entry("2020-01-02", "2020-01-17", 20, 15, -1.00)
	e.CurrentExpiry = NewMoney(3.00)
	// 3.00 - 1.00 - 1.311
	assert.Equal(t, "0.69", ExitedReturn(e).Display())
}

func TestLegBacktestedReturn(t *testing.T) {
	l := LegTrade{AvgExpiry: NewMoney(2.50), TotalCosts: NewMoney(-0.50)}
	assert.Equal(t, "2.00", LegBacktestedReturn(l).Display())
}

func TestAssignIDsAreDistinct(t *testing.T) {
	entries := []EntryTrade{entry("2020-01-02", "2020-01-17", 20, 15, -1.25), entry("2020-01-03", "2020-01-17", 21, 16, -1.10)}
	exits := []ExitTrade{exit("2020-01-02", "2020-01-17", 20, 15, -1.25, 2.75)}

	AssignIDs(entries, exits, nil, nil)

	seen := map[uuid.UUID]bool{}
	for _, e := range entries {
		require.NotEqual(t, uuid.Nil, e.ID)
		require.False(t, seen[e.ID])
		seen[e.ID] = true
	}
	require.NotEqual(t, uuid.Nil, exits[0].ID)
	require.False(t, seen[exits[0].ID])
}

func TestLinkExitsStampsEntryID(t *testing.T) {
	entries := []EntryTrade{
		entry("2020-01-02", "2020-01-17", 20, 15, -1.25),
		entry("2020-01-03", "2020-01-24", 21, 16, -1.10),
	}
	exits := []ExitTrade{
		exit("2020-01-03", "2020-01-24", 21, 16, -1.10, 2.75),
		exit("2020-02-01", "2020-02-21", 19, 14, -1.50, 1.00), // no match
	}
	AssignIDs(entries, exits, nil, nil)

	LinkExits(entries, exits)

	assert.Equal(t, entries[1].ID, exits[0].EntryID)
	assert.Equal(t, uuid.Nil, exits[1].EntryID)
}

func TestLinkExitsAmbiguousKeyTakesFirstEntry(t *testing.T) {
	// Two entries with identical natural keys; the first in input order wins.
	entries := []EntryTrade{
		entry("2020-01-02", "2020-01-17", 20, 15, -1.25),
		entry("2020-01-02", "2020-01-17", 20, 15, -1.25),
	}
	exits := []ExitTrade{exit("2020-01-02", "2020-01-17", 20, 15, -1.25, 2.75)}
	AssignIDs(entries, exits, nil, nil)

	LinkExits(entries, exits)

	assert.Equal(t, entries[0].ID, exits[0].EntryID)
}

func TestJoinExitReturnPrefersLinkedID(t *testing.T) {
	e := entry("2020-01-02", "2020-01-17", 20, 15, -1.25)
	e.ID = uuid.New()
	// Natural key differs; only the stamped ID can find this exit.
	x := exit("2020-01-05", "2020-01-17", 20, 15, -1.25, 2.75)
	x.EntryID = e.ID

	got, ok := JoinExitReturn(e, []ExitTrade{x})
	require.True(t, ok)
	assert.Equal(t, "2.75", got.Display())
}

func TestJoinExitReturnNaturalKeyFallback(t *testing.T) {
	e := entry("2020-01-02", "2020-01-17", 20, 15, -1.25)
	x := exit("2020-01-02", "2020-01-17", 20, 15, -1.25, 2.75)

	got, ok := JoinExitReturn(e, []ExitTrade{x})
	require.True(t, ok)
	assert.Equal(t, "2.75", got.Display())
}

func TestJoinExitReturnNoMatchIsSentinel(t *testing.T) {
	e := entry("2020-01-02", "2020-01-17", 20, 15, -1.25)
	x := exit("2020-01-02", "2020-01-17", 20, 15, -9.99, 2.75) // costs differ

	_, ok := JoinExitReturn(e, []ExitTrade{x})
	assert.False(t, ok)

	_, ok = JoinExitReturn(e, nil)
	assert.False(t, ok)
}
