package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vixboard/internal/ledger"
)

func filledEntry(date string) ledger.EntryTrade {
	return ledger.EntryTrade{Date: ledger.ParseTime(date), Status: ledger.StatusFilled}
}

func cancelledEntry(date string) ledger.EntryTrade {
	return ledger.EntryTrade{Date: ledger.ParseTime(date), Status: ledger.StatusPartialCancelled}
}

func TestAggregateByDateSingleEntry(t *testing.T) {
	got := AggregateByDate([]ledger.EntryTrade{filledEntry("2020-01-02")}, ledger.StatusFilled, 2)
	assert.Equal(t, DateMap{"01/02/2020": 2}, got)
}

func TestAggregateByDateFiltersAndBuckets(t *testing.T) {
	rows := []ledger.EntryTrade{
		filledEntry("2020-01-02 09:31:00"),
		filledEntry("2020-01-02 10:15:00"), // same calendar day
		filledEntry("2020-01-03"),
		cancelledEntry("2020-01-03"), // filtered out
	}
	got := AggregateByDate(rows, ledger.StatusFilled, 2)
	assert.Equal(t, DateMap{"01/02/2020": 4, "01/03/2020": 2}, got)
}

func TestAggregateByDateDropsUnparsableDates(t *testing.T) {
	rows := []ledger.EntryTrade{
		filledEntry("2020-01-02"),
		filledEntry("not a date"),
	}
	got := AggregateByDate(rows, ledger.StatusFilled, 1)
	assert.Equal(t, DateMap{"01/02/2020": 1}, got)
}

func TestAggregateByDateEmptyStatusMatchesAll(t *testing.T) {
	rows := []ledger.EntryTrade{filledEntry("2020-01-02"), cancelledEntry("2020-01-02")}
	got := AggregateByDate(rows, "", 1)
	assert.Equal(t, DateMap{"01/02/2020": 2}, got)
}

func TestCumulativeSeries(t *testing.T) {
	m := DateMap{
		"01/03/2020": 1,
		"12/30/2019": 2, // earlier year sorts first despite lexical order
		"01/02/2020": 3,
	}
	got := CumulativeSeries(m)

	require.Len(t, got, len(m))
	assert.Equal(t, []Point{
		{Date: "12/30/2019", Value: 2},
		{Date: "01/02/2020", Value: 5},
		{Date: "01/03/2020", Value: 6},
	}, got)
}

func TestCumulativeSeriesEmpty(t *testing.T) {
	assert.Empty(t, CumulativeSeries(DateMap{}))
}

func TestPartitionConservation(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}
	even := func(n int) bool { return n%2 == 0 }

	in, out := Partition(rows, even)
	assert.Equal(t, []int{2, 4}, in)
	assert.Equal(t, []int{1, 3, 5}, out)
	assert.Equal(t, len(rows), len(in)+len(out))

	in, out = Partition(nil, even)
	assert.Equal(t, 0, len(in)+len(out))
}

func TestRatioZeroDenominator(t *testing.T) {
	assert.Equal(t, 1.0, ratio(0, 0))
	assert.Equal(t, 0.5, ratio(1, 2))
}
