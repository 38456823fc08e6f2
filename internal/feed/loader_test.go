package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const entriesCSV = `Date,Option expiration date,Strike short put,Strike long put,Status,Qty Buy,Qty Sell,Total Costs,Total Commissions,Current Expiry Value,AVG Expiry Value
2020-01-02 15:30:00,2020-01-17,20,15,Filled,1,1,-1.25,0.50,3.00,5.00
2020-01-03 10:00:00,2020-01-24,21,16,Partial/Cancelled,1,0,-1.10,0.25,0.00,4.00
`

// The exit header has shipped with a trailing space after "Expected return";
// the fixture keeps it to pin the normalization down.
const exitsCSV = "Date,Option expiration date,Strike short put,Strike long put,Status,Qty Buy,Qty Sell,Total Costs,Current Value of sell leg,Current Expiry Value,Expected return \n" +
	"2020-01-02 16:00:00,2020-01-17,20,15,Exited,1,1,-1.25,4.20,3.00,2.75\n"

func writeFixtures(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestLoaderFromDir(t *testing.T) {
	dir := writeFixtures(t, map[string]string{
		DatasetEntries: entriesCSV,
		DatasetExits:   exitsCSV,
	})
	loader := NewLoader(NewDirSource(dir))

	snap := loader.Load(context.Background())

	require.Len(t, snap.Entries, 2)
	require.Len(t, snap.Exits, 1)
	assert.Empty(t, snap.LongLegs, "missing dataset loads empty")
	assert.Empty(t, snap.ShortLegs)
	assert.Empty(t, snap.Strategies)
	assert.False(t, snap.FetchedAt.IsZero())

	e := snap.Entries[0]
	assert.Equal(t, "01/02/2020", e.Date.DateKey())
	assert.Equal(t, "-1.25", e.TotalCosts.Display())
	assert.Equal(t, 20.0, float64(e.StrikeShortPut))

	// The trailing-space header still lands in ExpectedReturn.
	assert.Equal(t, "2.75", snap.Exits[0].ExpectedReturn.Display())

	// IDs assigned, exit linked to its entry by natural key.
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, e.ID, snap.Exits[0].EntryID)
}

func TestLoaderToleratesMalformedRows(t *testing.T) {
	ragged := "Date,Option expiration date,Strike short put,Strike long put,Status,Qty Buy,Qty Sell,Total Costs,Total Commissions,Current Expiry Value,AVG Expiry Value\n" +
		"2020-01-02,2020-01-17,20,15,Filled\n" + // short row, padded
		"garbage-date,2020-01-17,not-a-number,15,Filled,1,1,bad,,,\n"
	dir := writeFixtures(t, map[string]string{DatasetEntries: ragged})
	loader := NewLoader(NewDirSource(dir))

	snap := loader.Load(context.Background())

	require.Len(t, snap.Entries, 2)
	assert.Equal(t, "0.00", snap.Entries[0].TotalCosts.Display())
	assert.True(t, snap.Entries[1].Date.IsZero())
	assert.Equal(t, 0.0, float64(snap.Entries[1].StrikeShortPut))
}

func TestLoaderFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/data/"+DatasetEntries {
			w.Write([]byte(entriesCSV))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	src, err := NewHTTPSource(srv.URL+"/data/", 0, 100)
	require.NoError(t, err)
	loader := NewLoader(src)

	snap := loader.Load(context.Background())

	assert.Len(t, snap.Entries, 2)
	assert.Empty(t, snap.Exits, "404 datasets load empty")
}

func TestHTTPSourceRejectsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	src, err := NewHTTPSource(srv.URL+"/", 0, 100)
	require.NoError(t, err)

	_, err = src.Fetch(context.Background(), DatasetEntries)
	assert.Error(t, err)
}

func TestDecodeEmptyInput(t *testing.T) {
	dir := writeFixtures(t, map[string]string{DatasetEntries: ""})
	loader := NewLoader(NewDirSource(dir))

	snap := loader.Load(context.Background())
	assert.Empty(t, snap.Entries)
}
