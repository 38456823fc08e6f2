package ledger

import "github.com/google/uuid"

// NaturalKey is the legacy association between an entry and its exit or leg
// records: equality on date, expiration, both strikes and total costs. It is
// fragile (a formatting difference in any field silently misses), which is
// why rows get synthetic IDs at load time and the key survives only as the
// fallback used to establish those links.
type NaturalKey struct {
	Date        string
	Expiration  string
	ShortStrike Number
	LongStrike  Number
	TotalCosts  string
}

// Key returns the entry's natural key.
func (e EntryTrade) Key() NaturalKey {
	return NaturalKey{
		Date:        e.Date.DateKey(),
		Expiration:  e.Expiration.DateKey(),
		ShortStrike: e.StrikeShortPut,
		LongStrike:  e.StrikeLongPut,
		TotalCosts:  e.TotalCosts.StringFixed(2),
	}
}

// Key returns the exit's natural key.
func (x ExitTrade) Key() NaturalKey {
	return NaturalKey{
		Date:        x.Date.DateKey(),
		Expiration:  x.Expiration.DateKey(),
		ShortStrike: x.StrikeShortPut,
		LongStrike:  x.StrikeLongPut,
		TotalCosts:  x.TotalCosts.StringFixed(2),
	}
}

// LinkExits stamps each exit's EntryID by natural-key lookup against the
// entry set. Zero or one match is expected; when the key is ambiguous the
// first entry in input order wins and later duplicates are ignored. Exits
// without a match keep a nil EntryID.
func LinkExits(entries []EntryTrade, exits []ExitTrade) {
	byKey := make(map[NaturalKey]uuid.UUID, len(entries))
	for _, e := range entries {
		k := e.Key()
		if _, dup := byKey[k]; !dup {
			byKey[k] = e.ID
		}
	}
	for i := range exits {
		exits[i].EntryID = byKey[exits[i].Key()]
	}
}

// JoinExitReturn finds the realized return for an entry among the exit
// records: by synthetic ID when the link exists, by natural key otherwise.
// ok is false when no exit matches; the caller renders a placeholder, never
// an error.
func JoinExitReturn(entry EntryTrade, exits []ExitTrade) (Money, bool) {
	for _, x := range exits {
		if x.EntryID != uuid.Nil && x.EntryID == entry.ID {
			return x.ExpectedReturn, true
		}
	}
	key := entry.Key()
	for _, x := range exits {
		if x.Key() == key {
			return x.ExpectedReturn, true
		}
	}
	return Money{}, false
}
