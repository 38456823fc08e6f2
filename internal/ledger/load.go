package ledger

import "github.com/google/uuid"

// AssignIDs gives every freshly decoded row its synthetic identifier. Called
// once per load, before any linking; IDs are never re-issued afterwards.
func AssignIDs(entries []EntryTrade, exits []ExitTrade, longs, shorts []LegTrade) {
	for i := range entries {
		entries[i].ID = uuid.New()
	}
	for i := range exits {
		exits[i].ID = uuid.New()
	}
	for i := range longs {
		longs[i].ID = uuid.New()
	}
	for i := range shorts {
		shorts[i].ID = uuid.New()
	}
}
