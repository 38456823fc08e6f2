package ledger

// Status is the lifecycle state of a trade record. Exactly one status governs
// which derived table a record appears in. The record set is a point-in-time
// snapshot; no transition out of a terminal state is ever observed here.
type Status string

const (
	// StatusFilled marks an active put-spread whose both legs filled.
	StatusFilled Status = "Filled"
	// StatusPartialCancelled marks an order that never fully filled. The
	// wire spelling "Partial/Cancelled" is preserved as-is.
	StatusPartialCancelled Status = "Partial/Cancelled"
	// StatusExited marks a spread closed early at market.
	StatusExited Status = "Exited"
	// StatusExercised marks a leg settled against its strike at expiry.
	StatusExercised Status = "Exercised"
)

// Terminal reports whether no further transition is modeled for s.
func (s Status) Terminal() bool {
	switch s {
	case StatusExited, StatusExercised, StatusPartialCancelled:
		return true
	}
	return false
}

// Active reports whether the record belongs in the active-trades table. The
// site shows everything that has not been exited there, cancellations
// included, and the tables keep that behavior.
func (s Status) Active() bool {
	return s != StatusExited
}
