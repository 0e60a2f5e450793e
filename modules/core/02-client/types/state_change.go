package types

// StateChange classifies how a transaction changed the existence of a client
// state key.
type StateChange int

const (
	// NotExists means the client state is absent before and after the transaction.
	NotExists StateChange = iota
	// Created means the transaction wrote a client state that did not exist.
	Created
	// Updated means the client state existed before and after the transaction.
	Updated
	// Deleted means the transaction removed an existing client state.
	Deleted
)

// NewStateChange classifies a change from the existence of the key before
// (pre) and after (post) the transaction.
func NewStateChange(pre, post bool) StateChange {
	switch {
	case !pre && post:
		return Created
	case pre && post:
		return Updated
	case pre && !post:
		return Deleted
	default:
		return NotExists
	}
}

func (sc StateChange) String() string {
	switch sc {
	case NotExists:
		return "NotExists"
	case Created:
		return "Created"
	case Updated:
		return "Updated"
	case Deleted:
		return "Deleted"
	default:
		return "Unknown"
	}
}
