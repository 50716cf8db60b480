package peer

import "fmt"

// State is the peer's position in the Ricart-Agrawala state machine.
// Legal transitions are IDLE -> WAITING -> HELD -> IDLE, plus WAITING -> IDLE
// when a request is aborted; no others exist.
type State int

const (
	Idle State = iota
	Waiting
	Held
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Waiting:
		return "WAITING"
	case Held:
		return "HELD"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
}

// PendingRequest is the peer's own outstanding critical-section attempt.
// At most one exists per peer at any time.
type PendingRequest struct {
	OwnID            int32
	RequestTimestamp int64
	RequestNumber    int32
}

// priority returns the (timestamp, id) pair used for strict total ordering
// between two requests contending for the critical section.
func (p *PendingRequest) priority() (int64, int32) {
	return p.RequestTimestamp, p.OwnID
}

// IncomingRequestRecord is a deferred reply owed to another peer. It is
// created when the local state machine defers an incoming AccessRequest and
// destroyed when the deferred grant is sent at release time. Keyed by
// PeerID: a later request from the same peer supersedes an earlier deferred
// one, since both represent the same waiting peer.
type IncomingRequestRecord struct {
	PeerID            int32
	PeerTimestamp     int64
	PeerRequestNumber int32
}

// higherPriority reports whether (ts, id) strictly precedes (otherTs,
// otherID) in the total order used to decide grant-vs-defer: smaller
// timestamp wins; ties broken by smaller peer identifier.
func higherPriority(ts int64, id int32, otherTs int64, otherID int32) bool {
	if ts != otherTs {
		return ts < otherTs
	}
	return id < otherID
}
