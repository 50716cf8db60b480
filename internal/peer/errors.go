package peer

import "errors"

var (
	// ErrAlreadyActive is returned by Initiate when the peer already has a
	// pending or held request. Per the workload-generator coupling note, a
	// second job generated while the first is still outstanding is
	// dropped, not queued.
	ErrAlreadyActive = errors.New("peer already has an outstanding or held request")

	// ErrRequestAborted is returned by Initiate when the request is given
	// up before every peer granted it: a peer broadcast could not reach
	// every other peer after retrying, or the node was stopped while
	// waiting. The requester returns to IDLE rather than unsafely treating
	// the missing replies as grants.
	ErrRequestAborted = errors.New("access request aborted before every peer granted access")
)
