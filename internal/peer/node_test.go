package peer

import (
	"context"
	"testing"

	"google.golang.org/grpc/metadata"

	"distprint/internal/logging"
	"distprint/internal/wire"
)

func newTestNode(t *testing.T, id int32) *Node {
	t.Helper()
	registry, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return NewNode(id, registry, nil, logging.NewPeerLogger(id))
}

func TestRequestAccessGrantsWhenIdle(t *testing.T) {
	n := newTestNode(t, 1)
	resp, err := n.RequestAccess(context.Background(), wire.NewAccessRequest(2, 5, 1))
	if err != nil {
		t.Fatalf("RequestAccess: %v", err)
	}
	if !resp.GetAccessGranted() {
		t.Fail()
	}
}

func TestRequestAccessDefersWhenHeld(t *testing.T) {
	n := newTestNode(t, 1)
	n.state = Held

	resp, err := n.RequestAccess(context.Background(), wire.NewAccessRequest(2, 5, 1))
	if err != nil {
		t.Fatalf("RequestAccess: %v", err)
	}
	if resp.GetAccessGranted() {
		t.Fail()
	}
	if _, ok := n.deferred[2]; !ok {
		t.Fail()
	}
}

func TestRequestAccessWhileWaitingGrantsEarlierTimestamp(t *testing.T) {
	n := newTestNode(t, 5)
	n.state = Waiting
	n.pending = &PendingRequest{OwnID: 5, RequestTimestamp: 10, RequestNumber: 1}

	resp, err := n.RequestAccess(context.Background(), wire.NewAccessRequest(2, 3, 1))
	if err != nil {
		t.Fatalf("RequestAccess: %v", err)
	}
	if !resp.GetAccessGranted() {
		t.Fail()
	}
}

func TestRequestAccessWhileWaitingDefersLaterTimestamp(t *testing.T) {
	n := newTestNode(t, 5)
	n.state = Waiting
	n.pending = &PendingRequest{OwnID: 5, RequestTimestamp: 10, RequestNumber: 1}

	resp, err := n.RequestAccess(context.Background(), wire.NewAccessRequest(2, 20, 1))
	if err != nil {
		t.Fatalf("RequestAccess: %v", err)
	}
	if resp.GetAccessGranted() {
		t.Fail()
	}
}

func TestRequestAccessWhileWaitingTiesBreakByID(t *testing.T) {
	n := newTestNode(t, 5)
	n.state = Waiting
	n.pending = &PendingRequest{OwnID: 5, RequestTimestamp: 10, RequestNumber: 1}

	losing, err := n.RequestAccess(context.Background(), wire.NewAccessRequest(9, 10, 1))
	if err != nil {
		t.Fatalf("RequestAccess: %v", err)
	}
	if losing.GetAccessGranted() {
		t.Fail()
	}

	n.pending = &PendingRequest{OwnID: 5, RequestTimestamp: 10, RequestNumber: 1}
	winning, err := n.RequestAccess(context.Background(), wire.NewAccessRequest(2, 10, 1))
	if err != nil {
		t.Fatalf("RequestAccess: %v", err)
	}
	if !winning.GetAccessGranted() {
		t.Fail()
	}
}

func TestReleaseAccessWithoutHoldLogsAndDoesNotPanic(t *testing.T) {
	n := newTestNode(t, 1)
	if _, err := n.ReleaseAccess(context.Background(), wire.NewAccessRelease(2, 3, 1)); err != nil {
		t.Fatalf("ReleaseAccess: %v", err)
	}
}

func TestReplyToAccessRequestWithoutSenderIDIsIgnored(t *testing.T) {
	n := newTestNode(t, 1)
	n.state = Waiting
	n.pending = &PendingRequest{OwnID: 1, RequestTimestamp: 1, RequestNumber: 1}
	n.outstanding = map[int32]bool{2: true}
	n.received = map[int32]bool{}

	if _, err := n.ReplyToAccessRequest(context.Background(), wire.NewAccessResponse(true, 9)); err != nil {
		t.Fatalf("ReplyToAccessRequest: %v", err)
	}
	if !n.outstanding[2] {
		t.Fail()
	}
}

func TestReplyToAccessRequestMarksReceived(t *testing.T) {
	n := newTestNode(t, 1)
	n.state = Waiting
	n.pending = &PendingRequest{OwnID: 1, RequestTimestamp: 1, RequestNumber: 1}
	n.outstanding = map[int32]bool{2: true}
	n.received = map[int32]bool{}

	md := metadata.Pairs("x-peer-id", "2")
	ctx := metadata.NewIncomingContext(context.Background(), md)

	if _, err := n.ReplyToAccessRequest(ctx, wire.NewAccessResponse(true, 9)); err != nil {
		t.Fatalf("ReplyToAccessRequest: %v", err)
	}
	if n.outstanding[2] {
		t.Fail()
	}
	if !n.received[2] {
		t.Fail()
	}
}

func TestInitiateWithNoPeersEntersHeldImmediately(t *testing.T) {
	n := newTestNode(t, 1)
	reqNum, err := n.Initiate(context.Background())
	if err != nil {
		t.Fatalf("Initiate: %v", err)
	}
	if reqNum != 1 {
		t.Fail()
	}
	if n.state != Held {
		t.Fail()
	}
}

func TestInitiateWhileActiveReturnsErrAlreadyActive(t *testing.T) {
	n := newTestNode(t, 1)
	if _, err := n.Initiate(context.Background()); err != nil {
		t.Fatalf("Initiate: %v", err)
	}
	if _, err := n.Initiate(context.Background()); err != ErrAlreadyActive {
		t.Fail()
	}
}

func TestReleaseReturnsToIdleAndClearsDeferred(t *testing.T) {
	n := newTestNode(t, 1)
	n.state = Held
	n.pending = &PendingRequest{OwnID: 1, RequestTimestamp: 1, RequestNumber: 1}
	n.deferred[2] = &IncomingRequestRecord{PeerID: 2, PeerTimestamp: 1, PeerRequestNumber: 1}

	n.Release()

	if n.state != Idle {
		t.Fail()
	}
	if len(n.deferred) != 0 {
		t.Fail()
	}
}

func TestReleaseWithoutHoldLogsWarningAndDoesNotPanic(t *testing.T) {
	n := newTestNode(t, 1)
	n.Release()
	if n.state != Idle {
		t.Fail()
	}
}
