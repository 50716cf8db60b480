package wire

import (
	"context"
	"strconv"

	"google.golang.org/grpc/metadata"
)

// peerIDHeader carries the sender's peer identifier alongside an
// AccessResponse delivered through ReplyToAccessRequest. AccessResponse
// itself (§6 of the specification) carries only access_granted and
// lamport_timestamp — it is shared with the synchronous RequestAccess
// reply, where the identity of the sender is implicit in the RPC call
// itself. The asynchronous deferred-grant delivery has no such implicit
// sender, so the identifier travels as a gRPC header instead of widening
// the wire message.
const peerIDHeader = "x-peer-id"

// WithSenderID attaches the caller's peer identifier to an outgoing
// context for a ReplyToAccessRequest call.
func WithSenderID(ctx context.Context, id int32) context.Context {
	return metadata.AppendToOutgoingContext(ctx, peerIDHeader, strconv.FormatInt(int64(id), 10))
}

// SenderID extracts the peer identifier attached by WithSenderID from an
// incoming context. The second return value is false if no identifier was
// present.
func SenderID(ctx context.Context) (int32, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return 0, false
	}
	values := md.Get(peerIDHeader)
	if len(values) == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(values[0], 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}
