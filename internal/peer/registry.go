package peer

import (
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"distprint/internal/wire"
)

// Registry maps peer identifiers to their addresses and client stubs,
// populated once at startup from CLI configuration. Lookups go by
// identifier only; there is no lookup from an address back to an
// identifier. This
// replaces the fragile substring match on address strings that the
// reference implementation used to turn an incoming client_id back into a
// callable stub.
type Registry struct {
	mu      sync.RWMutex
	byID    map[int32]string
	clients map[int32]wire.MutualExclusionServiceClient
}

// NewRegistry builds a Registry and dials every peer address eagerly. Dial
// itself does not block on connection establishment (gRPC dials lazily),
// so an unreachable peer at startup is not fatal — it simply fails the
// first RPC against it, consistent with spec.md's "peer unreachable" seed
// scenario.
func NewRegistry(peers map[int32]string) (*Registry, error) {
	r := &Registry{
		byID:    make(map[int32]string, len(peers)),
		clients: make(map[int32]wire.MutualExclusionServiceClient, len(peers)),
	}
	for id, addr := range peers {
		conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, fmt.Errorf("dial peer %d at %s: %w", id, addr, err)
		}
		r.byID[id] = addr
		r.clients[id] = wire.NewMutualExclusionServiceClient(conn)
	}
	return r, nil
}

// IDs returns every peer identifier known to the registry, in no
// particular order.
func (r *Registry) IDs() []int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int32, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	return ids
}

// Len reports how many peers the registry knows about.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Client returns the client stub for a peer identifier, or false if the ID
// is unknown.
func (r *Registry) Client(id int32) (wire.MutualExclusionServiceClient, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clients[id]
	return c, ok
}

// Address returns the configured address for a peer identifier, or false
// if the ID is unknown.
func (r *Registry) Address(id int32) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	return a, ok
}
