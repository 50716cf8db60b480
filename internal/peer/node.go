// Package peer implements one node of the Ricart-Agrawala mutual exclusion
// protocol: the gRPC handlers that answer other peers' requests, and the
// client-side logic that requests, waits for, and releases access to the
// shared printer.
package peer

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"distprint/internal/clock"
	"distprint/internal/logging"
	"distprint/internal/wire"
)

const (
	rpcTimeout     = 5 * time.Second
	printTimeout   = 10 * time.Second
	maxRPCAttempts = 3
	statusInterval = 5 * time.Second
)

// Node is one peer in the mutual exclusion group. It holds the logical
// clock, the peer registry, the printer client, and the Ricart-Agrawala
// state machine. The zero value is not usable; construct with NewNode.
type Node struct {
	wire.UnimplementedMutualExclusionServiceServer

	id            int32
	clock         *clock.Clock
	log           *logging.Logger
	registry      *Registry
	printerClient wire.PrintingServiceClient

	mu             sync.Mutex
	cond           *sync.Cond
	state          State
	pending        *PendingRequest
	requestCounter int32
	deferred       map[int32]*IncomingRequestRecord
	outstanding    map[int32]bool
	received       map[int32]bool

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewNode constructs a Node. registry and printerClient must already be
// dialed; Node never creates connections itself.
func NewNode(id int32, registry *Registry, printerClient wire.PrintingServiceClient, log *logging.Logger) *Node {
	n := &Node{
		id:            id,
		clock:         clock.New(),
		log:           log,
		registry:      registry,
		printerClient: printerClient,
		state:         Idle,
		deferred:      make(map[int32]*IncomingRequestRecord),
		stopCh:        make(chan struct{}),
	}
	n.cond = sync.NewCond(&n.mu)
	return n
}

// Start launches the node's background goroutines: the condition-variable
// pinger that bounds how long a waiter can block, and the status reporter.
// Call once per Node.
func (n *Node) Start() {
	go n.condPinger()
	go n.runStatusReporter()
}

// Stop halts the node's background goroutines. Safe to call more than once.
func (n *Node) Stop() {
	n.stopOnce.Do(func() {
		close(n.stopCh)
	})
}

// condPinger wakes every goroutine blocked in Initiate roughly once a
// second, so a waiter notices node shutdown and re-evaluates its exit
// condition even absent a real reply.
func (n *Node) condPinger() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-n.stopCh:
			n.cond.Broadcast()
			return
		case <-ticker.C:
			n.cond.Broadcast()
		}
	}
}

func (n *Node) runStatusReporter() {
	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()
	for {
		select {
		case <-n.stopCh:
			return
		case <-ticker.C:
			n.mu.Lock()
			state := n.state
			outstanding := len(n.outstanding)
			n.mu.Unlock()
			ts := n.clock.Get()
			n.log.Info(ts, fmt.Sprintf("status: estado=%s aguardando=%d", state, outstanding))
		}
	}
}

// ---- gRPC server handlers ----

// RequestAccess answers another peer's bid for the critical section,
// granting or deferring per the decision table: grant while IDLE, always
// defer while HELD, and while WAITING grant only to a strictly
// higher-priority (earlier timestamp, then lower id) request.
func (n *Node) RequestAccess(ctx context.Context, req *wire.AccessRequest) (*wire.AccessResponse, error) {
	n.clock.ReceiveEvent(uint64(req.GetLamportTimestamp()))

	n.mu.Lock()
	var grant bool
	switch n.state {
	case Idle:
		grant = true
	case Held:
		grant = false
	case Waiting:
		grant = higherPriority(req.GetLamportTimestamp(), req.GetClientId(), n.pending.RequestTimestamp, n.pending.OwnID)
	}

	if !grant {
		n.deferred[req.GetClientId()] = &IncomingRequestRecord{
			PeerID:            req.GetClientId(),
			PeerTimestamp:     req.GetLamportTimestamp(),
			PeerRequestNumber: req.GetRequestNumber(),
		}
		ts := n.clock.Tick()
		n.mu.Unlock()
		n.log.Info(ts, fmt.Sprintf("requisição de acesso do cliente %d (TS %d) adiada", req.GetClientId(), req.GetLamportTimestamp()))
		return wire.NewAccessResponse(false, int64(ts)), nil
	}
	n.mu.Unlock()
	ts := n.clock.SendEvent()
	n.log.Info(ts, fmt.Sprintf("requisição de acesso do cliente %d (TS %d) concedida", req.GetClientId(), req.GetLamportTimestamp()))
	return wire.NewAccessResponse(true, int64(ts)), nil
}

// ReleaseAccess records that a peer has finished its critical section. It
// is informational only — the releasing peer already sent any deferred
// grants directly via ReplyToAccessRequest.
func (n *Node) ReleaseAccess(ctx context.Context, rel *wire.AccessRelease) (*wire.Empty, error) {
	ts := n.clock.ReceiveEvent(uint64(rel.GetLamportTimestamp()))
	n.log.Info(ts, fmt.Sprintf("cliente %d liberou o acesso (TS %d)", rel.GetClientId(), rel.GetLamportTimestamp()))
	return &wire.Empty{}, nil
}

// ReplyToAccessRequest delivers a grant that was deferred earlier. The
// sender's identity travels as a header (see wire.WithSenderID) since
// AccessResponse itself carries no peer identifier.
func (n *Node) ReplyToAccessRequest(ctx context.Context, resp *wire.AccessResponse) (*wire.Empty, error) {
	n.clock.ReceiveEvent(uint64(resp.GetLamportTimestamp()))

	senderID, ok := wire.SenderID(ctx)
	if !ok {
		n.log.Warning(n.clock.Get(), "ReplyToAccessRequest sem identificador de remetente; ignorando")
		return &wire.Empty{}, nil
	}

	n.mu.Lock()
	if n.state == Waiting && resp.GetAccessGranted() && n.outstanding[senderID] {
		delete(n.outstanding, senderID)
		n.received[senderID] = true
	}
	n.mu.Unlock()
	n.cond.Broadcast()
	return &wire.Empty{}, nil
}

// ---- client-side protocol ----

// Initiate requests access to the critical section and blocks until every
// peer has replied affirmatively (directly or via a deferred grant), until
// a peer proves unreachable, or until the node is stopped. It returns the
// request number assigned
// to this attempt, used to correlate the subsequent print job.
func (n *Node) Initiate(ctx context.Context) (int32, error) {
	n.mu.Lock()
	if n.state != Idle {
		n.log.Warning(n.clock.Get(), "nova requisição ignorada: já existe requisição pendente ou acesso em uso")
		n.mu.Unlock()
		return 0, ErrAlreadyActive
	}
	n.requestCounter++
	reqNum := n.requestCounter
	ts := int64(n.clock.SendEvent())
	n.pending = &PendingRequest{OwnID: n.id, RequestTimestamp: ts, RequestNumber: reqNum}
	ids := n.registry.IDs()
	n.outstanding = make(map[int32]bool, len(ids))
	for _, id := range ids {
		n.outstanding[id] = true
	}
	n.received = make(map[int32]bool, len(ids))
	n.state = Waiting
	n.mu.Unlock()

	n.log.Info(uint64(ts), fmt.Sprintf("solicitando acesso (requisição #%d, TS %d)", reqNum, ts))

	if len(ids) == 0 {
		n.mu.Lock()
		n.state = Held
		n.mu.Unlock()
		return reqNum, nil
	}

	broadcastCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var aborted atomic.Bool
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(peerID int32) {
			defer wg.Done()
			n.requestFromPeer(broadcastCtx, peerID, ts, reqNum, &aborted)
		}(id)
	}

	n.mu.Lock()
	stopped := false
	for len(n.outstanding) > 0 && !aborted.Load() && !stopped {
		select {
		case <-n.stopCh:
			stopped = true
		default:
			n.cond.Wait()
		}
	}
	failed := aborted.Load() || stopped
	if failed {
		n.state = Idle
		n.pending = nil
	} else {
		n.state = Held
	}
	n.mu.Unlock()

	cancel()
	wg.Wait()

	if failed {
		if stopped {
			n.log.Error(n.clock.Get(), "requisição de acesso abortada: nó encerrando")
		} else {
			n.log.Error(n.clock.Get(), "requisição de acesso abortada: peer inalcançável")
		}
		return 0, ErrRequestAborted
	}
	n.log.Info(n.clock.Get(), "acesso concedido: todas as respostas recebidas")
	return reqNum, nil
}

// requestFromPeer sends one AccessRequest RPC, retrying on transient
// transport errors with capped exponential backoff. An RPC error is never
// treated as an implicit grant: on exhausting retries it marks the whole
// request as aborted rather than letting the requester enter the critical
// section without every peer's consent.
func (n *Node) requestFromPeer(ctx context.Context, peerID int32, ts int64, reqNum int32, aborted *atomic.Bool) {
	client, ok := n.registry.Client(peerID)
	if !ok {
		n.log.Error(n.clock.Get(), fmt.Sprintf("peer %d desconhecido no registro", peerID))
		aborted.Store(true)
		n.cond.Broadcast()
		return
	}

	req := wire.NewAccessRequest(n.id, ts, reqNum)
	var lastErr error
	for attempt := 1; attempt <= maxRPCAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, rpcTimeout)
		resp, err := client.RequestAccess(callCtx, req)
		cancel()
		if err == nil {
			n.clock.ReceiveEvent(uint64(resp.GetLamportTimestamp()))
			if resp.GetAccessGranted() {
				n.mu.Lock()
				delete(n.outstanding, peerID)
				n.received[peerID] = true
				n.mu.Unlock()
				n.cond.Broadcast()
			}
			return
		}

		lastErr = err
		if !isTransient(err) || attempt == maxRPCAttempts {
			break
		}
		if ctx.Err() != nil {
			return
		}
		wait := backoff(attempt)
		n.log.Warning(n.clock.Get(), fmt.Sprintf("erro transitório ao contatar peer %d, nova tentativa em %s", peerID, wait))
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return
		}
	}

	n.log.Error(n.clock.Get(), fmt.Sprintf("falha ao enviar AccessRequest para peer %d: %v", peerID, lastErr))
	aborted.Store(true)
	n.cond.Broadcast()
}

// Release ends the current critical section, delivers any deferred grants
// in (timestamp, id) priority order, and broadcasts an informational
// release to every peer.
func (n *Node) Release() {
	n.mu.Lock()
	if n.state != Held {
		n.log.Warning(n.clock.Get(), "liberação solicitada sem acesso concedido")
		n.mu.Unlock()
		return
	}
	ts := int64(n.clock.SendEvent())
	deferredSnapshot := n.deferred
	n.deferred = make(map[int32]*IncomingRequestRecord)
	reqNum := int32(0)
	if n.pending != nil {
		reqNum = n.pending.RequestNumber
	}
	n.state = Idle
	n.pending = nil
	peerIDs := n.registry.IDs()
	n.mu.Unlock()

	n.log.Info(uint64(ts), fmt.Sprintf("liberando acesso, %d resposta(s) adiada(s) pendente(s)", len(deferredSnapshot)))

	ordered := make([]*IncomingRequestRecord, 0, len(deferredSnapshot))
	for _, rec := range deferredSnapshot {
		ordered = append(ordered, rec)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return higherPriority(ordered[i].PeerTimestamp, ordered[i].PeerID, ordered[j].PeerTimestamp, ordered[j].PeerID)
	})
	for _, rec := range ordered {
		n.sendDeferredGrant(rec.PeerID)
	}

	for _, id := range peerIDs {
		go n.sendRelease(id, ts, reqNum)
	}
}

func (n *Node) sendDeferredGrant(peerID int32) {
	client, ok := n.registry.Client(peerID)
	if !ok {
		n.log.Error(n.clock.Get(), fmt.Sprintf("peer %d desconhecido ao entregar resposta adiada", peerID))
		return
	}
	ts := int64(n.clock.Tick())
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	ctx = wire.WithSenderID(ctx, n.id)
	_, err := client.ReplyToAccessRequest(ctx, wire.NewAccessResponse(true, ts))
	if err != nil {
		n.log.Error(n.clock.Get(), fmt.Sprintf("erro ao entregar resposta adiada ao cliente %d: %v", peerID, err))
		return
	}
	n.log.Info(n.clock.Get(), fmt.Sprintf("resposta adiada entregue ao cliente %d", peerID))
}

func (n *Node) sendRelease(peerID int32, ts int64, reqNum int32) {
	client, ok := n.registry.Client(peerID)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	_, err := client.ReleaseAccess(ctx, wire.NewAccessRelease(n.id, ts, reqNum))
	if err != nil {
		n.log.Error(n.clock.Get(), fmt.Sprintf("erro ao notificar liberação ao peer %d: %v", peerID, err))
	}
}

// PrintDocument sends one job to the printer, retrying on transient
// transport errors with capped exponential backoff. It reports whether the
// printer ultimately confirmed the job.
func (n *Node) PrintDocument(ctx context.Context, messageContent string, requestNumber int32) bool {
	for attempt := 1; attempt <= maxRPCAttempts; attempt++ {
		ts := int64(n.clock.SendEvent())
		req := wire.NewPrintRequest(n.id, messageContent, ts, requestNumber)
		n.log.Info(uint64(ts), fmt.Sprintf("enviando documento para impressão: %s", messageContent))

		callCtx, cancel := context.WithTimeout(ctx, printTimeout)
		resp, err := n.printerClient.SendToPrinter(callCtx, req)
		cancel()

		if err == nil {
			n.clock.ReceiveEvent(uint64(resp.GetLamportTimestamp()))
			if resp.GetSuccess() {
				n.log.Info(n.clock.Get(), fmt.Sprintf("impressão confirmada: %s", resp.GetConfirmationMessage()))
				return true
			}
			n.log.Error(n.clock.Get(), "servidor de impressão reportou falha")
			return false
		}

		n.clock.Tick()
		if !isTransient(err) || attempt == maxRPCAttempts {
			n.log.Error(n.clock.Get(), fmt.Sprintf("erro ao comunicar com o servidor de impressão: %v", err))
			return false
		}
		wait := backoff(attempt)
		n.log.Warning(n.clock.Get(), fmt.Sprintf("tentando impressão novamente em %s (tentativa %d/%d)", wait, attempt, maxRPCAttempts))
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return false
		}
	}
	return false
}

// ExecutePrintJob runs the full workflow for one job: request access,
// print, release. Errors already logged by their stage are not surfaced
// further since the caller (the workload generator) has no retry of its
// own — a failed job is simply dropped.
func (n *Node) ExecutePrintJob(ctx context.Context, messageContent string) {
	reqNum, err := n.Initiate(ctx)
	if err != nil {
		return
	}
	n.PrintDocument(ctx, messageContent, reqNum)
	n.Release()
}

func backoff(attempt int) time.Duration {
	wait := time.Duration(1<<uint(attempt)) * time.Second
	if wait > 10*time.Second {
		wait = 10 * time.Second
	}
	return wait
}

func isTransient(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return true
	default:
		return false
	}
}
