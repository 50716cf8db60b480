// Package printer implements the "dumb" printing service: it accepts print
// jobs serially per-call but enforces no ordering of its own. Mutual
// exclusion across callers is the peer layer's responsibility entirely; any
// overlap observed here is a bug upstream, not something this package
// guards against.
package printer

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"distprint/internal/clock"
	"distprint/internal/logging"
	"distprint/internal/wire"
)

// Service implements wire.PrintingServiceServer.
type Service struct {
	wire.UnimplementedPrintingServiceServer

	clock    *clock.Clock
	log      *logging.Logger
	delayMin time.Duration
	delayMax time.Duration
}

// Config controls the simulated printing delay.
type Config struct {
	DelayMin time.Duration
	DelayMax time.Duration
}

// New constructs a Service. DelayMin must be <= DelayMax.
func New(cfg Config) *Service {
	return &Service{
		clock:    clock.New(),
		log:      logging.NewPrinterLogger(),
		delayMin: cfg.DelayMin,
		delayMax: cfg.DelayMax,
	}
}

// SendToPrinter merges the printer's clock with the job's timestamp, emits
// the job's log line as though the client printed it, sleeps for a random
// duration within the configured delay window to simulate the physical
// printer, advances the clock once more, and confirms.
func (s *Service) SendToPrinter(ctx context.Context, req *wire.PrintRequest) (*wire.PrintResponse, error) {
	s.clock.ReceiveEvent(uint64(req.GetLamportTimestamp()))

	logging.PrintLine(req.GetClientId(), req.GetLamportTimestamp(), req.GetMessageContent())

	delay := s.randomDelay()
	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	responseTimestamp := s.clock.Tick()
	s.log.Info(responseTimestamp, fmt.Sprintf("Confirmação enviada para cliente %d", req.GetClientId()))

	return wire.NewPrintResponse(
		true,
		fmt.Sprintf("Documento do cliente %d impresso com sucesso", req.GetClientId()),
		int64(responseTimestamp),
	), nil
}

func (s *Service) randomDelay() time.Duration {
	if s.delayMax <= s.delayMin {
		return s.delayMin
	}
	span := s.delayMax - s.delayMin
	return s.delayMin + time.Duration(rand.Int63n(int64(span)))
}
