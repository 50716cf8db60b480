// Command printer runs the "dumb" printing service: it accepts jobs,
// simulates a print delay, and confirms. It takes no part in the mutual
// exclusion protocol; any ordering it observes is the peers' doing.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"distprint/internal/printer"
	"distprint/internal/wire"
)

func main() {
	var (
		port     = flag.Int("port", 50051, "port this printer listens on")
		delayMin = flag.Float64("delay-min", 2.0, "minimum simulated print delay in seconds")
		delayMax = flag.Float64("delay-max", 3.0, "maximum simulated print delay in seconds")
	)
	flag.Parse()

	if *delayMin < 0 || *delayMax < 0 {
		fmt.Fprintln(os.Stderr, "erro: atrasos devem ser positivos")
		os.Exit(1)
	}
	if *delayMax < *delayMin {
		fmt.Fprintln(os.Stderr, "erro: --delay-max deve ser >= --delay-min")
		os.Exit(1)
	}

	svc := printer.New(printer.Config{
		DelayMin: time.Duration(*delayMin * float64(time.Second)),
		DelayMax: time.Duration(*delayMax * float64(time.Second)),
	})

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao abrir porta %d: %v\n", *port, err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	wire.RegisterPrintingServiceServer(grpcServer, svc)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- grpcServer.Serve(lis)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-serveErr:
		fmt.Fprintf(os.Stderr, "erro no servidor gRPC: %v\n", err)
		os.Exit(1)
	}

	grpcServer.GracefulStop()
}
