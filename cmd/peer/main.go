// Command peer runs one node of the distributed printing coordination
// system: it answers other peers' mutual-exclusion RPCs, requests the
// printer on its own behalf at random intervals, and shuts down cleanly on
// SIGINT/SIGTERM.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"distprint/internal/logging"
	"distprint/internal/peer"
	"distprint/internal/wire"
	"distprint/internal/workload"
)

func main() {
	var (
		id              = flag.Int("id", 0, "unique peer identifier")
		port            = flag.Int("port", 0, "port this peer's gRPC server listens on")
		server          = flag.String("server", "", "printer address (host:port)")
		clients         = flag.String("clients", "", "comma-separated id@host:port of other peers")
		jobIntervalMin  = flag.Float64("job-interval-min", 5.0, "minimum seconds between print jobs")
		jobIntervalMax  = flag.Float64("job-interval-max", 10.0, "maximum seconds between print jobs")
		idSet           = false
		portSet         = false
	)
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "id" {
			idSet = true
		}
		if f.Name == "port" {
			portSet = true
		}
	})
	if !idSet {
		fmt.Fprintln(os.Stderr, "erro: --id é obrigatório")
		os.Exit(1)
	}
	if !portSet {
		fmt.Fprintln(os.Stderr, "erro: --port é obrigatório")
		os.Exit(1)
	}
	if *server == "" {
		fmt.Fprintln(os.Stderr, "erro: --server é obrigatório")
		os.Exit(1)
	}
	if *jobIntervalMin < 0 || *jobIntervalMax < 0 {
		fmt.Fprintln(os.Stderr, "erro: intervalos de job devem ser positivos")
		os.Exit(1)
	}
	if *jobIntervalMax < *jobIntervalMin {
		fmt.Fprintln(os.Stderr, "erro: --job-interval-max deve ser >= --job-interval-min")
		os.Exit(1)
	}

	peerAddrs, err := parsePeerList(*clients)
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro: %v\n", err)
		os.Exit(1)
	}

	log := logging.NewPeerLogger(int32(*id))

	registry, err := peer.NewRegistry(peerAddrs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao conectar a peers: %v\n", err)
		os.Exit(1)
	}

	printerConn, err := grpc.NewClient(*server, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao conectar ao servidor de impressão: %v\n", err)
		os.Exit(1)
	}
	printerClient := wire.NewPrintingServiceClient(printerConn)

	node := peer.NewNode(int32(*id), registry, printerClient, log)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao abrir porta %d: %v\n", *port, err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	wire.RegisterMutualExclusionServiceServer(grpcServer, node)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- grpcServer.Serve(lis)
	}()

	node.Start()

	gen := workload.NewGenerator(
		int32(*id),
		time.Duration(*jobIntervalMin*float64(time.Second)),
		time.Duration(*jobIntervalMax*float64(time.Second)),
		func(message string) {
			node.ExecutePrintJob(context.Background(), message)
		},
	)
	go gen.Run()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info(0, fmt.Sprintf("sinal %v recebido, encerrando", sig))
	case err := <-serveErr:
		fmt.Fprintf(os.Stderr, "erro no servidor gRPC: %v\n", err)
		os.Exit(1)
	}

	gen.Stop()
	node.Stop()
	grpcServer.GracefulStop()
}

// parsePeerList parses "id@host:port,id@host:port,..." into a map from
// peer identifier to address. An empty string yields an empty map.
func parsePeerList(s string) (map[int32]string, error) {
	peers := make(map[int32]string)
	if s == "" {
		return peers, nil
	}
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "@", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("formato de peer inválido (esperado id@host:port): %q", entry)
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("id de peer inválido em %q: %w", entry, err)
		}
		peers[int32(id)] = parts[1]
	}
	return peers, nil
}
