// Command seqr-query-server runs the fan-out variant query server: flag
// and environment parsing, backend wiring, and the gRPC serve loop.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"

	"github.com/populationgenomics/seqr-query-backend/internal/querier"
	"github.com/populationgenomics/seqr-query-backend/pkg/urlreader"
	"github.com/populationgenomics/seqr-query-backend/pkg/workerpool"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logger := log.NewLogfmtLogger(os.Stderr)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	var cfg querier.Config
	cfg.RegisterFlagsAndApplyDefaults("", flag.CommandLine)
	flag.Parse()

	port, err := portFromEnv()
	if err != nil {
		return err
	}

	ctx := context.Background()
	gcsReader, err := urlreader.NewGCS(ctx)
	if err != nil {
		return fmt.Errorf("failed to create GCS reader: %w", err)
	}
	defer gcsReader.Close()

	reader := urlreader.NewSchemeRouter(map[string]urlreader.Reader{
		"file://": urlreader.NewLocal(),
		"gs://":   gcsReader,
	})

	pool := workerpool.New(cfg.WorkerPool)
	defer pool.Shutdown()

	coordinator := &querier.Coordinator{
		Reader: reader,
		Pool:   pool,
		Logger: logger,
	}
	service := &querier.Service{Coordinator: coordinator}

	listener, err := net.Listen("tcp", fmt.Sprintf("[::]:%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", port, err)
	}

	server := grpc.NewServer()
	querier.Register(server, service)

	level.Info(logger).Log("msg", "starting server", "port", port)
	return server.Serve(listener)
}

func portFromEnv() (int, error) {
	raw, ok := os.LookupEnv("PORT")
	if !ok {
		return 0, fmt.Errorf("PORT environment variable not set")
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse PORT environment variable: %w", err)
	}
	return port, nil
}
