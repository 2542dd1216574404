package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"

	"github.com/cuemby/ledgerd/pkg/blockstore"
	"github.com/cuemby/ledgerd/pkg/config"
	"github.com/cuemby/ledgerd/pkg/entrycodec"
	"github.com/cuemby/ledgerd/pkg/forwarding"
	"github.com/cuemby/ledgerd/pkg/gossip"
	"github.com/cuemby/ledgerd/pkg/httpapi"
	"github.com/cuemby/ledgerd/pkg/kvstore"
	"github.com/cuemby/ledgerd/pkg/logging"
	"github.com/cuemby/ledgerd/pkg/metrics"
	"github.com/cuemby/ledgerd/pkg/rpcoracle"
	"github.com/cuemby/ledgerd/pkg/tpuconn"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the blockstore reader and forwarding service",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("data-dir", "", "Override config dataDir")
	serveCmd.Flags().String("http-addr", "", "Override config http.addr")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		cfg.Spec.DataDir = dataDir
	}
	if httpAddr, _ := cmd.Flags().GetString("http-addr"); httpAddr != "" {
		cfg.Spec.HTTP.Addr = httpAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := kvstore.Open(cfg.Spec.DataDir)
	if err != nil {
		return fmt.Errorf("ledgerd: open store: %w", err)
	}
	defer store.Close()

	reader := blockstore.NewReader(store, passthroughShredCodec{}, passthroughDeshredder{}, entrycodec.New(), metrics.ReaderCounters{})
	reader.SetLogger(logging.BlockstoreLogger{})

	rpcClient := rpc.New(cfg.Spec.RPC.Endpoint)
	oracle := rpcoracle.New(rpcClient)

	contacts := gossip.NewContactTable(cfg.Spec.Gossip.ContactMaxAge.Dur())
	sender := tpuconn.NewSender()

	service := forwarding.NewService(forwarding.Config{
		Oracle:        oracle,
		Gossip:        contacts,
		TPU:           sender,
		Logger:        logging.ForwardingLogger{},
		InboundBuffer: cfg.Spec.Forward.InboundBuffer,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := service.Start(ctx); err != nil {
		return fmt.Errorf("ledgerd: start forwarding service: %w", err)
	}
	defer service.Stop()
	metrics.Configure(reader, service)

	pruner := gossip.NewPruner(contacts, cfg.Spec.Gossip.PruneInterval.Dur())
	go pruner.Run(ctx)

	collector := metrics.NewCollector(reader, service)
	collector.Start()
	defer collector.Stop()

	httpServer := httpapi.New(cfg.Spec.HTTP.Addr)
	go func() {
		if err := httpServer.Start(); err != nil {
			logging.Logger.Error().Err(err).Msg("http server stopped")
		}
	}()

	logging.Logger.Info().
		Str("data_dir", cfg.Spec.DataDir).
		Str("http_addr", cfg.Spec.HTTP.Addr).
		Str("rpc_endpoint", cfg.Spec.RPC.Endpoint).
		Msg("ledgerd started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logging.Logger.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return httpServer.Shutdown(shutdownCtx)
}
