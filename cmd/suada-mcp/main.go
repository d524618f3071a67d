// cmd/suada-mcp/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"suada-mcp/internal/common/config"
	"suada-mcp/internal/common/logger"
	"suada-mcp/internal/common/metrics"
	"suada-mcp/internal/suada"
	businessanalyst "suada-mcp/internal/tools/business-analyst"
	dataretrieval "suada-mcp/internal/tools/data-retrieval"
	"suada-mcp/pkg/registry"
)

const shutdownTimeout = 5 * time.Second

func main() {
	apiKey := flag.String("api-key", "", "Suada API key (overrides SUADA_API_KEY)")
	flag.Parse()

	// Bootstrap logger until config is loaded. Console output goes to stderr;
	// stdout belongs to the MCP stream.
	bootLog := logger.New("info", "console", "")
	defer bootLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	if *apiKey != "" {
		cfg.Suada.APIKey = *apiKey
	}

	// Fail fast before any tool is registered.
	if err := cfg.Validate(); err != nil {
		bootLog.Fatal("invalid configuration", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.File)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	suadaClient := suada.NewClient(cfg.Suada, log)

	reg := registry.New(log)
	reg.Register(registry.Definition{
		Name:         businessanalyst.ToolName,
		Description:  businessanalyst.Description,
		InputSchema:  businessanalyst.GetInputSchema(),
		OutputSchema: businessanalyst.GetOutputSchema(),
	}, businessanalyst.NewHandler(suadaClient, log).Handle)
	reg.Register(registry.Definition{
		Name:         dataretrieval.ToolName,
		Description:  dataretrieval.Description,
		InputSchema:  dataretrieval.GetInputSchema(),
		OutputSchema: dataretrieval.GetOutputSchema(),
	}, dataretrieval.NewHandler(suadaClient, log).Handle)

	s := server.NewMCPServer(
		cfg.Server.Name,
		cfg.Server.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	if err := reg.RegisterAll(s); err != nil {
		zapLog.Fatal("tool registration failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metricsSrv *metrics.Server
	if cfg.Metrics.Enabled {
		metricsSrv, err = metrics.NewServer(cfg.Metrics.Port, log)
		if err != nil {
			zapLog.Fatal("metrics listener failed to start", zap.Error(err))
		}
		metricsSrv.Start()
	}

	log.Info("starting suada MCP server", map[string]interface{}{
		"name":    cfg.Server.Name,
		"version": cfg.Server.Version,
		"baseUrl": cfg.Suada.BaseURL,
	})

	// Listen returns when stdin closes or a termination signal cancels ctx.
	serveErr := server.NewStdioServer(s).Listen(ctx, os.Stdin, os.Stdout)

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			zapLog.Warn("metrics listener shutdown failed", zap.Error(err))
		}
		cancel()
	}

	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		zapLog.Error("server error", zap.Error(serveErr))
		os.Exit(1)
	}
}
