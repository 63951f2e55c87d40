package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"academic-assistant-be/internal/bootstrap"
	"academic-assistant-be/internal/config"
	"academic-assistant-be/internal/pkg/logger"
	"academic-assistant-be/internal/server"
	"academic-assistant-be/internal/tracer"

	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg := config.Load()

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	defer sysLogger.Sync()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(ctx, cfg.App.OtelEnabled, sysLogger)
	defer shutdownTracer(context.Background())

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(ctx, cfg, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	// 4. Initialize Server
	srv := server.New(cfg, container)

	g, gctx := errgroup.WithContext(ctx)

	// 5. Background Services
	g.Go(func() error {
		sysLogger.Info("Main", "Starting usage event consumer", nil)
		return container.ConsumerService.Consume(gctx)
	})

	// 6. Run Server
	g.Go(srv.Run)

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		sysLogger.Info("Main", "Shutting down", nil)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return container.PubSub.Close()
	})

	if err := g.Wait(); err != nil {
		sysLogger.Error("Main", "Server stopped with error", map[string]interface{}{"error": err})
	}
}
