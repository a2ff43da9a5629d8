package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payment-registry/internal/application"
	"payment-registry/internal/config"
	"payment-registry/internal/domain"
	"payment-registry/internal/infra/database"
	http_infra "payment-registry/internal/infra/http"
	redis_impl "payment-registry/internal/infra/redis"
	"payment-registry/internal/pprof"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	pprof.Start(cfg.PprofAddr)

	store := database.NewJSONStore(cfg.DataPath)
	if _, err := store.LoadAll(ctx); err != nil {
		return fmt.Errorf("payment store unusable: %w", err)
	}
	log.Printf("[Server] Using payment file %s", store.Path())

	var events domain.EventPublisher = application.NoopPublisher{}
	if cfg.RedisURL != "" {
		redisClient, err := redis_impl.NewClient(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("[Server] Redis not reachable yet, events will be retried per request: %v", err)
		}
		pingCancel()
		events = redis_impl.NewEventPublisher(redisClient)
		log.Printf("[Server] Publishing transition events to %s", redis_impl.PAYMENT_EVENTS_QUEUE)
	}

	if cfg.SerializeWrites {
		log.Println("[Server] Serializing writes within this process")
	}
	useCases := application.NewUseCases(store, events, cfg.SerializeWrites)

	server := &fasthttp.Server{
		Handler: http_infra.SetupRoutes(useCases),
		Name:    "payment-registry",
	}

	listener, err := listen(cfg)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[Server] HTTP listening on %s", listener.Addr())
		serveErr <- server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Println("[Server] Shutdown signal received...")
	if err := server.Shutdown(); err != nil {
		log.Printf("[Server] Error during shutdown: %v", err)
	}
	log.Println("[Server] Stopped.")
	return nil
}

func listen(cfg config.Config) (net.Listener, error) {
	if cfg.SocketPath == "" {
		return net.Listen("tcp", cfg.ListenAddr)
	}

	_ = os.Remove(cfg.SocketPath)
	l, err := net.Listen("unix", cfg.SocketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on unix socket: %w", err)
	}
	if err := os.Chmod(cfg.SocketPath, 0777); err != nil {
		l.Close()
		return nil, fmt.Errorf("failed to change socket permissions: %w", err)
	}
	return l, nil
}
