package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/caarlos0/env/v11"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	battleorch "github.com/vygddrasil/battle-api/internal/orchestrators/battle"
	"github.com/vygddrasil/battle-api/internal/orchestrators/progression"
	"github.com/vygddrasil/battle-api/internal/pkg/clock"
	"github.com/vygddrasil/battle-api/internal/pkg/idgen"
	"github.com/vygddrasil/battle-api/internal/redis"
	"github.com/vygddrasil/battle-api/internal/repositories/battlehistory"
	"github.com/vygddrasil/battle-api/internal/repositories/character"
	"github.com/vygddrasil/battle-api/internal/repositories/enemies"
)

// serverConfig is read from the environment
type serverConfig struct {
	GRPCPort  int    `env:"GRPC_PORT" envDefault:"50051"`
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the battle gRPC server with all configured services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := env.ParseAs[serverConfig]()
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}()

	clk := clock.New()

	characterRepo, err := character.NewRedis(&character.RedisConfig{
		Client: redisClient,
		Clock:  clk,
	})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}

	historyRepo, err := battlehistory.NewRedisRepository(&battlehistory.Config{
		Client: redisClient,
		Clock:  clk,
	})
	if err != nil {
		return fmt.Errorf("failed to create battle history repository: %w", err)
	}

	enemyRepo := enemies.NewInMemory(enemies.DefaultCatalog())

	progressionService, err := progression.NewOrchestrator(&progression.Config{
		CharacterRepo: characterRepo,
	})
	if err != nil {
		return fmt.Errorf("failed to create progression orchestrator: %w", err)
	}

	battleService, err := battleorch.NewOrchestrator(&battleorch.Config{
		CharacterRepo: characterRepo,
		EnemyRepo:     enemyRepo,
		HistoryRepo:   historyRepo,
		EventBus:      events.NewBus(),
		IDGenerator:   idgen.NewUUID("battle"),
		Clock:         clk,
		DiceRoller:    dice.DefaultRoller,
		Progression:   progressionService,
	})
	if err != nil {
		return fmt.Errorf("failed to create battle orchestrator: %w", err)
	}
	_ = battleService // TODO: register the battle handler once the battle proto package is published

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("vygddrasil.battle.v1.BattleService", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
