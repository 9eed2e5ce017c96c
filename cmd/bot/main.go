package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/probably-dice/internal/common/clock"
	"github.com/KirkDiggler/probably-dice/internal/common/uuid"
	"github.com/KirkDiggler/probably-dice/internal/config"
	"github.com/KirkDiggler/probably-dice/internal/dice"
	"github.com/KirkDiggler/probably-dice/internal/handlers/discord"
	"github.com/KirkDiggler/probably-dice/internal/metrics"
	"github.com/KirkDiggler/probably-dice/internal/repositories/query"
	"github.com/KirkDiggler/probably-dice/internal/services/messaging"
	oddsService "github.com/KirkDiggler/probably-dice/internal/services/odds"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	queryRepo, err := query.NewRedis(&query.Config{
		RedisClient: redisClient,
		MaxHistory:  cfg.HistorySize,
		TTL:         cfg.HistoryTTL,
	})
	if err != nil {
		log.Fatalf("Failed to create query repository: %v", err)
	}

	recorder := metrics.New()
	metricsServer := serveMetrics(cfg.MetricsAddr, recorder)

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{})

	// Initialize odds service
	oddsSvc, err := oddsService.New(&oddsService.Config{
		MaxDice:       cfg.MaxDice,
		MaxSides:      cfg.MaxSides,
		MaxTrials:     cfg.MaxTrials,
		QueryRepo:     queryRepo,
		DiceRoller:    diceRoller,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Metrics:       recorder,
	})
	if err != nil {
		log.Fatalf("Failed to create odds service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.Config{
		DiceRoller: diceRoller,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		OddsService:      oddsSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error stopping metrics server: %v", err)
		}
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Bot has been shut down")
}

// serveMetrics exposes /metrics on addr in the background. An empty addr disables it.
func serveMetrics(addr string, recorder *metrics.Prometheus) *http.Server {
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Serving metrics on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()

	return server
}
