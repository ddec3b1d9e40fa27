package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/driftcase/rainpot/internal/common/clock"
	"github.com/driftcase/rainpot/internal/common/scheduler"
	"github.com/driftcase/rainpot/internal/common/uuid"
	"github.com/driftcase/rainpot/internal/handlers/discord"
	"github.com/driftcase/rainpot/internal/handlers/ws"
	"github.com/driftcase/rainpot/internal/logger"
	"github.com/driftcase/rainpot/internal/ratelimit"
	ledgerRepo "github.com/driftcase/rainpot/internal/repositories/ledger"
	rainRepo "github.com/driftcase/rainpot/internal/repositories/rain"
	userRepo "github.com/driftcase/rainpot/internal/repositories/user"
	"github.com/driftcase/rainpot/internal/services/broadcast"
	rainService "github.com/driftcase/rainpot/internal/services/rain"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Missing .env is fine in production; config comes from the
	// environment there
	_ = godotenv.Load()

	if err := logger.Init(getEnv("DEBUG", "") != ""); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Initialize repositories
	sessionRepo, err := rainRepo.NewRedis(&rainRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create rain repository: %v", err)
	}

	directoryRepo, err := userRepo.NewRedis(&userRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	balanceRepo, err := ledgerRepo.NewRedis(&ledgerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create ledger repository: %v", err)
	}

	// Optional Discord announcer
	var sinks []broadcast.Sink
	var announcer *discord.Announcer

	if token := getEnv("DISCORD_TOKEN", ""); token != "" {
		announcer, err = discord.New(&discord.Config{
			Token:     token,
			ChannelID: getEnv("DISCORD_CHANNEL_ID", ""),
		})
		if err != nil {
			log.Fatalf("Failed to create Discord announcer: %v", err)
		}
		sinks = append(sinks, announcer)
	}

	// Rate limiter for client-triggered actions
	limiter, err := ratelimit.New(&ratelimit.Config{
		MinDelays: map[string]time.Duration{
			ws.ActionTip:    2 * time.Second,
			ws.ActionJoin:   time.Second,
			ws.ActionAddPot: 500 * time.Millisecond,
		},
	})
	if err != nil {
		log.Fatalf("Failed to create rate limiter: %v", err)
	}

	// The websocket hub is wired as a broadcast sink below, so the
	// engine's events reach connected clients
	broadcaster, err := broadcast.New(&broadcast.Config{})
	if err != nil {
		log.Fatalf("Failed to create broadcaster: %v", err)
	}

	// Initialize rain engine
	engine, err := rainService.New(&rainService.Config{
		RainDuration:         getEnvDuration("RAIN_DURATION", rainService.DefaultRainDuration),
		DistributionInterval: getEnvDuration("DISTRIBUTION_INTERVAL", rainService.DefaultDistributionInterval),
		TickInterval:         getEnvDuration("TICK_INTERVAL", rainService.DefaultTickInterval),
		MinTipAmount:         getEnvFloat("MIN_TIP_AMOUNT", rainService.DefaultMinTipAmount),
		MinWagerRequirement:  getEnvFloat("MIN_WAGER_REQUIREMENT", 0),
		RainRepo:             sessionRepo,
		UserRepo:             directoryRepo,
		LedgerRepo:           balanceRepo,
		Broadcaster:          broadcaster,
		Clock:                &clock.DefaultClock{},
		Scheduler:            scheduler.New(),
		UUIDGenerator:        uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create rain engine: %v", err)
	}

	// Initialize websocket server
	server, err := ws.New(&ws.Config{
		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		RainService: engine,
		Limiter:     limiter,
		AdminToken:  getEnv("ADMIN_TOKEN", ""),
	})
	if err != nil {
		log.Fatalf("Failed to create websocket server: %v", err)
	}

	sinks = append(sinks, server.Hub())
	broadcaster.SetSinks(sinks)

	if announcer != nil {
		if err := announcer.Start(); err != nil {
			log.Fatalf("Failed to start Discord announcer: %v", err)
		}
	}

	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start websocket server: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := engine.Start(ctx); err != nil {
		cancel()
		log.Fatalf("Failed to start rain engine: %v", err)
	}
	cancel()

	logger.Info("rainpot is running")

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	engine.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error("error stopping websocket server", zap.Error(err))
	}

	if announcer != nil {
		if err := announcer.Stop(); err != nil {
			logger.Error("error stopping Discord announcer", zap.Error(err))
		}
	}

	logger.Info("rainpot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Invalid number for %s: %v", key, err)
	}
	return parsed
}
