package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Application
	applicationPort "github.com/dreschagin/vitals-dashboard/internal/application/port"
	"github.com/dreschagin/vitals-dashboard/internal/application/usecase"

	// Domain
	"github.com/dreschagin/vitals-dashboard/internal/domain/service"
	"github.com/dreschagin/vitals-dashboard/internal/domain/valueobject"

	// Infrastructure
	redisCache "github.com/dreschagin/vitals-dashboard/internal/infrastructure/cache/redis"
	"github.com/dreschagin/vitals-dashboard/internal/infrastructure/history"
	natsInfra "github.com/dreschagin/vitals-dashboard/internal/infrastructure/messaging/nats"
	wsInfra "github.com/dreschagin/vitals-dashboard/internal/infrastructure/notification/websocket"
	"github.com/dreschagin/vitals-dashboard/internal/infrastructure/scheduler"

	// Interfaces
	httpInterface "github.com/dreschagin/vitals-dashboard/internal/interfaces/http"
	"github.com/dreschagin/vitals-dashboard/internal/interfaces/http/handler"
	"github.com/dreschagin/vitals-dashboard/internal/interfaces/http/middleware"

	// Shared
	"github.com/dreschagin/vitals-dashboard/pkg/config"
	"github.com/dreschagin/vitals-dashboard/pkg/logger"
)

func main() {
	// 1. Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Инициализируем logger
	log := logger.New(os.Getenv("LOG_LEVEL"))
	log.Info("Starting Vitals Dashboard Feed")

	// 3. Dependency Injection - Domain Layer

	rangeTable := valueobject.DefaultRangeTable()

	anomalyOdds, err := service.NewAnomalyOdds(cfg.Simulation.AnomalyNumerator, cfg.Simulation.AnomalyDenominator)
	if err != nil {
		log.Error("Invalid anomaly odds", err)
		os.Exit(1)
	}

	seed := cfg.Simulation.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	generator := service.NewVitalGenerator(rangeTable, anomalyOdds, rand.NewSource(seed))
	calculator := service.NewMAPCalculator()
	classifier := service.NewVitalClassifier(rangeTable)
	aggregator := service.NewSampleAggregator()

	// 4. Dependency Injection - Infrastructure Layer

	historyStore, err := history.NewMemoryHistoryStore(cfg.Simulation.HistoryCapacity)
	if err != nil {
		log.Error("Invalid history capacity", err)
		os.Exit(1)
	}

	latestSnapshot := history.NewLatestSnapshot()

	// WebSocket Hub
	hub := wsInfra.NewHub(log)

	// NATS Event Publisher
	var eventPublisher applicationPort.EventPublisher
	if cfg.NATS.Enabled {
		publisherImpl, initErr := natsInfra.NewNATSPublisher(cfg.NATS.URL, log)
		if initErr != nil {
			log.Warn("Failed to connect to NATS, continuing without event publishing", "error", initErr.Error())
		} else {
			eventPublisher = publisherImpl
			defer eventPublisher.Close()
			log.Info("NATS event publisher initialized", "url", cfg.NATS.URL)
		}
	} else {
		log.Warn("NATS event publishing is disabled")
	}

	// Redis Snapshot Cache
	var snapshotCache applicationPort.SnapshotCache
	if cfg.Redis.Enabled {
		cacheImpl, initErr := redisCache.NewSnapshotCache(
			cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if initErr != nil {
			log.Warn("Failed to connect to Redis, continuing without snapshot cache", "error", initErr.Error())
		} else {
			snapshotCache = cacheImpl
			defer snapshotCache.Close()
			log.Info("Redis snapshot cache initialized")
		}
	} else {
		log.Warn("Redis snapshot cache is disabled")
	}

	// 5. Dependency Injection - Application Layer (Use Cases)

	advanceVitalsUC := usecase.NewAdvanceVitalsUseCase(
		generator,
		calculator,
		classifier,
		historyStore,
		latestSnapshot,
		hub,
		eventPublisher, // Can be nil if NATS disabled
		snapshotCache,  // Can be nil if Redis disabled
		log,
	)

	getCurrentVitalsUC := usecase.NewGetCurrentVitalsUseCase(latestSnapshot, snapshotCache, log)
	getVitalHistoryUC := usecase.NewGetVitalHistoryUseCase(historyStore, aggregator, classifier, log)

	// 6. Update Scheduler

	updateScheduler, err := scheduler.NewUpdateScheduler(
		advanceVitalsUC,
		cfg.Simulation.TickInterval,
		cfg.Simulation.HistoryCapacity,
		log,
	)
	if err != nil {
		log.Error("Failed to create scheduler", err)
		os.Exit(1)
	}

	// 7. Dependency Injection - Interfaces Layer (HTTP Handlers)

	authConfig := middleware.AuthConfig{
		Enabled:     cfg.Security.AuthEnabled,
		BearerToken: cfg.Security.AuthToken,
	}

	vitalsAPIHandler := handler.NewVitalsAPIHandler(getCurrentVitalsUC, getVitalHistoryUC, log)
	websocketHandler := handler.NewWebSocketHandler(hub, cfg.Security.AllowedOrigins, authConfig, log)
	rateLimiter := middleware.NewIPRateLimiter(cfg.API.RateLimitRPS, cfg.API.RateLimitBurst)

	router := httpInterface.NewRouter(
		vitalsAPIHandler,
		websocketHandler,
		cfg.Security,
		rateLimiter,
		log,
	)

	// 8. Запускаем фоновые процессы

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запускаем WebSocket hub
	go hub.Run()

	// Заполняем историю до показа первого кадра
	if err := updateScheduler.Seed(ctx); err != nil {
		log.Error("Failed to seed history", err)
		os.Exit(1)
	}

	// Запускаем периодические такты симуляции
	go func() {
		if err := updateScheduler.Run(ctx); err != nil {
			log.Error("Scheduler stopped unexpectedly", err)
		}
	}()

	// 9. Настраиваем HTTP сервер

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Канал для получения сигналов ОС
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Запускаем сервер в отдельной goroutine
	go func() {
		log.Info("HTTP server starting", "port", cfg.Server.Port)
		log.Info("Vitals feed available at ws://localhost:" + cfg.Server.Port + "/ws")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed", err)
			os.Exit(1)
		}
	}()

	// 10. Ожидаем сигнал для graceful shutdown

	<-sigChan
	log.Info("Shutdown signal received, starting graceful shutdown...")

	// Останавливаем такты симуляции
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", err)
	}

	log.Info("Server stopped gracefully")
}
