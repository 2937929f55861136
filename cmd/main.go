package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	deleteBusinessHoursHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_business_hours"
	getAvailableDatesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_business_hours"
	getOpenStatusHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_open_status"
	listBusinessHoursHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_business_hours"
	updateBusinessHoursHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_business_hours"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	hoursCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/hours"
	hoursRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/hours"
	hoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
	getAvailableDatesUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	getOpenStatusUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_open_status"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from %s", configPath)

	// Часовой пояс, в котором считаются календарные даты и слоты
	location := availability.LoadLocation(cfg.Availability.Timezone, cfg.Availability.UTCOffsetMinutes)
	log.Info("Availability timezone: %s (horizon %d days, max %d)",
		location, cfg.Availability.HorizonDays, cfg.Availability.MaxHorizonDays)

	// Инициализируем метрики (если включены).
	// Получатели метрик объявлены интерфейсами, чтобы при выключенных метриках передавать настоящий nil
	var (
		metricsCollector *metrics.Metrics
		resolveRecorder  availability.Recorder
		cacheRecorder    hoursCache.Recorder
		slotsRecorder    getAvailableSlotsUC.MetricsRecorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		resolveRecorder = metricsCollector
		cacheRecorder = metricsCollector
		slotsRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий (с метриками или без)
	var repository *hoursRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
		repository = hoursRepo.NewRepository(wrappedDB)
	} else {
		repository = hoursRepo.NewRepository(db)
	}

	// Кеш рабочих часов в redis (если включен). Недоступный redis не мешает старту
	var store hoursService.HoursRepository = repository
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, requests will go to the database: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		}
		cancelPing()

		store = hoursCache.NewCache(
			repository,
			rdb,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
			cacheRecorder,
			log,
		)
	}

	// Инициализируем сервисы
	resolver := availability.NewHoursResolver(store, resolveRecorder, log)
	hoursSvc := hoursService.NewService(store, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		resolver,
		location,
		cfg.Availability.MaxHorizonDays,
		slotsRecorder,
		log,
	)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		location,
		cfg.Availability.HorizonDays,
		cfg.Availability.MaxHorizonDays,
		log,
	)
	getOpenStatusUseCase := getOpenStatusUC.NewUseCase(resolver, location, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getOpenStatus := getOpenStatusHandler.NewHandler(getOpenStatusUseCase, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(hoursSvc, log)
	listBusinessHours := listBusinessHoursHandler.NewHandler(hoursSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(hoursSvc, log)
	deleteBusinessHours := deleteBusinessHoursHandler.NewHandler(hoursSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			Burst:             cfg.RateLimit.Burst,
			TrustedProxies:    cfg.RateLimit.TrustedProxies,
			IdleTTL:           time.Duration(cfg.RateLimit.IdleTTLSeconds) * time.Second,
		}, log)
		if err != nil {
			log.Fatal("Failed to configure rate limit: %v", err)
		}
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %d req/min per IP, burst %d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные часовые слоты на дату
	api.HandleFunc("/businesses/{businessId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Даты для выбора в календаре
	api.HandleFunc("/businesses/{businessId}/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Открыт ли бизнес сейчас
	api.HandleFunc("/businesses/{businessId}/open-status", getOpenStatus.Handle).Methods(http.MethodGet)

	// Рабочие часы бизнеса
	api.HandleFunc("/businesses/{businessId}/hours", getBusinessHours.Handle).Methods(http.MethodGet)

	// Отладочный список сохраненных часов
	api.HandleFunc("/business-hours", listBusinessHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Изменение рабочих часов (только владелец)
	protected.HandleFunc("/businesses/{businessId}/hours", updateBusinessHours.Handle).Methods(http.MethodPut)

	// Сброс рабочих часов к значениям по умолчанию (только владелец)
	protected.HandleFunc("/businesses/{businessId}/hours", deleteBusinessHours.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
