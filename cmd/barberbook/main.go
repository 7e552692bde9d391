package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/m04kA/barberbook/internal/api"
	blockSlotsHandler "github.com/m04kA/barberbook/internal/api/handlers/block_slots"
	cancelAppointmentHandler "github.com/m04kA/barberbook/internal/api/handlers/cancel_appointment"
	cancelByClientHandler "github.com/m04kA/barberbook/internal/api/handlers/cancel_by_client"
	createBookingHandler "github.com/m04kA/barberbook/internal/api/handlers/create_booking"
	createManualBookingHandler "github.com/m04kA/barberbook/internal/api/handlers/create_manual_booking"
	getAppointmentHandler "github.com/m04kA/barberbook/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/m04kA/barberbook/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/m04kA/barberbook/internal/api/handlers/get_available_slots"
	getBusinessHandler "github.com/m04kA/barberbook/internal/api/handlers/get_business"
	getOwnerConfigHandler "github.com/m04kA/barberbook/internal/api/handlers/get_owner_config"
	getOwnerScheduleHandler "github.com/m04kA/barberbook/internal/api/handlers/get_owner_schedule"
	getSessionHandler "github.com/m04kA/barberbook/internal/api/handlers/get_session"
	"github.com/m04kA/barberbook/internal/api/handlers/pages"
	signInHandler "github.com/m04kA/barberbook/internal/api/handlers/sign_in"
	signOutHandler "github.com/m04kA/barberbook/internal/api/handlers/sign_out"
	updateOwnerConfigHandler "github.com/m04kA/barberbook/internal/api/handlers/update_owner_config"
	"github.com/m04kA/barberbook/internal/api/middleware"
	"github.com/m04kA/barberbook/internal/config"
	businessCache "github.com/m04kA/barberbook/internal/infra/cache/business"
	"github.com/m04kA/barberbook/internal/infra/sessionstore"
	"github.com/m04kA/barberbook/internal/infra/storage"
	accountRepo "github.com/m04kA/barberbook/internal/infra/storage/account"
	appointmentRepo "github.com/m04kA/barberbook/internal/infra/storage/appointment"
	appointmentsService "github.com/m04kA/barberbook/internal/service/appointments"
	businessService "github.com/m04kA/barberbook/internal/service/business"
	scheduleService "github.com/m04kA/barberbook/internal/service/schedule"
	sessionService "github.com/m04kA/barberbook/internal/service/session"
	blockSlotsUC "github.com/m04kA/barberbook/internal/usecase/block_slots"
	cancelByClientUC "github.com/m04kA/barberbook/internal/usecase/cancel_by_client"
	createBookingUC "github.com/m04kA/barberbook/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/barberbook/internal/usecase/get_available_slots"
	"github.com/m04kA/barberbook/pkg/dbmetrics"
	"github.com/m04kA/barberbook/pkg/logger"
	"github.com/m04kA/barberbook/pkg/metrics"
	"github.com/m04kA/barberbook/pkg/tracing"
	"github.com/m04kA/barberbook/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting barberbook...")
	log.Info("Configuration loaded from %s", *configPath)

	ctx := context.Background()

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}

	// Трассировка
	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to set up tracing: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := storage.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Successfully connected to database (driver=%s, db=%s)", cfg.Database.Driver, cfg.Database.DBName)

	// Репозитории и менеджер транзакций (с метриками или без)
	var (
		accounts     *accountRepo.Repository
		appointments *appointmentRepo.Repository
		txMgr        *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		accounts = accountRepo.NewRepository(wrappedDB)
		appointments = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		accounts = accountRepo.NewRepository(db)
		appointments = appointmentRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(dbmetrics.PlainDB{DB: db})
	}

	// Хранилище отозванных сессий: Redis, если задан адрес, иначе память процесса
	var revoked sessionService.RevocationStore
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		redisStore := sessionstore.NewRedisStore(rdb, cfg.Redis.Prefix)
		if err := redisStore.Ping(ctx); err != nil {
			log.Fatal("Failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
		}
		revoked = redisStore
		log.Info("Session revocation store: redis (%s)", cfg.Redis.Addr)
	} else {
		revoked = sessionstore.NewMemoryStore()
		log.Warn("Session revocation store: in-memory, revocations are lost on restart")
	}

	cache, err := businessCache.New(cfg.Cache.BusinessSize, cfg.Cache.BusinessTTL())
	if err != nil {
		log.Fatal("Failed to create business cache: %v", err)
	}

	// Инициализируем сервисы
	businessSvc := businessService.NewService(accounts, cache, log)
	scheduleSvc := scheduleService.NewService(accounts, cache, log)
	appointmentsSvc := appointmentsService.NewService(appointments, scheduleSvc, log)
	sessionSvc := sessionService.NewService(
		accounts,
		revoked,
		metricsCollector,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.SessionTTL)*time.Minute,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		appointments,
		businessSvc,
		scheduleSvc,
		metricsCollector,
		location,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(appointments, businessSvc, location, log)
	blockSlotsUseCase := blockSlotsUC.NewUseCase(appointments, scheduleSvc, location, log)
	cancelByClientUseCase := cancelByClientUC.NewUseCase(
		appointments,
		txMgr,
		time.Duration(cfg.Booking.ClientCancelLeadMinutes)*time.Minute,
		location,
		log,
	)

	// Инициализируем handlers
	pagesHandler, err := pages.NewHandler(
		sessionSvc,
		appointmentsSvc,
		getAvailableSlotsUseCase,
		pages.CookieOptions{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure},
		location,
		log,
	)
	if err != nil {
		log.Fatal("Failed to parse page templates: %v", err)
	}

	handlers := &api.Handlers{
		SignIn:              signInHandler.NewHandler(sessionSvc, log),
		SignOut:             signOutHandler.NewHandler(sessionSvc, log),
		GetSession:          getSessionHandler.NewHandler(sessionSvc, log),
		GetBusiness:         getBusinessHandler.NewHandler(businessSvc, log),
		GetAvailableSlots:   getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log),
		CreateBooking:       createBookingHandler.NewHandler(createBookingUseCase, log),
		GetAppointments:     getAppointmentsHandler.NewHandler(appointmentsSvc, log),
		GetAppointment:      getAppointmentHandler.NewHandler(appointmentsSvc, log),
		CancelByClient:      cancelByClientHandler.NewHandler(cancelByClientUseCase, log),
		GetOwnerSchedule:    getOwnerScheduleHandler.NewHandler(appointmentsSvc, location, log),
		CreateManualBooking: createManualBookingHandler.NewHandler(createBookingUseCase, appointmentsSvc, log),
		BlockSlots:          blockSlotsHandler.NewHandler(blockSlotsUseCase, appointmentsSvc, log),
		CancelAppointment:   cancelAppointmentHandler.NewHandler(appointmentsSvc, log),
		GetOwnerConfig:      getOwnerConfigHandler.NewHandler(scheduleSvc, log),
		UpdateOwnerConfig:   updateOwnerConfigHandler.NewHandler(scheduleSvc, log),
		Pages:               pagesHandler,
	}

	// Настраиваем роутер
	opts := api.Options{
		Auth:         middleware.NewAuthenticator(sessionSvc, cfg.Auth.CookieName, log),
		PublicAPIKey: cfg.Auth.PublicAPIKey,
		Metrics:      metricsCollector,
		MetricsPath:  cfg.Metrics.Path,
		Health:       db,
	}
	if cfg.RateLimit.Enabled {
		trusted, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
		if err != nil {
			log.Fatal("Invalid rate_limit.trusted_proxies: %v", err)
		}
		opts.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, trusted, log)
		log.Info("Rate limit enabled: %.2f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	router := api.NewRouter(handlers, opts)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(router, "barberbook"),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
