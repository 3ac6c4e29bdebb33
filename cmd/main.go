package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_available_slots"
	getCatalogHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_catalog"
	listReservationsHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/list_reservations"
	listTransactionsHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/list_transactions"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/config"
	reservationRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/state"
	transactionRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/transaction"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/admission"
	catalogService "github.com/m04kA/SMC-FacilityBooking/internal/service/catalog"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/ledger"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/pricing"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/reports"
	cancelReservationUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/cancel_reservation"
	createReservationUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/metrics"
)

func main() {
	// .env необязателен
	_ = godotenv.Load()

	configPath := os.Getenv(config.EnvConfigPath)
	if configPath == "" {
		configPath = "config.toml"
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

	log.Info("Starting SMC-FacilityBooking...")
	log.Info("Configuration loaded from %s", configPath)

	catalog, err := cfg.Catalog()
	if err != nil {
		log.Fatal("Failed to build catalog: %v", err)
	}

	// Коллектор создается всегда, endpoint публикуется только при metrics.enabled
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	ctx := context.Background()

	// Подключаем хранилище
	backend, closeBackend, err := openBackend(ctx, cfg, catalog.Rules, log)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer closeBackend()

	stateManager, err := state.NewManager(ctx, backend, log, state.WithObserver(metricsCollector))
	if err != nil {
		log.Fatal("Failed to load state: %v", err)
	}

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(stateManager)
	transactionRepository := transactionRepo.NewRepository(stateManager)

	// Инициализируем сервисы
	admissionController := admission.NewController(catalog)
	pricingEngine := pricing.NewEngine(catalog)
	ledgerSvc := ledger.NewService(
		transactionRepository,
		ledger.NewRefundPolicy(catalog.Rules.RefundTiers),
		log,
	)
	reportsSvc := reports.NewService(
		reservationRepository,
		transactionRepository,
		stateManager,
		log,
	)
	catalogSvc := catalogService.NewService(catalog, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		admissionController,
		pricingEngine,
		ledgerSvc,
		stateManager,
		metricsCollector,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationRepository,
		ledgerSvc,
		stateManager,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		catalog,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reportsSvc, log)
	listTransactions := listTransactionsHandler.NewHandler(reportsSvc, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))
	r.Use(middleware.Metrics(metricsCollector))

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// --- Отчеты ---
	api.HandleFunc("/transactions", listTransactions.Handle).Methods(http.MethodGet)

	// --- Ресурсы ---
	api.HandleFunc("/resources/{resource}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/catalog/{resource}", getCatalog.HandleResource).Methods(http.MethodGet)

	// Создаем HTTP сервер
	readTimeout, writeTimeout, idleTimeout, shutdownTimeout := cfg.Server.Timeouts()
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (storage=%s)", addr, backend.Name())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
