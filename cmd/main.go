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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/complete_booking"
	createBlockedTimeHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/create_blocked_time"
	createBookingHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/create_booking"
	createClientHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/create_client"
	deleteClientHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/delete_client"
	getAvailabilityHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/get_availability"
	getBlockedTimesHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/get_blocked_times"
	getBookingsHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/get_bookings"
	getClientHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/get_client"
	getClientsHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/get_clients"
	getInProgressHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/get_in_progress"
	updateClientHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/update_client"
	verifyPINHandler "github.com/m04kA/PT-BookingService/internal/api/handlers/verify_pin"
	"github.com/m04kA/PT-BookingService/internal/api/middleware"
	"github.com/m04kA/PT-BookingService/internal/config"
	blockedTimeRepo "github.com/m04kA/PT-BookingService/internal/infra/storage/blockedtime"
	bookingRepo "github.com/m04kA/PT-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/m04kA/PT-BookingService/internal/infra/storage/client"
	blockedTimesService "github.com/m04kA/PT-BookingService/internal/service/blockedtimes"
	bookingsService "github.com/m04kA/PT-BookingService/internal/service/bookings"
	clientsService "github.com/m04kA/PT-BookingService/internal/service/clients"
	completeBookingUC "github.com/m04kA/PT-BookingService/internal/usecase/complete_booking"
	createBookingUC "github.com/m04kA/PT-BookingService/internal/usecase/create_booking"
	expireBookingsUC "github.com/m04kA/PT-BookingService/internal/usecase/expire_bookings"
	getAvailabilityUC "github.com/m04kA/PT-BookingService/internal/usecase/get_availability"
	"github.com/m04kA/PT-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PT-BookingService/pkg/logger"
	"github.com/m04kA/PT-BookingService/pkg/metrics"
	"github.com/m04kA/PT-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/PT-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting PT-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		clientRepository      *clientRepo.Repository
		blockedTimeRepository *blockedTimeRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		blockedTimeRepository = blockedTimeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		blockedTimeRepository = blockedTimeRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	clientSvc := clientsService.NewService(clientRepository, bookingRepository, txMgr, log)
	blockedTimeSvc := blockedTimesService.NewService(blockedTimeRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		clientRepository,
		txMgr,
		log,
	)
	completeBookingUseCase := completeBookingUC.NewUseCase(
		bookingRepository,
		clientRepository,
		txMgr,
		log,
	)
	expireBookingsUseCase := expireBookingsUC.NewUseCase(
		bookingRepository,
		clientRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(completeBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, expireBookingsUseCase, log)
	getInProgress := getInProgressHandler.NewHandler(bookingSvc, log)
	createClient := createClientHandler.NewHandler(clientSvc, log)
	getClients := getClientsHandler.NewHandler(clientSvc, log)
	getClient := getClientHandler.NewHandler(clientSvc, log)
	updateClient := updateClientHandler.NewHandler(clientSvc, log)
	deleteClient := deleteClientHandler.NewHandler(clientSvc, log)
	verifyPIN := verifyPINHandler.NewHandler(clientSvc, log)
	getBlockedTimes := getBlockedTimesHandler.NewHandler(blockedTimeSvc, log)
	createBlockedTime := createBlockedTimeHandler.NewHandler(blockedTimeSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/in-progress", getInProgress.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{id}/complete", completeBooking.Handle).Methods(http.MethodPost)

	// --- Клиенты ---
	api.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients", getClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}", getClient.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}", updateClient.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/clients/{id}", deleteClient.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/clients/{id}/verify-pin", verifyPIN.Handle).Methods(http.MethodPost)

	// --- Заблокированные интервалы ---
	api.HandleFunc("/blocked-times", getBlockedTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/blocked-times", createBlockedTime.Handle).Methods(http.MethodPost)

	// Фоновый перевод просроченных бронирований в completed
	stopExpiryCh := make(chan struct{})
	if cfg.Expiry.Enabled {
		interval := time.Duration(cfg.Expiry.IntervalSeconds) * time.Second
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					count, err := expireBookingsUseCase.Execute(context.Background())
					if err != nil {
						log.Error("Expiry sweep failed: %v", err)
						continue
					}
					if count > 0 {
						log.Info("Expiry sweep completed %d bookings", count)
					}
				case <-stopExpiryCh:
					return
				}
			}
		}()
		log.Info("Expiry sweep started with interval %s", interval)
	}

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

	// Останавливаем фоновые задачи
	if cfg.Expiry.Enabled {
		close(stopExpiryCh)
		log.Info("Expiry sweep stopped")
	}
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
