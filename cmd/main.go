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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addExclusionHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/add_exclusion"
	createBarberHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/create_barber"
	createBookingHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/create_booking"
	createServiceHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/create_service"
	deleteBarberHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/delete_barber"
	deleteBookingHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/delete_booking"
	deleteServiceHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/delete_service"
	getBookingHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/get_booking"
	getExcludedDatesHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/get_excluded_dates"
	getFreeSlotsHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/get_free_slots"
	listBarbersHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/list_barbers"
	listBookingsHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/list_bookings"
	listExclusionsHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/list_exclusions"
	listServicesHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/list_services"
	removeExclusionHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/remove_exclusion"
	updateBarberHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/update_barber"
	updateServiceHandler "github.com/m04kA/Barbershop-BookingService/internal/api/handlers/update_service"
	"github.com/m04kA/Barbershop-BookingService/internal/api/middleware"
	"github.com/m04kA/Barbershop-BookingService/internal/config"
	bookingRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/catalog"
	exclusionRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/exclusion"
	bookingsService "github.com/m04kA/Barbershop-BookingService/internal/service/bookings"
	catalogService "github.com/m04kA/Barbershop-BookingService/internal/service/catalog"
	exclusionsService "github.com/m04kA/Barbershop-BookingService/internal/service/exclusions"
	createBookingUC "github.com/m04kA/Barbershop-BookingService/internal/usecase/create_booking"
	getFreeSlotsUC "github.com/m04kA/Barbershop-BookingService/internal/usecase/get_free_slots"
	"github.com/m04kA/Barbershop-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Barbershop-BookingService/pkg/logger"
	"github.com/m04kA/Barbershop-BookingService/pkg/metrics"
)

const migrationsDir = "migrations"

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

	log.Info("Starting Barbershop-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Применяем миграции
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Migrations applied successfully")

	// Инициализируем репозитории (с метриками или без)
	var dbExecutor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		dbExecutor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(dbExecutor)
	catalogRepository := catalogRepo.NewRepository(dbExecutor)
	exclusionRepository := exclusionRepo.NewRepository(dbExecutor)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogRepository, log)
	exclusionsSvc := exclusionsService.NewService(exclusionRepository, catalogRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		bookingRepository,
		exclusionRepository,
		catalogRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		exclusionRepository,
		catalogRepository,
		log,
	)

	// Инициализируем handlers
	listBarbers := listBarbersHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getExcludedDates := getExcludedDatesHandler.NewHandler(exclusionsSvc, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)

	createBarber := createBarberHandler.NewHandler(catalogSvc, log)
	updateBarber := updateBarberHandler.NewHandler(catalogSvc, log)
	deleteBarber := deleteBarberHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	addExclusion := addExclusionHandler.NewHandler(exclusionsSvc, log)
	removeExclusion := removeExclusionHandler.NewHandler(exclusionsSvc, log)
	listExclusions := listExclusionsHandler.NewHandler(exclusionsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог
	api.HandleFunc("/barbers", listBarbers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Календарь барбера
	api.HandleFunc("/barbers/{barberId}/excluded-dates", getExcludedDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{barberId}/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	adminAuth := middleware.NewAdminAuth(cfg.Admin.Token, log)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminAuth.Middleware)

	// --- Барберы ---
	admin.HandleFunc("/barbers", createBarber.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/barbers/{barberId}", updateBarber.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/barbers/{barberId}", deleteBarber.Handle).Methods(http.MethodDelete)

	// --- Услуги ---
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Исключённые даты ---
	admin.HandleFunc("/exclusions", addExclusion.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/exclusions/{exclusionId}", removeExclusion.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/barbers/{barberId}/exclusions", listExclusions.Handle).Methods(http.MethodGet)

	// --- Журнал бронирований ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

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
