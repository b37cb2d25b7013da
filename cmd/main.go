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

	createAdminReservationHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/create_admin_reservation"
	createMenuItemHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/create_menu_item"
	createReservationHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/create_reservation"
	deleteMenuItemHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/delete_menu_item"
	deleteReservationHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/delete_reservation"
	getAdminMenuHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/get_admin_menu"
	getAdminSlotsHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/get_admin_slots"
	getAvailableSlotsHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/get_available_slots"
	getBookingConfigHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/get_booking_config"
	getMenuHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/get_menu"
	getOpeningHoursHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/get_opening_hours"
	getReservationsHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/get_reservations"
	getSettingsHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/get_settings"
	updateMenuItemHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/update_menu_item"
	updateOpeningHoursHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/update_opening_hours"
	updateReservationStatusHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/update_reservation_status"
	updateSettingHandler "github.com/m04kA/GH-ReservationService/internal/api/handlers/update_setting"
	"github.com/m04kA/GH-ReservationService/internal/api/middleware"
	"github.com/m04kA/GH-ReservationService/internal/config"
	menuRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/menu"
	reservationRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/schedule"
	settingsRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/settings"
	"github.com/m04kA/GH-ReservationService/internal/integrations/mailer"
	menuService "github.com/m04kA/GH-ReservationService/internal/service/menu"
	reservationsService "github.com/m04kA/GH-ReservationService/internal/service/reservations"
	scheduleService "github.com/m04kA/GH-ReservationService/internal/service/schedule"
	settingsService "github.com/m04kA/GH-ReservationService/internal/service/settings"
	createReservationUC "github.com/m04kA/GH-ReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/GH-ReservationService/internal/usecase/get_available_slots"
	"github.com/m04kA/GH-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/GH-ReservationService/pkg/logger"
	"github.com/m04kA/GH-ReservationService/pkg/metrics"
	"github.com/m04kA/GH-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/GH-ReservationService/pkg/txmanager"
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

	log.Info("Starting GH-ReservationService...")
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

	// Инициализируем клиент транзакционной почты
	mailerClient := mailer.NewClient(
		cfg.Mailer.BaseURL,
		cfg.Mailer.APIKey,
		cfg.Mailer.FromEmail,
		cfg.Mailer.RestaurantEmail,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	if mailerClient.Enabled() {
		log.Info("Mailer client initialized (from=%s, restaurant=%s, timeout=%ds)",
			cfg.Mailer.FromEmail, cfg.Mailer.RestaurantEmail, cfg.Mailer.Timeout)
	} else {
		log.Warn("Mailer client disabled: no API key configured, emails will be skipped")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		menuRepository        *menuRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecase создания брони)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		menuRepository = menuRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		menuRepository = menuRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, mailerClient, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	menuSvc := menuService.NewService(menuRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		settingsRepository,
		mailerClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		settingsRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAdminSlots := getAdminSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	createAdminReservation := createAdminReservationHandler.NewHandler(createReservationUseCase, log)
	getReservations := getReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getOpeningHours := getOpeningHoursHandler.NewHandler(scheduleSvc, log)
	updateOpeningHours := updateOpeningHoursHandler.NewHandler(scheduleSvc, log)
	getMenu := getMenuHandler.NewHandler(menuSvc, log)
	getAdminMenu := getAdminMenuHandler.NewHandler(menuSvc, log)
	createMenuItem := createMenuItemHandler.NewHandler(menuSvc, log)
	updateMenuItem := updateMenuItemHandler.NewHandler(menuSvc, log)
	deleteMenuItem := deleteMenuItemHandler.NewHandler(menuSvc, log)
	getBookingConfig := getBookingConfigHandler.NewHandler(settingsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSetting := updateSettingHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Часы работы ресторана
	api.HandleFunc("/opening-hours", getOpeningHours.Handle).Methods(http.MethodGet)

	// Активные позиции меню
	api.HandleFunc("/menu", getMenu.Handle).Methods(http.MethodGet)

	// Настройки формы бронирования
	api.HandleFunc("/booking-config", getBookingConfig.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Заявка на бронирование
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.Auth.AdminToken))

	// --- Бронирования ---
	admin.HandleFunc("/available-slots", getAdminSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations", createAdminReservation.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	admin.HandleFunc("/opening-hours/{day}", updateOpeningHours.Handle).Methods(http.MethodPut)

	// --- Меню ---
	admin.HandleFunc("/menu-items", getAdminMenu.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/menu-items", createMenuItem.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/menu-items/{itemId}", updateMenuItem.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/menu-items/{itemId}", deleteMenuItem.Handle).Methods(http.MethodDelete)

	// --- Настройки ---
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings/{key}", updateSetting.Handle).Methods(http.MethodPut)

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
