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

	createBookingHandler "github.com/ateliernature/animations-booking/internal/api/handlers/create_booking"
	deleteAnimationHandler "github.com/ateliernature/animations-booking/internal/api/handlers/delete_animation"
	deleteBookingHandler "github.com/ateliernature/animations-booking/internal/api/handlers/delete_booking"
	deleteChangelogEntryHandler "github.com/ateliernature/animations-booking/internal/api/handlers/delete_changelog_entry"
	exportBusSheetsHandler "github.com/ateliernature/animations-booking/internal/api/handlers/export_bus_sheets"
	generateBookingsHandler "github.com/ateliernature/animations-booking/internal/api/handlers/generate_bookings"
	getAvailableSlotsHandler "github.com/ateliernature/animations-booking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/ateliernature/animations-booking/internal/api/handlers/get_booking"
	getChangelogHandler "github.com/ateliernature/animations-booking/internal/api/handlers/get_changelog"
	getSettingsHandler "github.com/ateliernature/animations-booking/internal/api/handlers/get_settings"
	listAnimationsHandler "github.com/ateliernature/animations-booking/internal/api/handlers/list_animations"
	listBookingsHandler "github.com/ateliernature/animations-booking/internal/api/handlers/list_bookings"
	removeAnimatorHandler "github.com/ateliernature/animations-booking/internal/api/handlers/remove_animator"
	renameAnimatorHandler "github.com/ateliernature/animations-booking/internal/api/handlers/rename_animator"
	reorderAnimationsHandler "github.com/ateliernature/animations-booking/internal/api/handlers/reorder_animations"
	saveAnimationHandler "github.com/ateliernature/animations-booking/internal/api/handlers/save_animation"
	saveChangelogEntryHandler "github.com/ateliernature/animations-booking/internal/api/handlers/save_changelog_entry"
	updateBookingHandler "github.com/ateliernature/animations-booking/internal/api/handlers/update_booking"
	updateSettingsHandler "github.com/ateliernature/animations-booking/internal/api/handlers/update_settings"
	uploadImageHandler "github.com/ateliernature/animations-booking/internal/api/handlers/upload_image"
	"github.com/ateliernature/animations-booking/internal/api/middleware"
	"github.com/ateliernature/animations-booking/internal/config"
	animationRepo "github.com/ateliernature/animations-booking/internal/infra/storage/animation"
	bookingRepo "github.com/ateliernature/animations-booking/internal/infra/storage/booking"
	changelogRepo "github.com/ateliernature/animations-booking/internal/infra/storage/changelog"
	settingsRepo "github.com/ateliernature/animations-booking/internal/infra/storage/settings"
	"github.com/ateliernature/animations-booking/internal/infra/storage/watch"
	mailerClient "github.com/ateliernature/animations-booking/internal/integrations/mailer"
	mediahostClient "github.com/ateliernature/animations-booking/internal/integrations/mediahost"
	animationsService "github.com/ateliernature/animations-booking/internal/service/animations"
	bookingsService "github.com/ateliernature/animations-booking/internal/service/bookings"
	journalService "github.com/ateliernature/animations-booking/internal/service/journal"
	settingsService "github.com/ateliernature/animations-booking/internal/service/settings"
	snapshotService "github.com/ateliernature/animations-booking/internal/service/snapshot"
	createBookingUC "github.com/ateliernature/animations-booking/internal/usecase/create_booking"
	exportBusSheetsUC "github.com/ateliernature/animations-booking/internal/usecase/export_bus_sheets"
	generateBookingsUC "github.com/ateliernature/animations-booking/internal/usecase/generate_bookings"
	getAvailableSlotsUC "github.com/ateliernature/animations-booking/internal/usecase/get_available_slots"
	"github.com/ateliernature/animations-booking/pkg/logger"
	"github.com/ateliernature/animations-booking/pkg/metrics"
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

	log.Info("Starting animations-booking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории
	animationRepository := animationRepo.NewRepository(db)
	bookingRepository := bookingRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	changelogRepository := changelogRepo.NewRepository(db)

	// Инициализируем интеграционных клиентов
	// Интерфейсная переменная: без URL остается nil и письма отключены
	var mailer createBookingUC.MailerClient
	if cfg.Mailer.URL != "" {
		mailer = mailerClient.NewClient(
			cfg.Mailer.URL,
			cfg.Mailer.APIKey,
			cfg.Mailer.Sender,
			time.Duration(cfg.Mailer.Timeout)*time.Second,
			log,
		)
		log.Info("Mailer client initialized (url=%s, timeout=%ds)", cfg.Mailer.URL, cfg.Mailer.Timeout)
	} else {
		log.Warn("Mailer is not configured, booking emails are disabled")
	}

	media := mediahostClient.NewClient(
		cfg.MediaHost.URL,
		cfg.MediaHost.APIKey,
		time.Duration(cfg.MediaHost.Timeout)*time.Second,
		log,
	)
	log.Info("Media host client initialized (url=%s, timeout=%ds)", cfg.MediaHost.URL, cfg.MediaHost.Timeout)

	// Снапшот доступности, инвалидируемый уведомлениями из Postgres
	snapshots := snapshotService.NewProvider(settingsRepository, animationRepository, bookingRepository, log)

	watcher, err := watch.New(cfg.Database.DSN(), log)
	if err != nil {
		log.Fatal("Failed to start collection watcher: %v", err)
	}
	defer watcher.Close()

	watcher.Subscribe("bookings", snapshots.Invalidate)
	watcher.Subscribe("animations", snapshots.Invalidate)
	watcher.Subscribe("settings", snapshots.Invalidate)

	watcherCtx, stopWatcher := context.WithCancel(context.Background())
	defer stopWatcher()
	go watcher.Run(watcherCtx)
	log.Info("Collection watcher started")

	// Инициализируем сервисы
	animationsSvc := animationsService.NewService(animationRepository, bookingRepository, settingsRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, snapshots, log)
	settingsSvc := settingsService.NewService(settingsRepository, animationRepository, log)
	journalSvc := journalService.NewService(changelogRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, snapshots, mailer, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(snapshots, log)
	generateBookingsUseCase := generateBookingsUC.NewUseCase(bookingRepository, snapshots, log)
	exportBusSheetsUseCase := exportBusSheetsUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	generateBookings := generateBookingsHandler.NewHandler(generateBookingsUseCase, log)
	exportBusSheets := exportBusSheetsHandler.NewHandler(exportBusSheetsUseCase, log)

	listAnimations := listAnimationsHandler.NewHandler(animationsSvc, log)
	saveAnimation := saveAnimationHandler.NewHandler(animationsSvc, log)
	deleteAnimation := deleteAnimationHandler.NewHandler(animationsSvc, log)
	reorderAnimations := reorderAnimationsHandler.NewHandler(animationsSvc, log)

	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)

	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	renameAnimator := renameAnimatorHandler.NewHandler(settingsSvc, log)
	removeAnimator := removeAnimatorHandler.NewHandler(settingsSvc, log)

	getChangelog := getChangelogHandler.NewHandler(journalSvc, log)
	saveChangelogEntry := saveChangelogEntryHandler.NewHandler(journalSvc, log)
	deleteChangelogEntry := deleteChangelogEntryHandler.NewHandler(journalSvc, log)

	uploadImage := uploadImageHandler.NewHandler(media, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (форма бронирования для школ)
	// ============================================================

	api.HandleFunc("/animations", listAnimations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/changelog", getChangelog.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (админ-панель, X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Admin.Token, log))

	// --- Анимации ---
	protected.HandleFunc("/animations", saveAnimation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/animations/reorder", reorderAnimations.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/animations/{id}", saveAnimation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/animations/{id}", deleteAnimation.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/generate", generateBookings.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/bus-sheets", exportBusSheets.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Настройки и аниматоры ---
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/animators/rename", renameAnimator.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/animators/{name}", removeAnimator.Handle).Methods(http.MethodDelete)

	// --- Журнал изменений и медиа ---
	protected.HandleFunc("/changelog", saveChangelogEntry.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/changelog/{id}", deleteChangelogEntry.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/media", uploadImage.Handle).Methods(http.MethodPost)

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
	stopWatcher()

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
