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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/cancel_booking"
	catalogHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/catalog"
	createBookingHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/create_booking"
	customersHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/customers"
	dashboardHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/dashboard"
	exportBookingsHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/export_bookings"
	getAvailableSlotsHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/get_customer_bookings"
	getOpeningHoursHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/get_opening_hours"
	listBookingsHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/list_bookings"
	loginHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/logout"
	normalizeTimeHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/normalize_time"
	petsHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/pets"
	updateBookingHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/update_booking"
	updateOpeningHoursHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/update_opening_hours"
	validateAdmissionHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/validate_admission"
	"github.com/m04kA/SMC-GroomingService/internal/api/middleware"
	"github.com/m04kA/SMC-GroomingService/internal/config"
	"github.com/m04kA/SMC-GroomingService/internal/infra/cache"
	"github.com/m04kA/SMC-GroomingService/internal/infra/export"
	"github.com/m04kA/SMC-GroomingService/internal/infra/sessions"
	bookingRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/customer"
	openingHoursRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/openinghours"
	petRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/pet"
	"github.com/m04kA/SMC-GroomingService/internal/scheduling"
	authService "github.com/m04kA/SMC-GroomingService/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-GroomingService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-GroomingService/internal/service/catalog"
	customersService "github.com/m04kA/SMC-GroomingService/internal/service/customers"
	openingHoursService "github.com/m04kA/SMC-GroomingService/internal/service/openinghours"
	petsService "github.com/m04kA/SMC-GroomingService/internal/service/pets"
	createBookingUC "github.com/m04kA/SMC-GroomingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-GroomingService/internal/usecase/get_available_slots"
	normalizeTimeUC "github.com/m04kA/SMC-GroomingService/internal/usecase/normalize_time"
	updateBookingUC "github.com/m04kA/SMC-GroomingService/internal/usecase/update_booking"
	validateAdmissionUC "github.com/m04kA/SMC-GroomingService/internal/usecase/validate_admission"
	"github.com/m04kA/SMC-GroomingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
	"github.com/m04kA/SMC-GroomingService/pkg/metrics"
	"github.com/m04kA/SMC-GroomingService/pkg/txmanager"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
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

	log.Info("Starting SMC-GroomingService...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Schedule.Location()
	if err != nil {
		log.Fatal("Failed to load timezone: %v", err)
	}

	// Метрики выключены => nil, все методы *metrics.Metrics безопасны для nil
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStartup()

	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(startupCtx).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	petRepository := petRepo.NewRepository(wrappedDB)
	serviceRepository := catalogRepo.NewServiceRepository(wrappedDB)
	perkRepository := catalogRepo.NewPerkRepository(wrappedDB)
	breedRepository := catalogRepo.NewBreedRepository(wrappedDB)
	openingHoursRepository := openingHoursRepo.NewRepository(wrappedDB)

	openingHoursCache := cache.NewOpeningHoursCache(rdb, time.Duration(cfg.Redis.OpeningHoursTTLSeconds)*time.Second)
	sessionStore := sessions.NewStore(rdb, time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute)

	// Сервисы
	openingHoursSvc := openingHoursService.NewService(openingHoursRepository, openingHoursCache, txMgr, log)
	if err := openingHoursSvc.EnsureSeeded(startupCtx); err != nil {
		log.Fatal("Failed to seed opening hours: %v", err)
	}

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		customerRepository,
		petRepository,
		serviceRepository,
		export.NewBookingsXLSX(),
		log,
	)
	customerSvc := customersService.NewService(customerRepository, log)
	petSvc := petsService.NewService(petRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, perkRepository, breedRepository, log)
	authSvc := authService.NewService(cfg.Auth.Username, cfg.Auth.PasswordHash, sessionStore, log)

	// Допуск записи
	timeProvider := scheduling.RealTimeProvider{}
	admissionValidator := scheduling.NewValidator(
		bookingRepository,
		openingHoursSvc,
		timeProvider,
		cfg.Schedule.PastGrace(),
		location,
	)

	// Use cases
	validateAdmissionUseCase := validateAdmissionUC.NewUseCase(admissionValidator, metricsCollector, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		petRepository,
		serviceRepository,
		admissionValidator,
		txMgr,
		metricsCollector,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		customerRepository,
		petRepository,
		serviceRepository,
		admissionValidator,
		txMgr,
		timeProvider,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		openingHoursSvc,
		timeProvider,
		cfg.Schedule.PastGrace(),
		location,
		log,
	)
	normalizeTimeUseCase := normalizeTimeUC.NewUseCase(openingHoursSvc, log)

	// Handlers
	validateAdmission := validateAdmissionHandler.NewHandler(validateAdmissionUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)
	dashboard := dashboardHandler.NewHandler(bookingSvc, timeProvider, location, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	normalizeTime := normalizeTimeHandler.NewHandler(normalizeTimeUseCase, log)
	getOpeningHours := getOpeningHoursHandler.NewHandler(openingHoursSvc, log)
	updateOpeningHours := updateOpeningHoursHandler.NewHandler(openingHoursSvc, log)
	customers := customersHandler.NewHandler(customerSvc, log)
	pets := petsHandler.NewHandler(petSvc, log)
	catalog := catalogHandler.NewHandler(catalogSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Timeout(time.Duration(cfg.Server.RequestTimeoutSeconds) * time.Second))

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	loginLimiter := middleware.NewIPRateLimiter(cfg.Auth.LoginRatePerMinute, cfg.Auth.LoginBurst)
	api.Handle("/auth/login", loginLimiter.Middleware(log)(http.HandlerFunc(login.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Записи ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/admission", validateAdmission.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Расписание ---
	protected.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/normalize-time", normalizeTime.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/opening-hours", getOpeningHours.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/opening-hours", updateOpeningHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/dashboard", dashboard.Handle).Methods(http.MethodGet)

	// --- Клиенты и питомцы ---
	protected.HandleFunc("/customers", customers.List).Methods(http.MethodGet)
	protected.HandleFunc("/customers", customers.Create).Methods(http.MethodPost)
	protected.HandleFunc("/customers/{customerId:[0-9]+}", customers.Get).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId:[0-9]+}", customers.Update).Methods(http.MethodPut)
	protected.HandleFunc("/customers/{customerId:[0-9]+}", customers.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/customers/{customerId:[0-9]+}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId:[0-9]+}/pets", pets.ListByCustomer).Methods(http.MethodGet)

	protected.HandleFunc("/pets", pets.List).Methods(http.MethodGet)
	protected.HandleFunc("/pets", pets.Create).Methods(http.MethodPost)
	protected.HandleFunc("/pets/{petId:[0-9]+}", pets.Get).Methods(http.MethodGet)
	protected.HandleFunc("/pets/{petId:[0-9]+}", pets.Update).Methods(http.MethodPut)
	protected.HandleFunc("/pets/{petId:[0-9]+}", pets.Delete).Methods(http.MethodDelete)

	// --- Справочники ---
	protected.HandleFunc("/services", catalog.ListServices).Methods(http.MethodGet)
	protected.HandleFunc("/services", catalog.CreateService).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId:[0-9]+}", catalog.GetService).Methods(http.MethodGet)
	protected.HandleFunc("/services/{serviceId:[0-9]+}", catalog.UpdateService).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId:[0-9]+}", catalog.DeleteService).Methods(http.MethodDelete)

	protected.HandleFunc("/perks", catalog.ListPerks).Methods(http.MethodGet)
	protected.HandleFunc("/perks", catalog.CreatePerk).Methods(http.MethodPost)
	protected.HandleFunc("/perks/{perkId:[0-9]+}", catalog.GetPerk).Methods(http.MethodGet)
	protected.HandleFunc("/perks/{perkId:[0-9]+}", catalog.UpdatePerk).Methods(http.MethodPut)
	protected.HandleFunc("/perks/{perkId:[0-9]+}", catalog.DeletePerk).Methods(http.MethodDelete)

	protected.HandleFunc("/breeds", catalog.ListBreeds).Methods(http.MethodGet)
	protected.HandleFunc("/breeds", catalog.CreateBreed).Methods(http.MethodPost)
	protected.HandleFunc("/breeds/{breedId:[0-9]+}", catalog.GetBreed).Methods(http.MethodGet)
	protected.HandleFunc("/breeds/{breedId:[0-9]+}", catalog.UpdateBreed).Methods(http.MethodPut)
	protected.HandleFunc("/breeds/{breedId:[0-9]+}", catalog.DeleteBreed).Methods(http.MethodDelete)

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

	log.Info("Server stopped gracefully")
}
