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

	cancelBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_booking"
	createCarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_car"
	deleteCarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_car"
	exportReportHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/export_report"
	getAllBookingsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_all_bookings"
	getBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_booking"
	getCarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_car"
	getDashboardHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_dashboard"
	getProfileHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_profile"
	getUserBookingsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_user_bookings"
	listCarsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_cars"
	loginHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/login"
	payBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/pay_booking"
	registerHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/register"
	updateCarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_car"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/infra/imagestore"
	"github.com/m04kA/SMC-RentalService/internal/infra/report"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	userRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/user"
	authService "github.com/m04kA/SMC-RentalService/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-RentalService/internal/service/bookings"
	carsService "github.com/m04kA/SMC-RentalService/internal/service/cars"
	reportsService "github.com/m04kA/SMC-RentalService/internal/service/reports"
	createBookingUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
	payBookingUC "github.com/m04kA/SMC-RentalService/internal/usecase/pay_booking"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/tokens"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
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

	log.Info("Starting SMC-RentalService...")
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

	// Хранилище загруженных изображений
	images, err := imagestore.New(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal("Failed to initialize image store: %v", err)
	}
	log.Info("Image store initialized (dir=%s)", cfg.Uploads.Dir)

	// Инициализируем репозитории
	userRepository := userRepo.NewRepository(db)
	carRepository := carRepo.NewRepository(db)
	bookingRepository := bookingRepo.NewRepository(db)
	txMgr := txmanager.New(db)

	// Токены и пароли
	tokenManager := tokens.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	hasher := authService.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, bookingRepository, hasher, tokenManager, log)
	carSvc := carsService.NewService(carRepository, images, log)
	bookingSvc := bookingsService.NewService(bookingRepository, carRepository, txMgr, log)
	reportSvc := reportsService.NewService(bookingRepository, carRepository, userRepository, report.NewRenderer(), log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, carRepository, txMgr, log)
	payBookingUseCase := payBookingUC.NewUseCase(bookingRepository, carRepository, txMgr, log)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getProfile := getProfileHandler.NewHandler(authSvc, log)
	listCars := listCarsHandler.NewHandler(carSvc, domain.AvailabilityAvailable, log)
	listCarsAdmin := listCarsHandler.NewHandler(carSvc, domain.AvailabilityAll, log)
	getCar := getCarHandler.NewHandler(carSvc, log)
	createCar := createCarHandler.NewHandler(carSvc, log)
	updateCar := updateCarHandler.NewHandler(carSvc, log)
	deleteCar := deleteCarHandler.NewHandler(carSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	payBooking := payBookingHandler.NewHandler(payBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	getDashboard := getDashboardHandler.NewHandler(reportSvc, log)
	exportReport := exportReportHandler.NewHandler(reportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Загруженные изображения автомобилей
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir))),
	).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Каталог автомобилей
	api.HandleFunc("/cars", listCars.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}", getCar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/pay", payBooking.Handle).Methods(http.MethodPost)

	// --- Кабинет клиента ---
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/me/profile", getProfile.Handle).Methods(http.MethodGet)

	// --- Администрирование (роль проверяется в сервисах) ---
	protected.HandleFunc("/admin/cars", listCarsAdmin.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/cars", createCar.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/cars/{carId}", updateCar.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/admin/cars/{carId}", deleteCar.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/admin/bookings", getAllBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/reports/{report}", exportReport.Handle).Methods(http.MethodGet)

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
