package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/cancel_booking"
	closeReservationHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/close_reservation"
	configureScheduleHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/configure_schedule"
	createReservationHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/create_reservation"
	forgotPasswordHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/forgot_password"
	getAvailableSlotsHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/get_available_slots"
	getBookingsHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/get_bookings"
	getProductsHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/get_products"
	getQuoteHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/get_quote"
	getReservationHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/get_reservation"
	loginHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/login"
	resetPasswordHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/reset_password"
	selectProductsHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/select_products"
	signUpHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/sign_up"
	stepBackHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/step_back"
	submitReservationHandler "github.com/m04kA/BRS-RentalGateway/internal/api/handlers/submit_reservation"
	"github.com/m04kA/BRS-RentalGateway/internal/api/middleware"
	"github.com/m04kA/BRS-RentalGateway/internal/config"
	"github.com/m04kA/BRS-RentalGateway/internal/infra/sessions"
	authServiceClient "github.com/m04kA/BRS-RentalGateway/internal/integrations/authservice"
	bookingServiceClient "github.com/m04kA/BRS-RentalGateway/internal/integrations/bookingservice"
	catalogServiceClient "github.com/m04kA/BRS-RentalGateway/internal/integrations/catalogservice"
	bookingListService "github.com/m04kA/BRS-RentalGateway/internal/service/bookinglist"
	reservationService "github.com/m04kA/BRS-RentalGateway/internal/service/reservation"
	createBookingUC "github.com/m04kA/BRS-RentalGateway/internal/usecase/create_booking"
	"github.com/m04kA/BRS-RentalGateway/pkg/httpmetrics"
	"github.com/m04kA/BRS-RentalGateway/pkg/logger"
	"github.com/m04kA/BRS-RentalGateway/pkg/metrics"
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

	log.Info("Starting BRS-RentalGateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Опции транспорта для сбора метрик исходящих запросов
	authOpts := []authServiceClient.Option{}
	catalogOpts := []catalogServiceClient.Option{}
	bookingOpts := []bookingServiceClient.Option{}
	if cfg.Metrics.Enabled {
		authOpts = append(authOpts,
			authServiceClient.WithTransport(httpmetrics.Wrap("auth_service", nil, metricsCollector)))
		catalogOpts = append(catalogOpts,
			catalogServiceClient.WithTransport(httpmetrics.Wrap("catalog_service", nil, metricsCollector)))
		bookingOpts = append(bookingOpts,
			bookingServiceClient.WithTransport(httpmetrics.Wrap("booking_service", nil, metricsCollector)))
		log.Info("Upstream metrics collection enabled")
	}

	// Инициализируем интеграционных клиентов
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
		authOpts...,
	)
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
		catalogOpts...,
	)
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
		bookingOpts...,
	)
	log.Info("Integration clients initialized (AuthService=%s, CatalogService=%s, BookingService=%s)",
		cfg.AuthService.URL, cfg.CatalogService.URL, cfg.BookingService.URL)

	// Инициализируем хранилище сессий оформления
	sessionStore := sessions.New(
		time.Duration(cfg.Sessions.TTLMinutes)*time.Minute,
		time.Duration(cfg.Sessions.CleanupIntervalMinutes)*time.Minute,
	)
	defer sessionStore.Stop()
	log.Info("Session store initialized (ttl=%dm, cleanup=%dm)",
		cfg.Sessions.TTLMinutes, cfg.Sessions.CleanupIntervalMinutes)

	// Инициализируем use cases и сервисы
	createBookingUseCase := createBookingUC.NewUseCase(
		catalogClient,
		bookingClient,
		log,
	)
	bookingListSvc := bookingListService.NewService(
		bookingClient,
		log,
	)
	reservationSvc := reservationService.NewService(
		sessionStore,
		catalogClient,
		createBookingUseCase,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authClient, log)
	signUp := signUpHandler.NewHandler(authClient, log)
	forgotPassword := forgotPasswordHandler.NewHandler(authClient, log)
	resetPassword := resetPasswordHandler.NewHandler(authClient, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(log)
	getProducts := getProductsHandler.NewHandler(catalogClient, log)
	getQuote := getQuoteHandler.NewHandler(catalogClient, log)
	getBookings := getBookingsHandler.NewHandler(bookingListSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingListSvc, log)
	createReservation := createReservationHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	selectProducts := selectProductsHandler.NewHandler(reservationSvc, log)
	configureSchedule := configureScheduleHandler.NewHandler(reservationSvc, log)
	stepBack := stepBackHandler.NewHandler(reservationSvc, log)
	submitReservation := submitReservationHandler.NewHandler(reservationSvc, log)
	closeReservation := closeReservationHandler.NewHandler(reservationSvc, log)

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

	// Аутентификация: токены выпускает внешний AuthService
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup", signUp.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/forgot-password", forgotPassword.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password/{resetToken}", resetPassword.Handle).Methods(http.MethodPut)

	// Сетка стартовых слотов (фиксирована правилами проката)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Каталог и расчёт стоимости ---
	protected.HandleFunc("/products", getProducts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/quote", getQuote.Handle).Methods(http.MethodPost)

	// --- Оформление бронирования (многошаговая форма) ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{sessionId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{sessionId}", closeReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/reservations/{sessionId}/products", selectProducts.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{sessionId}/schedule", configureSchedule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{sessionId}/back", stepBack.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{sessionId}/submit", submitReservation.Handle).Methods(http.MethodPost)

	// --- Мои бронирования ---
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

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
