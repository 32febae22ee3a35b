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

	createBookingHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_booking"
	getBookedSlotsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_booked_slots"
	getBookingHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_booking"
	getBookingCountChartHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_booking_count_chart"
	getCustomerBookingsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_customer_bookings"
	getEarningsChartHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_earnings_chart"
	getSalonBookingsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_salon_bookings"
	getSalonReportHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_salon_report"
	paymentSuccessHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/payment_success"
	updateStatusHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/update_status"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/config"
	paymentConsumer "github.com/m04kA/Salon-BookingService/internal/consumer"
	"github.com/m04kA/Salon-BookingService/internal/infra/messaging/rabbit"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	eventsRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/events"
	offeringServiceClient "github.com/m04kA/Salon-BookingService/internal/integrations/offeringservice"
	salonServiceClient "github.com/m04kA/Salon-BookingService/internal/integrations/salonservice"
	userServiceClient "github.com/m04kA/Salon-BookingService/internal/integrations/userservice"
	bookingsService "github.com/m04kA/Salon-BookingService/internal/service/bookings"
	reportsService "github.com/m04kA/Salon-BookingService/internal/service/reports"
	createBookingUC "github.com/m04kA/Salon-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/logger"
	"github.com/m04kA/Salon-BookingService/pkg/metrics"
	"github.com/m04kA/Salon-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/Salon-BookingService/pkg/txmanager"
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

	log.Info("Starting Salon-BookingService...")
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

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	salonClient := salonServiceClient.NewClient(
		cfg.SalonService.URL,
		time.Duration(cfg.SalonService.Timeout)*time.Second,
		log,
	)
	offeringClient := offeringServiceClient.NewClient(
		cfg.OfferingService.URL,
		time.Duration(cfg.OfferingService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s, SalonService=%s, OfferingService=%s)",
		cfg.UserService.URL, cfg.SalonService.URL, cfg.OfferingService.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		eventsRepository  *eventsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		eventsRepository = eventsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		eventsRepository = eventsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Подключаемся к RabbitMQ (если включен)
	var rabbitPublisher *rabbit.Publisher
	var rabbitConsumer *rabbit.Consumer

	if cfg.RabbitMQ.Enabled {
		rabbitPublisher, err = rabbit.NewPublisher(cfg.RabbitMQ.URL, log, metricsCollector)
		if err != nil {
			log.Fatal("Failed to connect publisher to RabbitMQ: %v", err)
		}
		defer rabbitPublisher.Close()

		rabbitConsumer, err = rabbit.NewConsumer(cfg.RabbitMQ.URL, rabbit.PaymentEventsQueue)
		if err != nil {
			log.Fatal("Failed to connect consumer to RabbitMQ: %v", err)
		}
		defer rabbitConsumer.Close()

		log.Info("Connected to RabbitMQ at %s", cfg.RabbitMQ.URL)
	} else {
		log.Warn("RabbitMQ disabled, events will not be published")
	}

	// Publisher как интерфейсы сервисного слоя (nil, если брокер выключен)
	var bookingsPub bookingsService.EventPublisher
	var createBookingPub createBookingUC.EventPublisher
	if rabbitPublisher != nil {
		bookingsPub = rabbitPublisher
		createBookingPub = rabbitPublisher
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		bookingsPub,
		log,
	)
	reportSvc := reportsService.NewService(
		bookingRepository,
		salonClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		salonClient,
		userClient,
		offeringClient,
		txMgr,
		createBookingPub,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getSalonBookings := getSalonBookingsHandler.NewHandler(bookingSvc, log)
	getBookedSlots := getBookedSlotsHandler.NewHandler(bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)
	paymentSuccess := paymentSuccessHandler.NewHandler(bookingSvc, log)
	getSalonReport := getSalonReportHandler.NewHandler(reportSvc, log)
	getEarningsChart := getEarningsChartHandler.NewHandler(reportSvc, log)
	getBookingCountChart := getBookingCountChartHandler.NewHandler(reportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Занятые интервалы салона на дату
	api.HandleFunc("/salons/{salonId}/slots", getBookedSlots.Handle).Methods(http.MethodGet)

	// Отчёт и графики салона
	api.HandleFunc("/salons/{salonId}/report", getSalonReport.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}/chart/earnings", getEarningsChart.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}/chart/bookings", getBookingCountChart.Handle).Methods(http.MethodGet)

	// Внутренний коллбек платёжного сервиса
	api.HandleFunc("/bookings/{bookingId}/payment-success", paymentSuccess.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Обновление статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// Бронирования салона (все или на дату)
	protected.HandleFunc("/salons/{salonId}/bookings", getSalonBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId}/bookings/date", getSalonBookings.Handle).Methods(http.MethodGet)

	// Запускаем консьюмер платёжных событий (если брокер включен)
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()

	if rabbitConsumer != nil {
		pc := paymentConsumer.NewPaymentConsumer(rabbitConsumer, bookingSvc, eventsRepository, log, metricsCollector)
		go func() {
			if err := pc.Run(consumerCtx); err != nil {
				log.Error("Payment consumer stopped with error: %v", err)
			}
		}()
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

	// Останавливаем консьюмер
	stopConsumer()

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
