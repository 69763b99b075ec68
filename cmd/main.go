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

	addUserHandler "github.com/m04kA/CWS-PassService/internal/api/handlers/add_user"
	assignSeatHandler "github.com/m04kA/CWS-PassService/internal/api/handlers/assign_seat"
	cancelBookingHandler "github.com/m04kA/CWS-PassService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/CWS-PassService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/CWS-PassService/internal/api/handlers/get_booking"
	getCompanyContractsHandler "github.com/m04kA/CWS-PassService/internal/api/handlers/get_company_contracts"
	getOccupancyHandler "github.com/m04kA/CWS-PassService/internal/api/handlers/get_occupancy"
	getUserBookingsHandler "github.com/m04kA/CWS-PassService/internal/api/handlers/get_user_bookings"
	paymentCallbackHandler "github.com/m04kA/CWS-PassService/internal/api/handlers/payment_callback"
	quotePassHandler "github.com/m04kA/CWS-PassService/internal/api/handlers/quote_pass"
	"github.com/m04kA/CWS-PassService/internal/api/middleware"
	"github.com/m04kA/CWS-PassService/internal/config"
	bookingRepo "github.com/m04kA/CWS-PassService/internal/infra/storage/booking"
	contractRepo "github.com/m04kA/CWS-PassService/internal/infra/storage/contract"
	selectionRepo "github.com/m04kA/CWS-PassService/internal/infra/storage/selection"
	paymentsClient "github.com/m04kA/CWS-PassService/internal/integrations/payments"
	"github.com/m04kA/CWS-PassService/internal/pricing"
	bookingsService "github.com/m04kA/CWS-PassService/internal/service/bookings"
	contractsService "github.com/m04kA/CWS-PassService/internal/service/contracts"
	addUserUC "github.com/m04kA/CWS-PassService/internal/usecase/add_user"
	assignSeatUC "github.com/m04kA/CWS-PassService/internal/usecase/assign_seat"
	confirmPaymentUC "github.com/m04kA/CWS-PassService/internal/usecase/confirm_payment"
	createBookingUC "github.com/m04kA/CWS-PassService/internal/usecase/create_booking"
	getOccupancyUC "github.com/m04kA/CWS-PassService/internal/usecase/get_occupancy"
	quotePassUC "github.com/m04kA/CWS-PassService/internal/usecase/quote_pass"
	"github.com/m04kA/CWS-PassService/pkg/dbmetrics"
	"github.com/m04kA/CWS-PassService/pkg/logger"
	"github.com/m04kA/CWS-PassService/pkg/metrics"
	"github.com/m04kA/CWS-PassService/pkg/simpletxmanager"
	"github.com/m04kA/CWS-PassService/pkg/txmanager"
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

	log.Info("Starting CWS-PassService...")
	log.Info("Configuration loaded from config.toml")

	// Разбираем тарифную таблицу
	rates, err := pricing.ParseRates(cfg.Pricing.DayRate, cfg.Pricing.WeekRate, cfg.Pricing.MonthRate)
	if err != nil {
		log.Fatal("Failed to parse pricing rates: %v", err)
	}

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

	// Инициализируем клиент платежного шлюза
	payments := paymentsClient.NewClient(
		cfg.Payments.APIKey,
		cfg.Payments.SuccessURL,
		cfg.Payments.CancelURL,
		log,
	)
	log.Info("Payments client initialized (success=%s, cancel=%s, currency=%s)",
		cfg.Payments.SuccessURL, cfg.Payments.CancelURL, cfg.Payments.Currency)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		contractRepository  *contractRepo.Repository
		selectionRepository *selectionRepo.Repository
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
		contractRepository = contractRepo.NewRepository(wrappedDB)
		selectionRepository = selectionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		contractRepository = contractRepo.NewRepository(db)
		selectionRepository = selectionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	contractSvc := contractsService.NewService(contractRepository, log)

	// Инициализируем use cases
	quotePassUseCase := quotePassUC.NewUseCase(rates, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		selectionRepository,
		payments,
		txMgr,
		rates,
		cfg.Payments.Currency,
		log,
	)

	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		bookingRepository,
		selectionRepository,
		txMgr,
		log,
	)

	assignSeatUseCase := assignSeatUC.NewUseCase(contractRepository, txMgr, log)
	addUserUseCase := addUserUC.NewUseCase(contractRepository, txMgr, log)
	getOccupancyUseCase := getOccupancyUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	quotePass := quotePassHandler.NewHandler(quotePassUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	paymentCallback := paymentCallbackHandler.NewHandler(confirmPaymentUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	assignSeat := assignSeatHandler.NewHandler(assignSeatUseCase, log)
	addUser := addUserHandler.NewHandler(addUserUseCase, log)
	getCompanyContracts := getCompanyContractsHandler.NewHandler(contractSvc, log)
	getOccupancy := getOccupancyHandler.NewHandler(getOccupancyUseCase, log)

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

	// Расчет стоимости пропуска по выбору (чистая функция, без записи)
	api.HandleFunc("/passes/quote", quotePass.Handle).Methods(http.MethodPost)

	// Callback платежного шлюза (redirect после оплаты)
	api.HandleFunc("/payments/{outcome}", paymentCallback.Handle).Methods(http.MethodGet)

	// Сводка занятости по сети площадок
	api.HandleFunc("/occupancy", getOccupancy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования пропусков ---
	// Отправка выбора в оплату
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление компанией (для менеджеров) ---
	// Добавление сотрудника в компанию (с проверкой квоты мест)
	protected.HandleFunc("/companies/{companyId}/users", addUser.Handle).Methods(http.MethodPost)

	// История контрактов компании со статусом подписки
	protected.HandleFunc("/companies/{companyId}/contracts", getCompanyContracts.Handle).Methods(http.MethodGet)

	// Назначение или снятие закрепленного места сотрудника
	protected.HandleFunc("/users/{userId}/seat", assignSeat.Handle).Methods(http.MethodPatch)

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
