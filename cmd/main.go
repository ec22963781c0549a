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

	acceptOrderHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/accept_order"
	cancelOrderHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/cancel_order"
	createOrderHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_order"
	getAvailableDatesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getOrderHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_order"
	getScheduleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_schedule"
	getUserOrdersHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_user_orders"
	updateScheduleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_schedule"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/app"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	bonusRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/bonus"
	catalogRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/catalog"
	orderRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/order"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	ordersService "github.com/m04kA/SMC-AvailabilityService/internal/service/orders"
	scheduleService "github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
	createOrderUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_order"
	getAvailableDatesUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	updateScheduleUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/update_schedule"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting SMC-AvailabilityService...")
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

	// Применяем миграции (если включены)
	if cfg.Database.Migrate {
		migrator, err := app.NewMigrator(db, cfg.Database.MigrationsDir, log)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Политика резолвера доступности из конфигурации
	slotsPolicy := getAvailableSlotsUC.Policy{
		MarkerStepMinutes: cfg.Scheduling.MarkerStepMinutes,
		DayEndHour:        cfg.Scheduling.DayEndHour,
		MinNoticeMinutes:  cfg.Scheduling.MinNoticeMinutes,
		HorizonDays:       cfg.Scheduling.HorizonDays,
	}
	datesPolicy := getAvailableDatesUC.Policy{
		MarkerStepMinutes: cfg.Scheduling.MarkerStepMinutes,
		DayEndHour:        cfg.Scheduling.DayEndHour,
		MinNoticeMinutes:  cfg.Scheduling.MinNoticeMinutes,
		HorizonDays:       cfg.Scheduling.HorizonDays,
	}
	orderPolicy := createOrderUC.Policy{
		MarkerStepMinutes: cfg.Scheduling.MarkerStepMinutes,
		DayEndHour:        cfg.Scheduling.DayEndHour,
		MinNoticeMinutes:  cfg.Scheduling.MinNoticeMinutes,
		HorizonDays:       cfg.Scheduling.HorizonDays,
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		catalogRepository  *catalogRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		orderRepository    *orderRepo.Repository
		bonusRepository    *bonusRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		orderRepository = orderRepo.NewRepository(wrappedDB)
		bonusRepository = bonusRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		catalogRepository = catalogRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		orderRepository = orderRepo.NewRepository(db)
		bonusRepository = bonusRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	orderSvc := ordersService.NewService(
		orderRepository,
		bonusRepository,
		txMgr,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		orderRepository,
		scheduleRepository,
		catalogRepository,
		slotsPolicy,
		log,
	)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		orderRepository,
		scheduleRepository,
		catalogRepository,
		datesPolicy,
		log,
	)
	createOrderUseCase := createOrderUC.NewUseCase(
		orderRepository,
		scheduleRepository,
		catalogRepository,
		bonusRepository,
		txMgr,
		orderPolicy,
		log,
	)
	updateScheduleUseCase := updateScheduleUC.NewUseCase(
		scheduleRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	getOrder := getOrderHandler.NewHandler(orderSvc, log)
	cancelOrder := cancelOrderHandler.NewHandler(orderSvc, log)
	acceptOrder := acceptOrderHandler.NewHandler(orderSvc, log)
	getUserOrders := getUserOrdersHandler.NewHandler(orderSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(updateScheduleUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной идентификатор запроса
	r.Use(middleware.RequestID)

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

	// Доступные старты на конкретную дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Доступные даты в пределах горизонта
	api.HandleFunc("/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заказы ---
	// Создание заказа
	protected.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)

	// Заказы пользователя (как клиента и как исполнителя)
	protected.HandleFunc("/orders", getUserOrders.Handle).Methods(http.MethodGet)

	// Получение заказа по ID
	protected.HandleFunc("/orders/{orderId}", getOrder.Handle).Methods(http.MethodGet)

	// Отмена заказа
	protected.HandleFunc("/orders/{orderId}/cancel", cancelOrder.Handle).Methods(http.MethodPatch)

	// Взятие заказа исполнителем
	protected.HandleFunc("/orders/{orderId}/accept", acceptOrder.Handle).Methods(http.MethodPatch)

	// --- Расписание исполнителя ---
	// Недельный шаблон
	protected.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Полная замена недельного шаблона
	protected.HandleFunc("/schedule", updateSchedule.Handle).Methods(http.MethodPut)

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
