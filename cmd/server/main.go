package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/linemk/order-service/internal/app"
	"github.com/linemk/order-service/internal/app/handlers"
	"github.com/linemk/order-service/internal/config"
	"github.com/linemk/order-service/internal/lib/logger"
	"github.com/linemk/order-service/internal/lib/logger/handlers/urllog"
	"github.com/linemk/order-service/internal/service"
	"github.com/linemk/order-service/internal/storage"
	"github.com/pkg/errors"
)

func main() {
	// локальный .env удобен при разработке; в продакшене переменные
	// приходят из окружения, отсутствие файла — не ошибка
	_ = godotenv.Load()

	// загрузка конфигурации
	cfg := config.MustLoad()

	// инициализация логгера, зависит от настройки окружения
	log := logger.SetupLogger(cfg.Env)
	log.Info("starting order service", slog.String("env", cfg.Env))

	// загружаем объект приложения: конфиг и клиент удалённой базы
	application, err := app.NewApp(log, cfg)
	if err != nil {
		log.Error("failed to initialize app", slog.Any("error", err))
		panic(errors.Wrap(err, "failed to initialize app"))
	}

	displayLoc, err := time.LoadLocation(cfg.Display.Timezone)
	if err != nil {
		log.Error("unknown display timezone", slog.String("timezone", cfg.Display.Timezone), slog.Any("error", err))
		panic(errors.Wrap(err, "unknown display timezone"))
	}

	router := chi.NewRouter()
	// настройка middleware
	router.Use(middleware.RequestID)
	router.Use(urllog.CustomLoggerMiddleware(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORS.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// реализация слоёв по работе с БД по каждому направлению
	orderRepo := storage.NewOrderRepository(application.DB)
	linkRepo := storage.NewOrderProductRepository(application.DB)
	cartRepo := storage.NewCartRepository(application.DB)
	customerRepo := storage.NewCustomerRepository(application.DB)

	orderService := service.NewOrderService(log, orderRepo, linkRepo, displayLoc)
	cartService := service.NewCartService(log, cartRepo)
	customerService := service.NewCustomerService(log, customerRepo)

	// вне продакшена сразу проверяем подключение; неудача не фатальна
	if cfg.Env != logger.EnvProd {
		if err := orderService.Ping(context.Background()); err != nil {
			log.Warn("database self-test failed", slog.Any("error", err))
		} else {
			log.Info("connected to the database")
		}
	}

	// проверка сервера и подключения к базе
	router.Get("/", handlers.HealthHandler(log, orderService))
	// заказы
	router.Get("/api/orders", handlers.ListOrdersHandler(log, orderService))
	router.Post("/api/orders", handlers.CreateOrderHandler(log, orderService))
	router.Put("/api/orders/{id}", handlers.UpdateOrderHandler(log, orderService))
	router.Delete("/api/orders/{id}", handlers.DeleteOrderHandler(log, orderService))
	// связи заказ–товар
	router.Get("/api/orderproductmap", handlers.ListOrderProductMapHandler(log, orderService))
	// проекции только для чтения
	router.Get("/api/cart", handlers.CartHandler(log, cartService))
	router.Get("/api/customers", handlers.ListCustomersHandler(log, customerService))
	router.Get("/api/customers/{orderId}", handlers.CustomerByOrderHandler(log, customerService))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", slog.Any("error", err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	stopSign := <-stop
	log.Info("received shutdown signal", slog.String("signal", stopSign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", slog.Any("error", err))
	}
	log.Info("server gracefully stopped")
}
