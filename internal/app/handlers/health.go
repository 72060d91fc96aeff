package handlers

import (
	"log/slog"
	"net/http"

	"github.com/linemk/order-service/internal/service"
)

// HealthHandler обрабатывает GET / — проверяет сервер и подключение к базе.
func HealthHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.HealthHandler"
		logger := log.With(slog.String("op", op))

		if err := orderService.Ping(r.Context()); err != nil {
			logger.Error("database probe failed", slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "Database connection failed", err.Error())
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Database is connected and server is running!"))
	}
}
