package handlers

import (
	"log/slog"
	"net/http"

	"github.com/linemk/order-service/internal/service"
)

// ListOrdersHandler обрабатывает GET /api/orders.
func ListOrdersHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ListOrdersHandler"
		logger := log.With(slog.String("op", op))

		orders, err := orderService.ListOrders(r.Context())
		if err != nil {
			logger.Error("failed to fetch orders", slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "Failed to fetch orders", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, orders)
	}
}
