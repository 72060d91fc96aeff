package handlers

import (
	"log/slog"
	"net/http"

	"github.com/linemk/order-service/internal/service"
)

// ListOrderProductMapHandler обрабатывает GET /api/orderproductmap —
// отдаёт строки связей без преобразований.
func ListOrderProductMapHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ListOrderProductMapHandler"
		logger := log.With(slog.String("op", op))

		links, err := orderService.ListLinks(r.Context())
		if err != nil {
			logger.Error("failed to fetch order-product mappings", slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "Failed to fetch order-product mappings", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, links)
	}
}
