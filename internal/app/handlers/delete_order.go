package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/linemk/order-service/internal/service"
	"github.com/linemk/order-service/internal/storage"
)

// DeleteOrderResponse — ответ при успешном удалении.
type DeleteOrderResponse struct {
	Message string `json:"message"`
}

// DeleteOrderHandler обрабатывает DELETE /api/orders/{id}.
// Нечисловой идентификатор отклоняется до обращений к базе.
func DeleteOrderHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.DeleteOrderHandler"
		logger := log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			logger.Error("invalid order id", slog.String("id", chi.URLParam(r, "id")))
			writeError(w, http.StatusBadRequest, "Invalid order ID.", "")
			return
		}

		if err := orderService.DeleteOrder(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrOrderNotFound) {
				writeError(w, http.StatusNotFound, "Order not found.", "")
				return
			}
			logger.Error("failed to delete order", slog.Int64("orderID", id), slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "An error occurred while deleting the order.", "")
			return
		}

		writeJSON(w, http.StatusOK, DeleteOrderResponse{Message: "Order deleted successfully."})
	}
}
