package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/linemk/order-service/internal/service"
)

// UpdateOrderRequest — тело запроса PUT /api/orders/{id}.
// Описание заказа этим запросом не меняется.
type UpdateOrderRequest struct {
	CreatedAt string `json:"createdAt"`
	ProductID *int64 `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// UpdateOrderResponse — ответ при успешном обновлении.
type UpdateOrderResponse struct {
	Message string `json:"message"`
}

// UpdateOrderHandler обрабатывает PUT /api/orders/{id}.
func UpdateOrderHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.UpdateOrderHandler"
		logger := log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			logger.Error("invalid order id", slog.String("id", chi.URLParam(r, "id")))
			writeError(w, http.StatusBadRequest, "Invalid order ID.", "")
			return
		}

		var req UpdateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			writeError(w, http.StatusBadRequest, "Invalid request body.", "")
			return
		}

		if err := validate.Struct(req); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			writeError(w, http.StatusBadRequest, "Invalid product ID or quantity.", "")
			return
		}

		err = orderService.UpdateOrder(r.Context(), id, service.UpdateOrderInput{
			CreatedAt: req.CreatedAt,
			ProductID: *req.ProductID,
			Quantity:  req.Quantity,
		})
		if err != nil {
			logger.Error("failed to update order", slog.Int64("orderID", id), slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "Error updating order", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, UpdateOrderResponse{Message: "Order updated successfully"})
	}
}
