package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/linemk/order-service/internal/service"
)

// CreateOrderRequest — тело запроса POST /api/orders с тегами валидации.
// Идентификатор товара обязателен, количество строго положительное;
// проверка выполняется до каких-либо обращений к базе.
type CreateOrderRequest struct {
	OrderDescription string `json:"orderDescription"`
	CreatedAt        string `json:"createdAt"`
	ProductID        *int64 `json:"productId" validate:"required"`
	Quantity         int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderResponse — ответ при успешном создании заказа.
type CreateOrderResponse struct {
	Message          string `json:"message"`
	OrderID          int64  `json:"orderId"`
	OrderDescription string `json:"orderDescription"`
	ProductID        int64  `json:"productId"`
	Quantity         int    `json:"quantity"`
}

var validate = validator.New()

// CreateOrderHandler обрабатывает POST /api/orders.
func CreateOrderHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CreateOrderHandler"
		logger := log.With(slog.String("op", op))

		var req CreateOrderRequest
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

		created, err := orderService.CreateOrder(r.Context(), service.CreateOrderInput{
			Description: req.OrderDescription,
			CreatedAt:   req.CreatedAt,
			ProductID:   *req.ProductID,
			Quantity:    req.Quantity,
		})
		if err != nil {
			logger.Error("failed to create order", slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "Error adding order", err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, CreateOrderResponse{
			Message:          "Order created and product linked successfully",
			OrderID:          created.OrderID,
			OrderDescription: created.Description,
			ProductID:        created.ProductID,
			Quantity:         created.Quantity,
		})
	}
}
