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

// customerMessage — форма ответа с одним полем message; эндпоинты
// покупателей исторически отвечают именно так.
type customerMessage struct {
	Message string `json:"message"`
}

// customerEmail — ответ с email покупателя.
type customerEmail struct {
	Email string `json:"email"`
}

// ListCustomersHandler обрабатывает GET /api/customers.
// Пустой результат — это пустой массив, а не null.
func ListCustomersHandler(log *slog.Logger, customerService service.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ListCustomersHandler"
		logger := log.With(slog.String("op", op))

		customers, err := customerService.ListCustomers(r.Context())
		if err != nil {
			logger.Error("failed to fetch customers", slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "Failed to fetch customer data", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, customers)
	}
}

// CustomerByOrderHandler обрабатывает GET /api/customers/{orderId}.
func CustomerByOrderHandler(log *slog.Logger, customerService service.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CustomerByOrderHandler"
		logger := log.With(slog.String("op", op))

		orderID, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
		if err != nil {
			logger.Error("invalid order id", slog.String("orderId", chi.URLParam(r, "orderId")))
			writeError(w, http.StatusBadRequest, "Invalid order ID.", "")
			return
		}

		email, err := customerService.GetCustomerEmailByOrderID(r.Context(), orderID)
		if err != nil {
			if errors.Is(err, storage.ErrCustomerNotFound) {
				writeJSON(w, http.StatusNotFound, customerMessage{Message: "Customer not found"})
				return
			}
			logger.Error("failed to fetch customer details", slog.Any("error", err))
			writeJSON(w, http.StatusInternalServerError, customerMessage{Message: "Error fetching customer details"})
			return
		}

		writeJSON(w, http.StatusOK, customerEmail{Email: email})
	}
}
