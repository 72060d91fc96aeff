package handlers

import (
	"log/slog"
	"net/http"

	"github.com/linemk/order-service/internal/service"
)

// CartHandler обрабатывает GET /api/cart.
func CartHandler(log *slog.Logger, cartService service.CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CartHandler"
		logger := log.With(slog.String("op", op))

		items, err := cartService.GetCart(r.Context())
		if err != nil {
			logger.Error("failed to fetch cart data", slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "Failed to fetch cart data", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}
