package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linemk/order-service/internal/domain/models"
	"github.com/linemk/order-service/internal/storage"
)

// CartService определяет чтение витрины корзины.
type CartService interface {
	GetCart(ctx context.Context) ([]*models.CartItem, error)
}

type cartService struct {
	log      *slog.Logger
	cartRepo storage.CartStorage
}

// NewCartService создаёт сервис корзины.
func NewCartService(log *slog.Logger, cartRepo storage.CartStorage) CartService {
	return &cartService{log: log, cartRepo: cartRepo}
}

func (s *cartService) GetCart(ctx context.Context) ([]*models.CartItem, error) {
	const op = "service.CartService.GetCart"

	items, err := s.cartRepo.ListItems(ctx)
	if err != nil {
		s.log.Error("failed to fetch cart items", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to fetch cart items: %w", op, err)
	}
	return items, nil
}
