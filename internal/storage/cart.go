package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/linemk/order-service/internal/domain/models"
	"github.com/supabase-community/postgrest-go"
)

// CartStorage описывает чтение витрины корзины.
type CartStorage interface {
	// ListItems возвращает фиксированную проекцию колонок таблицы cart.
	ListItems(ctx context.Context) ([]*models.CartItem, error)
}

// cartRepository — реализация CartStorage поверх PostgREST.
type cartRepository struct {
	db *postgrest.Client
}

// NewCartRepository создаёт репозиторий корзины.
func NewCartRepository(db *postgrest.Client) CartStorage {
	return &cartRepository{db: db}
}

func (r *cartRepository) ListItems(ctx context.Context) ([]*models.CartItem, error) {
	data, _, err := r.db.From("cart").
		Select("productid, productname, productdescription", "", false).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}

	items := make([]*models.CartItem, 0)
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}
	return items, nil
}
