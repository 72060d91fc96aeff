package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/linemk/order-service/internal/domain/models"
	"github.com/supabase-community/postgrest-go"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStorage описывает операции над удалённой таблицей orders.
type OrderStorage interface {
	// ListOrders возвращает все заказы (id, описание, время создания).
	ListOrders(ctx context.Context) ([]*models.Order, error)
	// CreateOrder вставляет новый заказ и возвращает присвоенный базой id.
	CreateOrder(ctx context.Context, description, createdAt string) (int64, error)
	// UpdateOrderCreatedAt обновляет только время создания заказа.
	UpdateOrderCreatedAt(ctx context.Context, id int64, createdAt string) error
	// DeleteOrder удаляет заказ; если строки не было — ErrOrderNotFound.
	DeleteOrder(ctx context.Context, id int64) error
	// Ping проверяет доступность удалённой базы одной дешёвой выборкой.
	Ping(ctx context.Context) error
}

// orderRepository — реализация OrderStorage поверх PostgREST-клиента.
type orderRepository struct {
	db *postgrest.Client
}

// NewOrderRepository создаёт репозиторий заказов.
func NewOrderRepository(db *postgrest.Client) OrderStorage {
	return &orderRepository{db: db}
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]*models.Order, error) {
	data, _, err := r.db.From("orders").
		Select("id, orderdescription, created_at", "", false).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	orders := make([]*models.Order, 0)
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// orderRow — записываемые колонки таблицы orders; id присваивает база.
type orderRow struct {
	Description string `json:"orderdescription"`
	CreatedAt   string `json:"created_at"`
}

func (r *orderRepository) CreateOrder(ctx context.Context, description, createdAt string) (int64, error) {
	data, _, err := r.db.From("orders").
		Insert(orderRow{Description: description, CreatedAt: createdAt}, false, "", "representation", "").
		ExecuteWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	var inserted []models.Order
	if err := json.Unmarshal(data, &inserted); err != nil {
		return 0, fmt.Errorf("failed to decode inserted order: %w", err)
	}
	if len(inserted) == 0 {
		return 0, errors.New("order insert returned no rows")
	}
	return inserted[0].ID, nil
}

func (r *orderRepository) UpdateOrderCreatedAt(ctx context.Context, id int64, createdAt string) error {
	_, _, err := r.db.From("orders").
		Update(map[string]string{"created_at": createdAt}, "minimal", "").
		Eq("id", strconv.FormatInt(id, 10)).
		ExecuteWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update order %d: %w", id, err)
	}
	return nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id int64) error {
	// Удаление с return=representation: по возвращённым строкам видно,
	// существовал ли заказ вообще.
	data, _, err := r.db.From("orders").
		Delete("representation", "").
		Eq("id", strconv.FormatInt(id, 10)).
		ExecuteWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}

	var deleted []models.Order
	if err := json.Unmarshal(data, &deleted); err != nil {
		return fmt.Errorf("failed to decode deleted rows: %w", err)
	}
	if len(deleted) == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) Ping(ctx context.Context) error {
	_, _, err := r.db.From("orders").
		Select("id", "", false).
		Limit(1, "").
		ExecuteWithContext(ctx)
	if err != nil {
		return fmt.Errorf("database probe failed: %w", err)
	}
	return nil
}
