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

var ErrLinkNotFound = errors.New("order-product link not found")

// OrderProductStorage описывает операции над таблицей orderproductmap.
type OrderProductStorage interface {
	// ListLinks возвращает все строки связей как есть, без преобразований.
	ListLinks(ctx context.Context) ([]*models.OrderProductLink, error)
	// GetLink возвращает связь по паре (order_id, product_id) или ErrLinkNotFound.
	GetLink(ctx context.Context, orderID, productID int64) (*models.OrderProductLink, error)
	// CreateLink вставляет новую строку связи.
	CreateLink(ctx context.Context, link *models.OrderProductLink) error
	// UpdateLinkQuantity меняет количество в существующей связи.
	UpdateLinkQuantity(ctx context.Context, orderID, productID int64, quantity int) error
	// DeleteLinksByOrder удаляет все связи заказа; ноль совпадений — не ошибка.
	DeleteLinksByOrder(ctx context.Context, orderID int64) error
}

// orderProductRepository — реализация OrderProductStorage поверх PostgREST.
type orderProductRepository struct {
	db *postgrest.Client
}

// NewOrderProductRepository создаёт репозиторий связей заказ–товар.
func NewOrderProductRepository(db *postgrest.Client) OrderProductStorage {
	return &orderProductRepository{db: db}
}

func (r *orderProductRepository) ListLinks(ctx context.Context) ([]*models.OrderProductLink, error) {
	data, _, err := r.db.From("orderproductmap").
		Select("*", "", false).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order-product links: %w", err)
	}

	links := make([]*models.OrderProductLink, 0)
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("failed to decode order-product links: %w", err)
	}
	return links, nil
}

func (r *orderProductRepository) GetLink(ctx context.Context, orderID, productID int64) (*models.OrderProductLink, error) {
	data, _, err := r.db.From("orderproductmap").
		Select("*", "", false).
		Eq("order_id", strconv.FormatInt(orderID, 10)).
		Eq("product_id", strconv.FormatInt(productID, 10)).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch link for order %d: %w", orderID, err)
	}

	var links []*models.OrderProductLink
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("failed to decode link for order %d: %w", orderID, err)
	}
	if len(links) == 0 {
		return nil, ErrLinkNotFound
	}
	return links[0], nil
}

func (r *orderProductRepository) CreateLink(ctx context.Context, link *models.OrderProductLink) error {
	_, _, err := r.db.From("orderproductmap").
		Insert(link, false, "", "minimal", "").
		ExecuteWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert link for order %d: %w", link.OrderID, err)
	}
	return nil
}

func (r *orderProductRepository) UpdateLinkQuantity(ctx context.Context, orderID, productID int64, quantity int) error {
	_, _, err := r.db.From("orderproductmap").
		Update(map[string]int{"quantity": quantity}, "minimal", "").
		Eq("order_id", strconv.FormatInt(orderID, 10)).
		Eq("product_id", strconv.FormatInt(productID, 10)).
		ExecuteWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update link quantity for order %d: %w", orderID, err)
	}
	return nil
}

func (r *orderProductRepository) DeleteLinksByOrder(ctx context.Context, orderID int64) error {
	_, _, err := r.db.From("orderproductmap").
		Delete("minimal", "").
		Eq("order_id", strconv.FormatInt(orderID, 10)).
		ExecuteWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete links for order %d: %w", orderID, err)
	}
	return nil
}
