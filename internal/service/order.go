package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/linemk/order-service/internal/domain/models"
	"github.com/linemk/order-service/internal/storage"
)

// displayTimeFormat — формат, в котором витрина ожидает время создания заказа.
const displayTimeFormat = "2006-01-02 15:04:05"

// createdAtLayouts — варианты представления времени, которые возвращает
// удалённая база в зависимости от типа колонки и того, что прислал клиент.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

// OrderService определяет бизнес-операции над заказами и их связями с товарами.
type OrderService interface {
	ListOrders(ctx context.Context) ([]OrderView, error)
	ListLinks(ctx context.Context) ([]*models.OrderProductLink, error)
	CreateOrder(ctx context.Context, in CreateOrderInput) (*CreatedOrder, error)
	UpdateOrder(ctx context.Context, orderID int64, in UpdateOrderInput) error
	DeleteOrder(ctx context.Context, orderID int64) error
	Ping(ctx context.Context) error
}

// OrderView — заказ в форме ответа списка: время создания уже приведено
// к отображаемому часовому поясу.
type OrderView struct {
	OrderID          int64  `json:"orderId"`
	OrderDescription string `json:"orderDescription"`
	CreatedAt        string `json:"created_at"`
}

// CreateOrderInput — проверенные данные для создания заказа.
type CreateOrderInput struct {
	Description string
	CreatedAt   string
	ProductID   int64
	Quantity    int
}

// CreatedOrder — результат успешного создания заказа.
type CreatedOrder struct {
	OrderID     int64
	Description string
	ProductID   int64
	Quantity    int
}

// UpdateOrderInput — проверенные данные для обновления заказа.
// Описание заказа после создания не меняется.
type UpdateOrderInput struct {
	CreatedAt string
	ProductID int64
	Quantity  int
}

type orderService struct {
	log        *slog.Logger
	orderRepo  storage.OrderStorage
	linkRepo   storage.OrderProductStorage
	displayLoc *time.Location
}

// NewOrderService создаёт сервис заказов.
func NewOrderService(log *slog.Logger, orderRepo storage.OrderStorage, linkRepo storage.OrderProductStorage, displayLoc *time.Location) OrderService {
	return &orderService{
		log:        log,
		orderRepo:  orderRepo,
		linkRepo:   linkRepo,
		displayLoc: displayLoc,
	}
}

func (s *orderService) ListOrders(ctx context.Context) ([]OrderView, error) {
	const op = "service.OrderService.ListOrders"

	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		s.log.Error("failed to fetch orders", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to fetch orders: %w", op, err)
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, OrderView{
			OrderID:          o.ID,
			OrderDescription: o.Description,
			CreatedAt:        s.formatCreatedAt(o.CreatedAt),
		})
	}
	return views, nil
}

func (s *orderService) ListLinks(ctx context.Context) ([]*models.OrderProductLink, error) {
	const op = "service.OrderService.ListLinks"

	links, err := s.linkRepo.ListLinks(ctx)
	if err != nil {
		s.log.Error("failed to fetch order-product links", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to fetch order-product links: %w", op, err)
	}
	return links, nil
}

// CreateOrder вставляет заказ, затем привязывает его к товару. Это два
// отдельных запроса к удалённой базе: если вторая запись не удалась,
// строка заказа уже зафиксирована и остаётся без связи.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*CreatedOrder, error) {
	const op = "service.OrderService.CreateOrder"
	logger := s.log.With(slog.String("op", op), slog.Int64("productID", in.ProductID))

	orderID, err := s.orderRepo.CreateOrder(ctx, in.Description, in.CreatedAt)
	if err != nil {
		logger.Error("failed to insert order", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to insert order: %w", op, err)
	}

	link := &models.OrderProductLink{
		OrderID:   orderID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	}
	if err := s.linkRepo.CreateLink(ctx, link); err != nil {
		logger.Error("failed to link order to product", slog.Int64("orderID", orderID), slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to link order to product: %w", op, err)
	}

	logger.Info("order created", slog.Int64("orderID", orderID))
	return &CreatedOrder{
		OrderID:     orderID,
		Description: in.Description,
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
	}, nil
}

// UpdateOrder обновляет время создания заказа и делает upsert связи
// через проверку существования: есть строка — меняем количество, нет — вставляем.
func (s *orderService) UpdateOrder(ctx context.Context, orderID int64, in UpdateOrderInput) error {
	const op = "service.OrderService.UpdateOrder"
	logger := s.log.With(slog.String("op", op), slog.Int64("orderID", orderID), slog.Int64("productID", in.ProductID))

	if err := s.orderRepo.UpdateOrderCreatedAt(ctx, orderID, in.CreatedAt); err != nil {
		logger.Error("failed to update order", slog.Any("error", err))
		return fmt.Errorf("%s: failed to update order: %w", op, err)
	}

	_, err := s.linkRepo.GetLink(ctx, orderID, in.ProductID)
	switch {
	case err == nil:
		if err := s.linkRepo.UpdateLinkQuantity(ctx, orderID, in.ProductID, in.Quantity); err != nil {
			logger.Error("failed to update link quantity", slog.Any("error", err))
			return fmt.Errorf("%s: failed to update link quantity: %w", op, err)
		}
	case errors.Is(err, storage.ErrLinkNotFound):
		// Два конкурентных обновления могут одновременно не увидеть строку и
		// оба пойти на вставку; проигравшего останавливает составной ключ
		// таблицы, и он получает ошибку записи, а не дубликат.
		link := &models.OrderProductLink{
			OrderID:   orderID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
		}
		if err := s.linkRepo.CreateLink(ctx, link); err != nil {
			logger.Error("failed to create link", slog.Any("error", err))
			return fmt.Errorf("%s: failed to create link: %w", op, err)
		}
	default:
		logger.Error("failed to look up link", slog.Any("error", err))
		return fmt.Errorf("%s: failed to look up link: %w", op, err)
	}

	logger.Info("order updated")
	return nil
}

// DeleteOrder удаляет сначала связи, затем сам заказ, чтобы не оставить
// строк, указывающих на удалённый заказ. Для несуществующего id связи всё
// равно зачищаются до того, как вернётся ErrOrderNotFound.
func (s *orderService) DeleteOrder(ctx context.Context, orderID int64) error {
	const op = "service.OrderService.DeleteOrder"
	logger := s.log.With(slog.String("op", op), slog.Int64("orderID", orderID))

	if err := s.linkRepo.DeleteLinksByOrder(ctx, orderID); err != nil {
		logger.Error("failed to delete order links", slog.Any("error", err))
		return fmt.Errorf("%s: failed to delete order links: %w", op, err)
	}

	if err := s.orderRepo.DeleteOrder(ctx, orderID); err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			logger.Warn("order not found")
			return storage.ErrOrderNotFound
		}
		logger.Error("failed to delete order", slog.Any("error", err))
		return fmt.Errorf("%s: failed to delete order: %w", op, err)
	}

	logger.Info("order deleted")
	return nil
}

func (s *orderService) Ping(ctx context.Context) error {
	const op = "service.OrderService.Ping"

	if err := s.orderRepo.Ping(ctx); err != nil {
		s.log.Error("database probe failed", slog.String("op", op), slog.Any("error", err))
		return fmt.Errorf("%s: database probe failed: %w", op, err)
	}
	return nil
}

// formatCreatedAt приводит сохранённое время к отображаемому часовому поясу.
// Нераспознанные значения возвращаются как есть.
func (s *orderService) formatCreatedAt(raw string) string {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(s.displayLoc).Format(displayTimeFormat)
		}
	}
	return raw
}
