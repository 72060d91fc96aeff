package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/linemk/order-service/internal/domain/models"
	"github.com/linemk/order-service/internal/storage"
)

// CustomerService определяет чтение данных покупателей.
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	// GetCustomerEmailByOrderID возвращает email покупателя; идентификатор
	// заказа сопоставляется с id в таблице customers.
	GetCustomerEmailByOrderID(ctx context.Context, orderID int64) (string, error)
}

type customerService struct {
	log          *slog.Logger
	customerRepo storage.CustomerStorage
}

// NewCustomerService создаёт сервис покупателей.
func NewCustomerService(log *slog.Logger, customerRepo storage.CustomerStorage) CustomerService {
	return &customerService{log: log, customerRepo: customerRepo}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	const op = "service.CustomerService.ListCustomers"

	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		s.log.Error("failed to fetch customers", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to fetch customers: %w", op, err)
	}
	return customers, nil
}

func (s *customerService) GetCustomerEmailByOrderID(ctx context.Context, orderID int64) (string, error) {
	const op = "service.CustomerService.GetCustomerEmailByOrderID"

	email, err := s.customerRepo.GetCustomerEmail(ctx, orderID)
	if err != nil {
		if errors.Is(err, storage.ErrCustomerNotFound) {
			s.log.Warn("customer not found", slog.String("op", op), slog.Int64("orderID", orderID))
			return "", storage.ErrCustomerNotFound
		}
		s.log.Error("failed to fetch customer", slog.String("op", op), slog.Any("error", err))
		return "", fmt.Errorf("%s: failed to fetch customer: %w", op, err)
	}
	return email, nil
}
