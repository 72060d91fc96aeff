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

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerStorage описывает чтение таблицы customers.
type CustomerStorage interface {
	// ListCustomers возвращает всех покупателей; срез никогда не nil.
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	// GetCustomerEmail возвращает email покупателя по id или ErrCustomerNotFound.
	GetCustomerEmail(ctx context.Context, id int64) (string, error)
}

// customerRepository — реализация CustomerStorage поверх PostgREST.
type customerRepository struct {
	db *postgrest.Client
}

// NewCustomerRepository создаёт репозиторий покупателей.
func NewCustomerRepository(db *postgrest.Client) CustomerStorage {
	return &customerRepository{db: db}
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	data, _, err := r.db.From("customers").
		Select("id, email, customer_name", "", false).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}

	customers := make([]*models.Customer, 0)
	if err := json.Unmarshal(data, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}

func (r *customerRepository) GetCustomerEmail(ctx context.Context, id int64) (string, error) {
	data, _, err := r.db.From("customers").
		Select("email", "", false).
		Eq("id", strconv.FormatInt(id, 10)).
		ExecuteWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch customer %d: %w", id, err)
	}

	var rows []struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return "", fmt.Errorf("failed to decode customer %d: %w", id, err)
	}
	if len(rows) == 0 {
		return "", ErrCustomerNotFound
	}
	return rows[0].Email, nil
}
