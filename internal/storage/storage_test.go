package storage_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/linemk/order-service/internal/domain/models"
	"github.com/linemk/order-service/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/supabase-community/postgrest-go"
)

// newTestClient поднимает httptest-сервер, играющий роль PostgREST,
// и возвращает клиент, направленный на него.
func newTestClient(t *testing.T, handler http.HandlerFunc) *postgrest.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := postgrest.NewClient(srv.URL, "public", nil)
	assert.NoError(t, client.ClientError)
	return client
}

func TestListOrders_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"orderdescription":"Test Order","created_at":"2024-01-02T10:00:00"}]`))
	})

	repo := storage.NewOrderRepository(client)
	orders, err := repo.ListOrders(context.Background())
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, "Test Order", orders[0].Description)
	assert.Equal(t, "2024-01-02T10:00:00", orders[0].CreatedAt)
}

func TestListOrders_Empty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	repo := storage.NewOrderRepository(client)
	orders, err := repo.ListOrders(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestListOrders_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"upstream failure"}`))
	})

	repo := storage.NewOrderRepository(client)
	_, err := repo.ListOrders(context.Background())
	assert.Error(t, err)
}

func TestCreateOrder_ReturnsGeneratedID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var row map[string]string
		assert.NoError(t, json.Unmarshal(body, &row))
		assert.Equal(t, "Test Order", row["orderdescription"])
		assert.Equal(t, "2024-01-02T10:00:00Z", row["created_at"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":42,"orderdescription":"Test Order","created_at":"2024-01-02T10:00:00Z"}]`))
	})

	repo := storage.NewOrderRepository(client)
	id, err := repo.CreateOrder(context.Background(), "Test Order", "2024-01-02T10:00:00Z")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestCreateOrder_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"duplicate key value violates unique constraint"}`))
	})

	repo := storage.NewOrderRepository(client)
	_, err := repo.CreateOrder(context.Background(), "Test Order", "2024-01-02T10:00:00Z")
	assert.Error(t, err)
}

func TestDeleteOrder_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "eq.5", r.URL.Query().Get("id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":5,"orderdescription":"Test Order","created_at":"2024-01-02T10:00:00Z"}]`))
	})

	repo := storage.NewOrderRepository(client)
	assert.NoError(t, repo.DeleteOrder(context.Background(), 5))
}

func TestDeleteOrder_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	repo := storage.NewOrderRepository(client)
	err := repo.DeleteOrder(context.Background(), 5)
	assert.ErrorIs(t, err, storage.ErrOrderNotFound)
}

func TestGetLink_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orderproductmap", r.URL.Path)
		assert.Equal(t, "eq.10", r.URL.Query().Get("order_id"))
		assert.Equal(t, "eq.7", r.URL.Query().Get("product_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"order_id":10,"product_id":7,"quantity":3}]`))
	})

	repo := storage.NewOrderProductRepository(client)
	link, err := repo.GetLink(context.Background(), 10, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), link.OrderID)
	assert.Equal(t, int64(7), link.ProductID)
	assert.Equal(t, 3, link.Quantity)
}

func TestGetLink_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	repo := storage.NewOrderProductRepository(client)
	_, err := repo.GetLink(context.Background(), 10, 7)
	assert.ErrorIs(t, err, storage.ErrLinkNotFound)
}

func TestUpdateLinkQuantity_SendsPatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.10", r.URL.Query().Get("order_id"))
		assert.Equal(t, "eq.7", r.URL.Query().Get("product_id"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var patch map[string]int
		assert.NoError(t, json.Unmarshal(body, &patch))
		assert.Equal(t, 5, patch["quantity"])

		w.WriteHeader(http.StatusNoContent)
	})

	repo := storage.NewOrderProductRepository(client)
	assert.NoError(t, repo.UpdateLinkQuantity(context.Background(), 10, 7, 5))
}

func TestDeleteLinksByOrder_ZeroMatchesIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "eq.10", r.URL.Query().Get("order_id"))

		w.WriteHeader(http.StatusNoContent)
	})

	repo := storage.NewOrderProductRepository(client)
	assert.NoError(t, repo.DeleteLinksByOrder(context.Background(), 10))
}

func TestCreateLink_SendsRow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orderproductmap", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var row models.OrderProductLink
		assert.NoError(t, json.Unmarshal(body, &row))
		assert.Equal(t, int64(10), row.OrderID)
		assert.Equal(t, int64(7), row.ProductID)
		assert.Equal(t, 3, row.Quantity)

		w.WriteHeader(http.StatusCreated)
	})

	repo := storage.NewOrderProductRepository(client)
	err := repo.CreateLink(context.Background(), &models.OrderProductLink{OrderID: 10, ProductID: 7, Quantity: 3})
	assert.NoError(t, err)
}

func TestListCartItems_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cart", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"productid":7,"productname":"Mug","productdescription":"Ceramic mug"}]`))
	})

	repo := storage.NewCartRepository(client)
	items, err := repo.ListItems(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Mug", items[0].ProductName)
}

func TestListCustomers_EmptyIsNotNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	repo := storage.NewCustomerRepository(client)
	customers, err := repo.ListCustomers(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestGetCustomerEmail_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers", r.URL.Path)
		assert.Equal(t, "eq.5", r.URL.Query().Get("id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"email":"customer@example.com"}]`))
	})

	repo := storage.NewCustomerRepository(client)
	email, err := repo.GetCustomerEmail(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, "customer@example.com", email)
}

func TestGetCustomerEmail_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	repo := storage.NewCustomerRepository(client)
	_, err := repo.GetCustomerEmail(context.Background(), 5)
	assert.ErrorIs(t, err, storage.ErrCustomerNotFound)
}
