package models

// OrderProductLink — строка связи заказа с товаром (таблица orderproductmap).
// На пару (order_id, product_id) существует не более одной строки.
type OrderProductLink struct {
	OrderID   int64 `json:"order_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}
