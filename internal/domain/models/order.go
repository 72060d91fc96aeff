package models

// Order — запись о заказе из удалённой таблицы orders.
// CreatedAt хранится строкой в том виде, в котором её вернула база;
// форматированием для отображения занимается сервисный слой.
type Order struct {
	ID          int64  `json:"id"`
	Description string `json:"orderdescription"`
	CreatedAt   string `json:"created_at"`
}
