package models

// Customer — покупатель; в этом сервисе данные только читаются.
type Customer struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	CustomerName string `json:"customer_name"`
}
