package models

// CartItem — строка витрины корзины; проекция только для чтения.
type CartItem struct {
	ProductID          int64  `json:"productid"`
	ProductName        string `json:"productname"`
	ProductDescription string `json:"productdescription"`
}
