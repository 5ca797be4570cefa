package order

import "time"

type ItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type CreateRequest struct {
	Items []ItemRequest `json:"items"`
}

type CreateResult struct {
	OrderID int           `json:"order_id"`
	Message string        `json:"message"`
	Items   []ItemRequest `json:"items"`
}

// CommitLine is one order line ready for the commit phase. NewStock is
// computed from the stock value read during the pre-check; it is not
// re-read inside the transaction.
type CommitLine struct {
	ProductID int
	Quantity  int
	NewStock  int
}

// ProductInfo is the slice of a product the pre-check phase needs.
type ProductInfo struct {
	Name  string
	Stock int
}

type ViewItem struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type View struct {
	OrderID    int        `json:"order_id"`
	OrderDate  time.Time  `json:"order_date"`
	Items      []ViewItem `json:"items"`
	TotalPrice float64    `json:"total_price"`
}
