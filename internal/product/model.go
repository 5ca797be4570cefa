package product

type Product struct {
	ID    int     `json:"product_id"`
	Name  string  `json:"product_name"`
	Price float64 `json:"product_price"`
	Stock int     `json:"product_stock"`
}

type CreateRequest struct {
	Name  string  `json:"product_name"`
	Price float64 `json:"product_price"`
	Stock int     `json:"product_stock"`
}

type UpdateStockRequest struct {
	Stock int `json:"product_stock"`
}

type UpdateNameRequest struct {
	Name string `json:"product_name"`
}
