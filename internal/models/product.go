package models

// Category is a product category used when browsing the menu.
type Category string

const (
	CategoryDish    Category = "PRATO"
	CategoryDrink   Category = "BEBIDA"
	CategoryDessert Category = "SOBREMESA"
)

// Categories lists the browsable product categories in menu order.
var Categories = []Category{CategoryDish, CategoryDrink, CategoryDessert}

// ProductType is the category record nested inside a product.
type ProductType struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

// Product represents a menu product.
type Product struct {
	ID          int         `json:"id"`
	Name        string      `json:"nome"`
	Description string      `json:"descricao"`
	Price       float64     `json:"preco"`
	ImageLink   string      `json:"linkImagem"`
	Type        ProductType `json:"tipoProduto"`
}
