package repository

import (
	"context"

	"github.com/Cheertaboi/minimal-shop/internal/models"
)

// Catalog is the read-only product source the storefront sells from.
// GetProduct returns (nil, nil) for an unknown id.
type Catalog interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
}

var defaultProducts = []models.Product{
	{ID: 1, Name: "Минималистичные часы", Price: 8900, Category: "Аксессуары", Image: "/placeholder.svg"},
	{ID: 2, Name: "Керамическая ваза", Price: 3200, Category: "Декор", Image: "/placeholder.svg"},
	{ID: 3, Name: "Кожаный кошелек", Price: 4500, Category: "Аксессуары", Image: "/placeholder.svg"},
	{ID: 4, Name: "Настольная лампа", Price: 6700, Category: "Декор", Image: "/placeholder.svg"},
	{ID: 5, Name: "Текстильная сумка", Price: 2800, Category: "Аксессуары", Image: "/placeholder.svg"},
	{ID: 6, Name: "Набор свечей", Price: 1900, Category: "Декор", Image: "/placeholder.svg"},
}

type StaticCatalog struct {
	products []models.Product
}

// NewStaticCatalog serves the given products, or the built-in shop
// assortment when none are passed.
func NewStaticCatalog(products ...models.Product) *StaticCatalog {
	if len(products) == 0 {
		products = defaultProducts
	}
	out := make([]models.Product, len(products))
	copy(out, products)
	return &StaticCatalog{products: out}
}

func (c *StaticCatalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *StaticCatalog) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

// FilterByCategory keeps products whose category matches. An empty category
// keeps everything.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if category == "" {
		return products
	}
	out := []models.Product{}
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories lists distinct categories in first-seen order.
func Categories(products []models.Product) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, p := range products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}
