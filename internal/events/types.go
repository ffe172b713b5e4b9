package events

import "github.com/kahvecikaan/product-registry/internal/domain"

// ProductAdded is published after a product has been saved and given its id.
type ProductAdded struct {
	ProductID      domain.ProductID `json:"product_id"`
	Name           string           `json:"name"`
	Price          int              `json:"price"`
	DiscountPolicy string           `json:"discount_policy"`
}
