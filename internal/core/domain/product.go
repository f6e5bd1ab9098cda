package domain

// Product is a single catalog item. The identifier is assigned by the store
// on insert and immutable afterwards.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    *string  `json:"category,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

// ProductPatch is a partial field replace for an existing product.
// Nil fields are left untouched; last write wins.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Brand       *string
	Rating      *float64
}

// IsEmpty reports whether the patch would change nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Category == nil && p.Brand == nil && p.Rating == nil
}
