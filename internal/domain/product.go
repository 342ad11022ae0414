package domain

// Product represents a single catalog entry. Products have no relationships
// to other entities; the ID is assigned by the store on creation.
//
// Description, price, and stock are nullable in the store. A NULL column scans
// to the zero value here; the API contract does not distinguish the two.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
}

// ProductDraft carries the fields of a product creation request down to the
// store. Nil fields are persisted as NULL, so a draft without a name is
// rejected by the store's NOT NULL constraint rather than validated here.
type ProductDraft struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int64
}
