package domain

// CartItem is a snapshot of a product at the moment it was added to the
// cart. Name and price are copied so a later catalog change cannot alter
// an order placed from this cart.
type CartItem struct {
	ProductID string `bson:"product_id" json:"product_id"` // Product reference
	Name      string `bson:"name" json:"name"`             // Product name at add time
	Price     int64  `bson:"price" json:"price"`           // Unit price at add time, minor units
	Qty       int    `bson:"qty" json:"qty"`               // Quantity, always >= 1
}

// Subtotal returns price x qty for this line
func (ci CartItem) Subtotal() int64 {
	return ci.Price * int64(ci.Qty)
}
