package domain

import "time"

// OrderStatusPlaced is the only status an order ever carries; orders are
// immutable once created.
const OrderStatusPlaced = "placed"

// Order Model
type Order struct {
	ID        string     `bson:"_id,omitempty" json:"id"`      // Document id
	UserID    string     `bson:"user_id" json:"user_id"`       // Ordering user id
	Username  string     `bson:"username" json:"username"`     // Ordering username
	Items     []CartItem `bson:"items" json:"items"`           // Cart snapshot at placement time
	Total     int64      `bson:"total" json:"total"`           // Sum of line subtotals, minor units
	Status    string     `bson:"status" json:"status"`         // Always "placed"
	CreatedAt time.Time  `bson:"created_at" json:"created_at"` // Placement timestamp
}
