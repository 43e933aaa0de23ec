package domain

import "time"

// Product Model. Price is in minor currency units (paise) to keep
// totals exact; no floating point anywhere in money math.
type Product struct {
	ID        string    `bson:"_id,omitempty" json:"id"`  // Document id
	Name      string    `bson:"name" json:"name"`         // Product name
	Price     int64     `bson:"price" json:"price"`       // Unit price in minor units
	CreatedAt time.Time `bson:"created_at" json:"created_at"` // Creation timestamp, also the listing order
}
