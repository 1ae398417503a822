package model

// OrderItemModel is an embedded order line.
type OrderItemModel struct {
	ProductID *string `bson:"product_id"`
	ServiceID *string `bson:"service_id"`
	Quantity  int     `bson:"quantity"`
	Price     float64 `bson:"price"`
	Name      string  `bson:"name"`
}

// OrderModel is the document stored in the 'orders' collection.
type OrderModel struct {
	ID        string           `bson:"id"`
	StoreID   string           `bson:"store_id"`
	UserID    string           `bson:"user_id"`
	Items     []OrderItemModel `bson:"items"`
	Total     float64          `bson:"total"`
	Status    string           `bson:"status"`
	Notes     *string          `bson:"notes"`
	CreatedAt string           `bson:"created_at"`
	UpdatedAt string           `bson:"updated_at"`
}

// OrderStatsRow is the result of the per-store order aggregation.
type OrderStatsRow struct {
	Count   int     `bson:"count"`
	Revenue float64 `bson:"revenue"`
}
