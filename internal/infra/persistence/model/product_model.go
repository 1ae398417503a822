package model

// ProductModel is the document stored in the 'products' collection.
type ProductModel struct {
	ID          string   `bson:"id"`
	Name        string   `bson:"name"`
	Description string   `bson:"description"`
	Price       float64  `bson:"price"`
	Images      []string `bson:"images"`
	Stock       int      `bson:"stock"`
	Category    string   `bson:"category"`
	StoreID     string   `bson:"store_id"`
	Likes       int      `bson:"likes"`
	LikedBy     []string `bson:"liked_by"`
	CreatedAt   string   `bson:"created_at"`
	UpdatedAt   string   `bson:"updated_at"`
}

// ServiceModel is the document stored in the 'services' collection.
type ServiceModel struct {
	ID          string  `bson:"id"`
	Name        string  `bson:"name"`
	Description string  `bson:"description"`
	Price       float64 `bson:"price"`
	Duration    *string `bson:"duration"`
	Category    string  `bson:"category"`
	Image       *string `bson:"image"`
	StoreID     string  `bson:"store_id"`
	CreatedAt   string  `bson:"created_at"`
	UpdatedAt   string  `bson:"updated_at"`
}
