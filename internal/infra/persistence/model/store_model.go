package model

// StoreModel is the document stored in the 'stores' collection.
type StoreModel struct {
	ID           string  `bson:"id"`
	Name         string  `bson:"name"`
	Description  string  `bson:"description"`
	Category     string  `bson:"category"`
	Address      string  `bson:"address"`
	Latitude     float64 `bson:"latitude"`
	Longitude    float64 `bson:"longitude"`
	Phone        *string `bson:"phone"`
	Email        *string `bson:"email"`
	Logo         *string `bson:"logo"`
	CoverImage   *string `bson:"cover_image"`
	OwnerID      string  `bson:"owner_id"`
	Rating       float64 `bson:"rating"`
	ReviewsCount int     `bson:"reviews_count"`
	CreatedAt    string  `bson:"created_at"`
	UpdatedAt    string  `bson:"updated_at"`
}
