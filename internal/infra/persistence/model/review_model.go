package model

// ReviewModel is the document stored in the 'reviews' collection.
type ReviewModel struct {
	ID        string `bson:"id"`
	StoreID   string `bson:"store_id"`
	UserID    string `bson:"user_id"`
	UserName  string `bson:"user_name"`
	Rating    int    `bson:"rating"`
	Comment   string `bson:"comment"`
	CreatedAt string `bson:"created_at"`
}

// RatingSummaryRow is the result of the per-store rating aggregation.
type RatingSummaryRow struct {
	Sum   int `bson:"sum"`
	Count int `bson:"count"`
}
