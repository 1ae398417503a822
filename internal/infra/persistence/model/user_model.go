package model

// UserModel is the document stored in the 'users' collection.
type UserModel struct {
	ID           string  `bson:"id"`
	Username     string  `bson:"username"`
	Email        string  `bson:"email"`
	FullName     string  `bson:"full_name"`
	Phone        *string `bson:"phone"`
	Avatar       *string `bson:"avatar"`
	IsStoreOwner bool    `bson:"is_store_owner"`
	PasswordHash string  `bson:"password_hash"`
	CreatedAt    string  `bson:"created_at"`
}
