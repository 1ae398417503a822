package model

// DeviceModel is a document in the devices collection.
type DeviceModel struct {
	ID        string `bson:"id"`
	UserID    string `bson:"user_id"`
	FCMToken  string `bson:"fcm_token"`
	DeviceID  string `bson:"device_id"`
	Platform  string `bson:"platform"`
	IsActive  bool   `bson:"is_active"`
	CreatedAt string `bson:"created_at"`
	UpdatedAt string `bson:"updated_at"`
}
