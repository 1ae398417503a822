package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateStoreQR renders a PNG QR code linking to the public page of a store
	GenerateStoreQR(storeID string) ([]byte, error)
}
