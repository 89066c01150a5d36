package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateShareQR renders a PNG QR code pointing at a public detail page URL.
	GenerateShareQR(url string) ([]byte, error)
}
