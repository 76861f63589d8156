package service

// QRCodeService generates the pickup QR code attached to an order
// confirmation ticket. The counter scans it to look the order up.
type QRCodeService interface {
	// GeneratePickupQR renders a PNG QR code encoding the order identity.
	GeneratePickupQR(orderID, orderNumber string) ([]byte, error)

	// ParsePickupQR decodes QR payload data back into the order ID.
	ParsePickupQR(qrData string) (string, error)
}
