package qrcode

import (
	"encoding/json"
	"fmt"

	"crave/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR generates a QR code for order pickup
func (s *qrcodeService) GeneratePickupQR(orderID, orderNumber string) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		OrderID:     orderID,
		OrderNumber: orderNumber,
		Type:        "pickup",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePickupQR parses QR code data and returns the order ID
func (s *qrcodeService) ParsePickupQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "pickup" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.OrderID == "" {
		return "", fmt.Errorf("QR code has no order ID")
	}

	return data.OrderID, nil
}
