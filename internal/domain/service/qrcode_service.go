package service

import "displaygram/internal/domain/entity"

// QRCodeService defines the interface for share-link QR code generation
type QRCodeService interface {
	// ShareLink builds the public URL that opens a shared resource with token
	ShareLink(kind entity.ResourceKind, resourceID, token string) string

	// GenerateShareQR renders the share link of a resource as a PNG image
	GenerateShareQR(kind entity.ResourceKind, resourceID, token string) ([]byte, error)
}
