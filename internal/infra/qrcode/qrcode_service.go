package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
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

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// ShareLink builds {baseURL}/shared/{kind}/{id}?token={token}
func (s *qrcodeService) ShareLink(kind entity.ResourceKind, resourceID, token string) string {
	return fmt.Sprintf("%s/shared/%s/%s?token=%s",
		s.baseURL, kind, url.PathEscape(resourceID), url.QueryEscape(token))
}

// GenerateShareQR generates a PNG QR code for the share link
func (s *qrcodeService) GenerateShareQR(kind entity.ResourceKind, resourceID, token string) ([]byte, error) {
	qrCode, err := qrcode.New(s.ShareLink(kind, resourceID, token), s.errorCorrectionLevel)
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
