package qrcode

import (
	"testing"

	"displaygram/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService("https://app.example.com", tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_ShareLink(t *testing.T) {
	service := NewQRCodeService("https://app.example.com/", 256, "M")

	assert.Equal(t,
		"https://app.example.com/shared/post/p1?token=abc",
		service.ShareLink(entity.ResourceKindPost, "p1", "abc"))
	assert.Equal(t,
		"https://app.example.com/shared/collection/c%201?token=a%2Bb",
		service.ShareLink(entity.ResourceKindCollection, "c 1", "a+b"))
}

func TestQRCodeService_GenerateShareQR(t *testing.T) {
	service := NewQRCodeService("https://app.example.com", 256, "M")

	qrBytes, err := service.GenerateShareQR(entity.ResourceKindPost, "p1", "abc")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateShareQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService("https://app.example.com", tt.size, "M")

			qrBytes, err := service.GenerateShareQR(entity.ResourceKindCollection, "c1", "token")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}
