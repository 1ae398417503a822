package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"boral/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
		want                 qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ok := NewQRCodeService(256, tt.errorCorrectionLevel, "").(*qrcodeService)
			require.True(t, ok)
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://boral.example")

	qrBytes, err := service.GenerateStoreQR("store-1")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateStoreQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M", "")

		qrBytes, err := service.GenerateStoreQR("store-1")
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_GenerateStoreQR_EmptyID(t *testing.T) {
	_, err := NewQRCodeService(256, "M", "").GenerateStoreQR("")
	assert.Error(t, err)
}

func TestQRCodeService_StoreURL(t *testing.T) {
	svc, ok := NewQRCodeService(256, "M", "https://boral.example/").(*qrcodeService)
	require.True(t, ok)

	assert.Equal(t, "https://boral.example/stores/abc%2Fdef", svc.storeURL("abc/def"))
}

func TestNew_FromConfig(t *testing.T) {
	svc, ok := New(&config.Config{QRCode: &config.QRCodeConfig{Size: 300, ErrorCorrectionLevel: "H", BaseURL: "http://x"}}).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, 300, svc.size)
	assert.Equal(t, qrcode.Highest, svc.errorCorrectionLevel)

	fallback, ok := New(nil).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, fallback.size)
}
