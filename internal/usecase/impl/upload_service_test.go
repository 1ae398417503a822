package impl

import (
	"context"
	"testing"

	"boral/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadService_EncodeImage(t *testing.T) {
	svc := NewUploadService(newDiscardLogger())

	got, err := svc.EncodeImage(context.Background(), &usecase.UploadedFile{Content: []byte("abc")})

	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,YWJj", got)
}
