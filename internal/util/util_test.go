package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 B", FormatBytes(0))
	assert.Equal(t, "1023 B", FormatBytes(1023))
	assert.Equal(t, "1.5 KB", FormatBytes(1536))
	assert.Equal(t, "2.0 MB", FormatBytes(2<<20))
	assert.Equal(t, "5.0 GB", FormatBytes(5<<30))
}

func TestDataURL(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,YWJj", DataURL("image/png", []byte("abc")))
	assert.Equal(t, "data:image/jpeg;base64,YWJj", DataURL("", []byte("abc")))
	assert.Equal(t, "data:image/jpeg;base64,", DataURL("  ", nil))
}
