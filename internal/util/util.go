package util

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DefaultImageContentType is assumed for uploads that carry no content type.
const DefaultImageContentType = "image/jpeg"

// DataURL encodes content as a base64 data URL, e.g. "data:image/png;base64,iVBOR...".
func DataURL(contentType string, content []byte) string {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		contentType = DefaultImageContentType
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(content)
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
