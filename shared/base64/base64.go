package base64

import "strings"

const (
	uriPrefix = "data:"
	uriMarker = ";base64,"
)

// GetContentType extracts the MIME type from a data URI such as
// "data:image/png;base64,...". Anything that is not a data URI yields "".
func GetContentType(file string) string {
	if !strings.HasPrefix(file, uriPrefix) {
		return ""
	}

	end := strings.Index(file, uriMarker)
	if end < len(uriPrefix) {
		return ""
	}

	return file[len(uriPrefix):end]
}
