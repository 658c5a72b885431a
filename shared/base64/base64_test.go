package base64_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"manege/shared/base64"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{"png data url", "data:image/png;base64,iVBORw0KGgo=", "image/png"},
		{"jpeg data url", "data:image/jpeg;base64,/9j/4AAQ", "image/jpeg"},
		{"missing marker", "image/png;iVBORw0KGgo=", ""},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base64.GetContentType(tt.file))
		})
	}
}
