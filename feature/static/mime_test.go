package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"/new.html", "text/html; charset=utf-8"},
		{"/app.JS", "application/javascript; charset=utf-8"},
		{"/css/site.css", "text/css; charset=utf-8"},
		{"/data.json", "application/json; charset=utf-8"},
		{"/img/a.png", "image/png"},
		{"/img/a.jpg", "image/jpeg"},
		{"/img/a.jpeg", "image/jpeg"},
		{"/logo.svg", "image/svg+xml"},
		{"/favicon.ico", "image/x-icon"},
		{"/robots.txt", "text/plain; charset=utf-8"},
		{"/archive.tar.gz", DefaultContentType},
		{"/README", DefaultContentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentType(tt.name))
		})
	}
}
