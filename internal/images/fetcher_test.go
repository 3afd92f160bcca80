package images

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFetch(t *testing.T) {
	photo := pngBytes(t, 4, 3)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/photo.png":
			_, _ = w.Write(photo)
		case "/big.png":
			_, _ = w.Write(bytes.Repeat([]byte("x"), 64))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	tests := []struct {
		name     string
		path     string
		maxBytes int64
		want     []byte
		errText  string
	}{
		{name: "ok", path: "/photo.png", maxBytes: DefaultMaxBytes, want: photo},
		{name: "not found", path: "/missing.png", maxBytes: DefaultMaxBytes, errText: "HTTP 404"},
		{name: "too large", path: "/big.png", maxBytes: 10, errText: "image too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFetcher(tt.maxBytes)
			data, err := f.Fetch(context.Background(), srv.URL+tt.path)
			if tt.errText != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errText)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, data)
		})
	}
}

func TestFetchRejectsNonHTTPURLs(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "unparseable", url: "://nope"},
		{name: "file scheme", url: "file:///etc/passwd"},
		{name: "gopher scheme", url: "gopher://127.0.0.1:70/"},
		{name: "relative", url: "/photo.png"},
		{name: "no host", url: "http:///photo.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFetcher(0).Fetch(context.Background(), tt.url)
			require.ErrorIs(t, err, ErrUnsupportedURL)
		})
	}
}

func TestReadLimited(t *testing.T) {
	data, err := ReadLimited(strings.NewReader("abcd"), 4)
	require.NoError(t, err)
	require.Equal(t, []byte("abcd"), data)

	_, err = ReadLimited(strings.NewReader("abcde"), 4)
	require.ErrorIs(t, err, ErrTooLarge)

	_, err = ReadLimited(strings.NewReader(""), 4)
	require.Error(t, err)
}

func TestInspect(t *testing.T) {
	info, err := Inspect(pngBytes(t, 4, 3))
	require.NoError(t, err)
	require.Equal(t, Info{Format: "png", Width: 4, Height: 3}, info)

	_, err = Inspect([]byte("not an image"))
	require.Error(t, err)
}
