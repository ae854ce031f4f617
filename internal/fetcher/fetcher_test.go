package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SamMcCormick61/ultidiff/internal/config"
	"github.com/SamMcCormick61/ultidiff/internal/errorwrapper"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher() *Fetcher {
	return NewFetcher(config.NewDefaultFetcherConfig(), zerolog.Nop())
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single line", "hello", []string{"hello"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"windows endings", "a\r\nb\r\n", []string{"a", "b"}},
		{"old mac endings", "a\rb", []string{"a", "b"}},
		{"blank interior lines", "a\n\nb", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitLines(tt.input))
		})
	}
}

func TestDecodeText_ValidUTF8(t *testing.T) {
	assert.Equal(t, "héllo ✓", DecodeText([]byte("héllo ✓")))
}

func TestDecodeText_Latin1Fallback(t *testing.T) {
	// 0xE9 is 'é' in Latin-1 and invalid as a standalone UTF-8 byte.
	decoded := DecodeText([]byte{'c', 'a', 'f', 0xE9})

	assert.Equal(t, "café", decoded)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("first\nsecond\n"), 0o644))

	lines, err := newTestFetcher().LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, lines)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := newTestFetcher().LoadFile(filepath.Join(t.TempDir(), "absent.txt"))

	require.Error(t, err)
}

func TestLoadFile_TooLarge(t *testing.T) {
	f := NewFetcher(config.FetcherConfig{MaxInputSizeMB: 1}, zerolog.Nop())
	path := filepath.Join(t.TempDir(), "big.txt")
	require.NoError(t, os.WriteFile(path, make([]byte, 2*1024*1024), 0o644))

	_, err := f.LoadFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum size")
}

func TestFetchURL(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("remote a\nremote b\n"))
	}))
	defer server.Close()

	lines, err := newTestFetcher().FetchURL(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, []string{"remote a", "remote b"}, lines)
	assert.Equal(t, "ultidiff", gotUserAgent)
}

func TestFetchURL_DeclaredCharset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=iso-8859-1")
		_, _ = w.Write([]byte{'c', 'a', 'f', 0xE9})
	}))
	defer server.Close()

	lines, err := newTestFetcher().FetchURL(context.Background(), server.URL)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "café", lines[0])
}

func TestFetchURL_RejectsNonHTTPSchemes(t *testing.T) {
	for _, url := range []string{"ftp://host/file", "file:///etc/passwd", "not a url at all"} {
		_, err := newTestFetcher().FetchURL(context.Background(), url)
		require.Error(t, err, url)

		var netErr *errorwrapper.NetworkError
		assert.ErrorAs(t, err, &netErr, url)
	}
}

func TestFetchURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestFetcher().FetchURL(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchURL_ResponseTooLarge(t *testing.T) {
	f := NewFetcher(config.FetcherConfig{MaxInputSizeMB: 1}, zerolog.Nop())
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 2*1024*1024)))
	}))
	defer server.Close()

	_, err := f.FetchURL(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum size")
}
