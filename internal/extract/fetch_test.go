// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wordfreq/pkg/types"
)

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/a.docx"))
	assert.True(t, IsURL("HTTP://example.com"))
	assert.False(t, IsURL("/home/me/a.docx"))
	assert.False(t, IsURL(`C:\docs\a.docx`))
	assert.False(t, IsURL("ftp://example.com/a.txt"))
}

func TestFetcher_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/files/essay.txt":
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("The quick brown fox"))
		case "/article":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<p>hello</p>"))
		case "/":
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	f := NewFetcher(types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "wordfreq/test", MaxRetries: 1})

	tests := []struct {
		name     string
		path     string
		wantName string
		wantBody string
		errMsg   string
	}{
		{name: "keeps URL base name", path: "/files/essay.txt", wantName: "essay.txt", wantBody: "The quick brown fox"},
		{name: "extension from content type", path: "/article", wantName: "article.html", wantBody: "<p>hello</p>"},
		{name: "host name for bare URL", path: "/", wantName: "127.0.0.1.pdf", wantBody: "%PDF"},
		{name: "not found", path: "/missing.txt", errMsg: "unexpected status 404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			got, err := f.Fetch(context.Background(), ts.URL+tt.path, dir)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				entries, _ := os.ReadDir(dir)
				assert.Empty(t, entries, "failed download should leave no file behind")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.wantName), got)
			data, err := os.ReadFile(got)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(data))
		})
	}
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "a-b.txt", sanitizeName("a:b.txt"))
	assert.Equal(t, "document", sanitizeName(""))
	assert.Equal(t, "document", sanitizeName(".."))
}
