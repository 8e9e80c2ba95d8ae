// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pdiddy/wordfreq/internal/httputil"
	"github.com/pdiddy/wordfreq/pkg/types"
)

// extByMediaType names a file extension for downloads whose URL has none.
var extByMediaType = map[string]string{
	"text/plain":            ".txt",
	"text/markdown":         ".md",
	"text/html":             ".html",
	"application/xhtml+xml": ".html",
	"application/pdf":       ".pdf",

	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// IsURL reports whether ref is an http or https URL rather than a local path.
func IsURL(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Fetcher downloads remote documents into a local directory.
type Fetcher struct {
	client     *http.Client
	userAgent  string
	maxRetries int
}

// NewFetcher returns a Fetcher configured from cfg.
func NewFetcher(cfg types.HTTPConfig) *Fetcher {
	return &Fetcher{
		client:     &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
	}
}

// Fetch downloads rawURL into dir and returns the local path. The file keeps
// the URL's base name so result files are named after it. A URL without a
// path is named after its host, and a missing extension is taken from the
// response Content-Type.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, dir string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL %s: %w", rawURL, err)
	}

	name := path.Base(u.Path)
	fromHost := name == "." || name == "/"
	if fromHost {
		name = u.Hostname()
	}
	name = sanitizeName(name)

	tmp, err := os.CreateTemp(dir, "download-*")
	if err != nil {
		return "", fmt.Errorf("creating download file: %w", err)
	}
	ct, dlErr := httputil.Download(ctx, f.client, rawURL, f.userAgent, f.maxRetries, tmp)
	closeErr := tmp.Close()
	if dlErr != nil {
		os.Remove(tmp.Name())
		return "", dlErr
	}
	if closeErr != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing download: %w", closeErr)
	}

	if fromHost || filepath.Ext(name) == "" {
		name += extensionFor(ct)
	}
	dest := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("saving download: %w", err)
	}
	return dest, nil
}

func extensionFor(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ".html"
	}
	if ext, ok := extByMediaType[mt]; ok {
		return ext
	}
	return ".html"
}

// sanitizeName keeps a download name usable as a file and as the base of a
// result filename.
func sanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, name)
	if name == "" || strings.Trim(name, ".") == "" {
		return "document"
	}
	return name
}
