package index

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Source fetches and decodes the content index document.
type Source interface {
	Fetch(ctx context.Context) (Document, error)
	String() string
}

// NewSource picks an HTTP source for http(s) URLs and a file source otherwise.
// build, when set, is appended as a v= cache-busting parameter on HTTP fetches.
func NewSource(location, build string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, build)
	}
	return &FileSource{Path: strings.TrimPrefix(location, "file://")}
}

// FileSource reads content.json from disk.
type FileSource struct {
	Path string
}

func (s *FileSource) String() string { return s.Path }

// Fetch reads and decodes the file.
func (s *FileSource) Fetch(_ context.Context) (Document, error) {
	data, err := os.ReadFile(filepath.Clean(s.Path))
	if err != nil {
		return Document{}, fmt.Errorf("read content file: %w", err)
	}
	return Decode(data)
}

// HTTPSource fetches content.json from a URL.
type HTTPSource struct {
	url        string
	build      string
	httpClient *http.Client
}

// NewHTTPSource returns a source for rawURL with a 30 second client timeout.
func NewHTTPSource(rawURL, build string) *HTTPSource {
	return &HTTPSource{
		url:   rawURL,
		build: build,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *HTTPSource) String() string { return s.url }

// WithClient replaces the HTTP client.
func (s *HTTPSource) WithClient(c *http.Client) *HTTPSource {
	s.httpClient = c
	return s
}

// Fetch downloads and decodes the document. Any non-2xx status is a failure.
func (s *HTTPSource) Fetch(ctx context.Context) (Document, error) {
	target, err := s.target()
	if err != nil {
		return Document{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return Document{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("fetch content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Document{}, fmt.Errorf("fetch content: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Document{}, fmt.Errorf("read content body: %w", err)
	}
	return Decode(data)
}

func (s *HTTPSource) target() (string, error) {
	if s.build == "" {
		return s.url, nil
	}
	u, err := url.Parse(s.url)
	if err != nil {
		return "", fmt.Errorf("parse content url: %w", err)
	}
	q := u.Query()
	q.Set("v", s.build)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Decode parses a content document and checks that all three lists are present.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode content: %w", err)
	}

	var missing []string
	if doc.Games == nil {
		missing = append(missing, "games")
	}
	if doc.Pages == nil {
		missing = append(missing, "pages")
	}
	if doc.Categories == nil {
		missing = append(missing, "categories")
	}
	if len(missing) > 0 {
		return Document{}, errors.New("invalid content structure: missing " + strings.Join(missing, ", "))
	}

	return doc, nil
}
