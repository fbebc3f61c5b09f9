// Package ingest loads resume and job posting text from files and URLs and
// strips HTML job postings down to their main text.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/alexchen/internlens/internal/sections"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; InternLens/1.0)"

// Error represents an error during ingestion.
type Error struct {
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingest error for %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingest error for %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures URL fetching.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// FromFile reads a text file and returns its whitespace-normalized content.
func FromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Source: path, Message: "failed to read file", Cause: err}
	}
	return sections.NormalizeWhitespace(string(content)), nil
}

// FromURL fetches a job posting page and returns its main text. HTML
// responses are stripped to content text; anything else is returned
// whitespace-normalized as-is.
func FromURL(ctx context.Context, urlStr string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", &Error{Source: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{Source: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{Source: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Source: urlStr, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &Error{Source: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	text, err := ExtractJobPostingText(string(body))
	if err != nil {
		return "", &Error{Source: urlStr, Message: "failed to extract text", Cause: err}
	}
	return text, nil
}
