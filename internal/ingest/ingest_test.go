package ingest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFile_NormalizesWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Role:  Backend   Intern\r\n\r\n\r\n\r\nbuild services.\n"), 0644))

	text, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Role: Backend Intern\n\nbuild services.", text)
}

func TestFromFile_MissingFile(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	var ingestErr *Error
	assert.True(t, errors.As(err, &ingestErr))
}

func TestExtractJobPostingText_UsesJobSelectorsAndStripsNoise(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<div class="job-description">
			<h1>Backend Intern</h1>
			<p>We need someone who knows Go.</p>
			<script>trackPageView();</script>
		</div>
		<footer>© 2026 Acme</footer>
	</body></html>`

	text, err := ExtractJobPostingText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Intern")
	assert.Contains(t, text, "We need someone who knows Go.")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "trackPageView")
	assert.NotContains(t, text, "© 2026 Acme")
}

func TestExtractJobPostingText_FallsBackToBody(t *testing.T) {
	text, err := ExtractJobPostingText("<html><body><p>plain posting text.</p></body></html>")
	require.NoError(t, err)

	assert.Equal(t, "plain posting text.", text)
}

func TestFromURL_FetchesAndExtracts(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<html><body><main><p>Go developer wanted.</p></main></body></html>`))
	}))
	defer server.Close()

	text, err := FromURL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, "Go developer wanted.", text)
	assert.Equal(t, DefaultUserAgent, gotUserAgent)
}

func TestFromURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := FromURL(context.Background(), server.URL, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP status 404")
}

func TestFromURL_InvalidURL(t *testing.T) {
	_, err := FromURL(context.Background(), "not a url", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid URL")
}
