package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobDescription_FetchesAndExtracts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`<html><body>
			<nav>Home | Jobs</nav>
			<h1>Backend Engineer</h1>
			<p>We need Python and SQL experience.</p>
			<footer>Copyright</footer>
		</body></html>`))
	}))
	defer srv.Close()

	text, err := JobDescription(context.Background(), srv.URL, nil)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Python and SQL experience")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
}

func TestJobDescription_InvalidURL(t *testing.T) {
	_, err := JobDescription(context.Background(), "not a url", nil)

	var ferr *Error
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Message, "invalid URL")
}

func TestJobDescription_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobDescription(context.Background(), srv.URL, nil)

	var ferr *Error
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Message, "HTTP status 404")
}

func TestJobDescription_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>render()</script></body></html>`))
	}))
	defer srv.Close()

	_, err := JobDescription(context.Background(), srv.URL, nil)

	var ferr *Error
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Message, "no extractable text")
}

func TestExtractText_StripsBoilerplate(t *testing.T) {
	text, err := ExtractText(`<html><body>
		<header>Site header</header>
		<div class="sidebar">Links</div>
		<p>Role   description
		with    odd whitespace</p>
		<style>p { color: red }</style>
	</body></html>`)
	require.NoError(t, err)

	assert.Equal(t, "Role description with odd whitespace", text)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
