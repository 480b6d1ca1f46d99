package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMainText_PrefersJobDescriptionBlock(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs</nav>
		<div class="job-description">QA engineer with Selenium required.</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractMainText(html)
	require.NoError(t, err)
	assert.Equal(t, "QA engineer with Selenium required.", text)
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text.</p><script>ignored()</script></body></html>`
	text, err := ExtractMainText(html)
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text.", text)
}

func TestExtractMainText_CollapsesWhitespace(t *testing.T) {
	html := "<html><body><main>line one\n\n   line two</main></body></html>"
	text, err := ExtractMainText(html)
	require.NoError(t, err)
	assert.Equal(t, "line one line two", text)
}

func TestJobDescription_FetchesAndExtracts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>Automation engineer wanted</main></body></html>`))
	}))
	defer srv.Close()

	text, err := JobDescription(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Automation engineer wanted", text)
}

func TestJobDescription_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobDescription(context.Background(), srv.URL, nil)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestJobDescription_InvalidURL(t *testing.T) {
	_, err := JobDescription(context.Background(), "not-a-url", nil)
	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}
