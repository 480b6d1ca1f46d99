package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-analyzer/internal/config"
)

const testResume = `Senior QA engineer with 5 years of experience in software testing.
Designed manual test cases and executed regression testing across releases.
Led exploratory testing sessions, tracked defects in Jira, and reported bugs
with clear reproduction steps. Built automation suites with Selenium and
Python, integrated them into Jenkins pipelines, and maintained REST API
checks with Postman. Improved the defect detection rate release over release.`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(config.Defaults())
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.handleAnalyze(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestHandleRoles(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/roles", nil)
	w := httptest.NewRecorder()

	srv.handleRoles(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp RolesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{
		"Manual Tester",
		"Test Automation Engineer",
		"Full Stack Automation Engineer",
	}, resp.Roles)
}

func TestHandleAnalyze(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, AnalyzeRequest{Text: testResume, Role: "Manual Tester"})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, "Manual Tester", resp.Report.Role)
	assert.Greater(t, resp.Report.Score, 0.0)
	assert.Equal(t, 5, resp.Report.ExperienceYears)
}

func TestHandleAnalyzeSimilarityStrategy(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, AnalyzeRequest{
		Text:           testResume,
		Role:           "Manual Tester",
		JobDescription: "Looking for a manual tester with regression testing experience",
		Strategy:       "similarity",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestHandleAnalyzeShortText(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, AnalyzeRequest{Text: "too short", Role: "Manual Tester"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestHandleAnalyzeUnknownRole(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, AnalyzeRequest{Text: testResume, Role: "Astronaut"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAnalyzeMissingFields(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, AnalyzeRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAnalyzeInvalidStrategy(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, AnalyzeRequest{Text: testResume, Role: "Manual Tester", Strategy: "psychic"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAnalyzeInvalidJSON(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.handleAnalyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAnalyzeMultipartUpload(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte(testResume))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("role", "Test Automation Engineer"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	srv.handleAnalyze(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Test Automation Engineer", resp.Report.Role)
}

func TestHandleAnalyzeMultipartMissingFile(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("role", "Manual Tester"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	srv.handleAnalyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateLimitHeaders(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.withRateLimit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("preflight should not reach handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
