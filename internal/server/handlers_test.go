package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/resume-studio/internal/config"
	"github.com/jordan/resume-studio/internal/gateway"
	"github.com/jordan/resume-studio/internal/session"
	"github.com/jordan/resume-studio/internal/storage"
)

// fakeClient is a scripted provider client for handler tests. It records the
// prompts it receives so tests can assert what reached the provider.
type fakeClient struct {
	textResponse string
	jsonResponse string
	err          error
	calls        int
	prompts      []string
}

func (f *fakeClient) GenerateText(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.textResponse, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.jsonResponse, f.err
}

func (f *fakeClient) Model() string { return "fake-model" }
func (f *fakeClient) Close() error  { return nil }

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
}

// newTestServer builds a server over in-memory storage. A nil client leaves
// the AI gateway unconfigured.
func newTestServer(client *fakeClient) *Server {
	store := session.NewStore(storage.NewMemoryStore(), &config.PasswordConfig{BcryptCost: 10})
	if client == nil {
		return newServer(gateway.New(nil), store, testJWTService())
	}
	return newServer(gateway.New(client), store, testJWTService())
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const resumeBody = `{"resumeData": {"personalInfo": {"fullName": "Ada Lovelace", "email": "ada@example.com"},
	"experience": [{"id": "1", "company": "Analytical Engines", "role": "Engineer"}],
	"skills": ["Go"]}}`

func TestAnalyzeRoute(t *testing.T) {
	client := &fakeClient{jsonResponse: `{"matchScore": 85, "analysis": "solid match"}`}
	handler := newTestServer(client).routes()

	rec := doJSON(t, handler, "POST", "/api/analyze", resumeBody, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(85), body["matchScore"])
	assert.Equal(t, "solid match", body["analysis"])
}

func TestAnalyzeRoute_MissingResumeData(t *testing.T) {
	client := &fakeClient{jsonResponse: `{"matchScore": 85, "analysis": "unused"}`}
	handler := newTestServer(client).routes()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "null resumeData", body: `{"resumeData": null}`},
		{name: "only job description", body: `{"jobDescription": "Go developer"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, handler, "POST", "/api/analyze", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	assert.Zero(t, client.calls, "provider must not be invoked for invalid requests")
}

func TestAnalyzeRoute_NotConfigured(t *testing.T) {
	handler := newTestServer(nil).routes()

	rec := doJSON(t, handler, "POST", "/api/analyze", resumeBody, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAnalyzeRoute_UnparseableResponse(t *testing.T) {
	client := &fakeClient{jsonResponse: "I refuse to answer in JSON"}
	handler := newTestServer(client).routes()

	rec := doJSON(t, handler, "POST", "/api/analyze", resumeBody, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGenerateSummaryRoute(t *testing.T) {
	client := &fakeClient{textResponse: "Accomplished engineer."}
	handler := newTestServer(client).routes()

	rec := doJSON(t, handler, "POST", "/api/generateSummary", resumeBody, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Accomplished engineer.", decodeBody(t, rec)["summary"])
}

func TestGenerateSummaryRoute_MissingPersonalInfo(t *testing.T) {
	client := &fakeClient{textResponse: "unused"}
	handler := newTestServer(client).routes()

	rec := doJSON(t, handler, "POST", "/api/generateSummary", `{"resumeData": {"skills": ["Go"]}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, client.calls)
}

func TestEnhanceRoute(t *testing.T) {
	client := &fakeClient{textResponse: "• Shipped the thing"}
	handler := newTestServer(client).routes()

	rec := doJSON(t, handler, "POST", "/api/enhance", `{"text": "did stuff", "type": "experience"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "• Shipped the thing", decodeBody(t, rec)["improved"])
}

func TestEnhanceRoute_Invalid(t *testing.T) {
	client := &fakeClient{textResponse: "unused"}
	handler := newTestServer(client).routes()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing text", body: `{"type": "experience"}`},
		{name: "blank text", body: `{"text": "   ", "type": "summary"}`},
		{name: "unknown type", body: `{"text": "something", "type": "haiku"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, handler, "POST", "/api/enhance", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	assert.Zero(t, client.calls)
}

func TestJobsRoute(t *testing.T) {
	client := &fakeClient{jsonResponse: `{"jobs": [{"title": "Go Developer", "company": "Acme",
		"location": "Remote", "type": "Full-time", "matchScore": 90, "reason": "fit"}]}`}
	handler := newTestServer(client).routes()

	rec := doJSON(t, handler, "POST", "/api/jobs", resumeBody, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	jobs, ok := body["jobs"].([]any)
	require.True(t, ok)
	require.Len(t, jobs, 1)
}

func TestJobsRoute_TopLevelFilters(t *testing.T) {
	client := &fakeClient{jsonResponse: `{"jobs": []}`}
	handler := newTestServer(client).routes()

	body := `{"resumeData": {"skills": ["Go"]},
		"searchQuery": "golang", "location": "Berlin", "jobType": "Remote"}`
	rec := doJSON(t, handler, "POST", "/api/jobs", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "golang")
	assert.Contains(t, client.prompts[0], "Berlin")
	assert.Contains(t, client.prompts[0], "Remote")
}

func TestJobsRoute_NestedFilters(t *testing.T) {
	client := &fakeClient{jsonResponse: `{"jobs": []}`}
	handler := newTestServer(client).routes()

	// The nested filters object is still accepted.
	body := `{"resumeData": {"skills": ["Go"]}, "filters": {"searchQuery": "platform engineer"}}`
	rec := doJSON(t, handler, "POST", "/api/jobs", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "platform engineer")
}

func TestJobsRoute_SoftFailure(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
	}{
		{name: "unparseable response", client: &fakeClient{jsonResponse: "sorry, no jobs"}},
		{name: "provider error", client: &fakeClient{err: errors.New("timeout")}},
		{name: "not configured", client: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestServer(tt.client).routes()

			rec := doJSON(t, handler, "POST", "/api/jobs", resumeBody, nil)
			require.Equal(t, http.StatusOK, rec.Code, "job discovery never hard-fails")

			body := decodeBody(t, rec)
			jobs, ok := body["jobs"].([]any)
			require.True(t, ok, "jobs key must always be present")
			assert.Empty(t, jobs)
		})
	}
}

func TestJobsRoute_MissingResumeData(t *testing.T) {
	handler := newTestServer(&fakeClient{}).routes()

	rec := doJSON(t, handler, "POST", "/api/jobs", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuggestSkillsRoute(t *testing.T) {
	client := &fakeClient{jsonResponse: `["Rust", "Kubernetes"]`}
	handler := newTestServer(client).routes()

	rec := doJSON(t, handler, "POST", "/api/suggestSkills", resumeBody, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, []any{"Rust", "Kubernetes"}, body["skills"])
}

func TestSuggestSkillsRoute_Fallback(t *testing.T) {
	client := &fakeClient{jsonResponse: "these are not skills"}
	handler := newTestServer(client).routes()

	rec := doJSON(t, handler, "POST", "/api/suggestSkills", resumeBody, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, []any{"JavaScript", "Python", "Cloud Computing", "DevOps", "Git"}, body["skills"])
}

func TestSuggestSkillsRoute_UpstreamFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	handler := newTestServer(client).routes()

	rec := doJSON(t, handler, "POST", "/api/suggestSkills", resumeBody, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthRoute(t *testing.T) {
	handler := newTestServer(nil).routes()

	rec := doJSON(t, handler, "GET", "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["geminiConfigured"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, body["message"])
}

func TestHealthRoute_Configured(t *testing.T) {
	handler := newTestServer(&fakeClient{}).routes()

	rec := doJSON(t, handler, "GET", "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["geminiConfigured"])
}
