package server

import (
	"PromptLib/config"
	"PromptLib/handler"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEngine() http.Handler {
	return NewGinEngine(config.Default(), &Handlers{
		Analyze: &handler.Analyze{},
		Gallery: &handler.Gallery{},
		Admin:   &handler.Admin{},
		Auth:    &handler.Auth{Jwt: &config.Jwt{}},
		Api:     &handler.Api{},
	})
}

func TestEngine_Metrics(t *testing.T) {
	r := newTestEngine()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "prompt_library_http_requests_total")
}

func TestEngine_NotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestEngine().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Prompt not found.")
}

func TestEngine_AnalyzeMethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestEngine().ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/analyze", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/prompts", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	rr := httptest.NewRecorder()
	newTestEngine().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
