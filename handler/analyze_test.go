package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	r := newTestDeps().router()
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/analyze", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rr.Body.String())
}

func TestAnalyze_MissingAPIKey(t *testing.T) {
	d := newTestDeps()
	d.llm.APIKey = ""
	r := d.router()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"text":"一只猫"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Server Configuration Error: Missing API Key"}`, rr.Body.String())
}

func TestAnalyze_Success(t *testing.T) {
	d := newTestDeps()
	d.analyzer.body = []byte(`{"cn":"一只猫","en":"a cat","summary":"一只猫"}`)
	r := d.router()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"text":"一只猫"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, `{"cn":"一只猫","en":"a cat","summary":"一只猫"}`, rr.Body.String())
}

func TestAnalyze_ProviderFailure(t *testing.T) {
	d := newTestDeps()
	d.analyzer.err = errors.New("quota exceeded")
	r := d.router()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"text":"一只猫"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Analysis Failed","details":"quota exceeded"}`, rr.Body.String())
}
