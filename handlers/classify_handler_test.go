package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Bipul-Dubey/number-classifier/models"
	"github.com/Bipul-Dubey/number-classifier/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassifyService struct {
	called bool
	got    int64
}

func (s *stubClassifyService) Classify(_ context.Context, n int64) *models.ClassifyResponse {
	s.called = true
	s.got = n
	return &models.ClassifyResponse{
		Number:     n,
		Properties: services.Properties(n),
		DigitSum:   services.DigitSum(n),
		FunFact:    "stub fact",
	}
}

func performClassify(t *testing.T, svc services.ClassifyService, rawQuery string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/api/classify-number", NewClassifyHandler(svc).ClassifyNumber)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/classify-number"+rawQuery, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestClassifyNumber_MissingParameter(t *testing.T) {
	for _, query := range []string{"", "?number=", "?other=5"} {
		svc := &stubClassifyService{}
		w := performClassify(t, svc, query)

		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
		assert.JSONEq(t, `{"error": "Missing 'number' parameter"}`, w.Body.String())
		assert.False(t, svc.called)
	}
}

func TestClassifyNumber_InvalidInput(t *testing.T) {
	tests := []string{"abc", "1.5", "12abc", "0x10", " ", "99999999999999999999"}

	for _, raw := range tests {
		svc := &stubClassifyService{}
		w := performClassify(t, svc, "?number="+url.QueryEscape(raw))

		require.Equal(t, http.StatusBadRequest, w.Code, "input %q", raw)

		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid input '"+raw+"'. Please provide an integer.", body.Error)
		assert.False(t, svc.called)
	}
}

func TestClassifyNumber_MalformedEscapeIsInvalid(t *testing.T) {
	for _, raw := range []string{"%ZZ", "1%G0"} {
		svc := &stubClassifyService{}
		w := performClassify(t, svc, "?number="+raw)

		require.Equal(t, http.StatusBadRequest, w.Code, "input %q", raw)

		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid input '"+raw+"'. Please provide an integer.", body.Error)
		assert.False(t, svc.called)
	}
}

func TestRawQueryValue(t *testing.T) {
	assert.Equal(t, "%ZZ", rawQueryValue("number=%ZZ", "number"))
	assert.Equal(t, "-5", rawQueryValue("a=1&number=%2D5", "number"))
	assert.Equal(t, "", rawQueryValue("a=1&b=%ZZ", "number"))
	assert.Equal(t, "", rawQueryValue("", "number"))
}

func TestClassifyNumber_ParsesIntegers(t *testing.T) {
	tests := map[string]int64{
		"153":  153,
		"-42":  -42,
		"+7":   7,
		" 28 ": 28,
		"007":  7,
	}

	for raw, want := range tests {
		svc := &stubClassifyService{}
		w := performClassify(t, svc, "?number="+url.QueryEscape(raw))

		require.Equal(t, http.StatusOK, w.Code, "input %q", raw)
		assert.True(t, svc.called)
		assert.Equal(t, want, svc.got)
	}
}

func TestClassifyNumber_ResponseShape(t *testing.T) {
	w := performClassify(t, &stubClassifyService{}, "?number=153")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"number": 153,
		"is_prime": false,
		"is_perfect": false,
		"properties": ["armstrong", "odd"],
		"digit_sum": 9,
		"fun_fact": "stub fact"
	}`, w.Body.String())
}

func TestWelcome(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewWelcomeHandler()

	r := gin.New()
	r.GET("/", h.Welcome)
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to DevOps Stage 1", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok", "service": "number-classifier"}`, w.Body.String())
}
