package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shelfshare/shelfshare-backend/internal/api/middleware"
	"github.com/shelfshare/shelfshare-backend/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init()
}

func newTestRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func errorStatus(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()

	body := decodeBody(t, w)
	errBody, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no error object: %q", w.Body.String())
	}
	status, ok := errBody["status"].(float64)
	if !ok {
		t.Fatalf("error object has no status: %q", w.Body.String())
	}
	if http.StatusText(int(status)) == "" {
		t.Fatalf("error status is not an HTTP status: %v", status)
	}
	return int(status)
}
