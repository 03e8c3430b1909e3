package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fridgy/backend/internal/service"
	"github.com/fridgy/backend/internal/store"
)

// setupTestRouter builds a router over a file store in a temp dir. A nil
// clock means the system clock.
func setupTestRouter(t *testing.T, clock service.Clock) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := store.NewFileStore(filepath.Join(t.TempDir(), "food_data.json"))
	router := gin.New()
	SetupAPI(router, repo, clock, nil)
	return router
}

// performRequest runs a request with an optional JSON body and returns the
// recorder.
func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a response body into out.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
