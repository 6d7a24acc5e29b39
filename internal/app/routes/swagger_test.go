package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSwaggerServesGeneratedDoc(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupSwagger(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	for _, want := range []string{`"/students/{id}/photo"`, `"/dashboard/metrics"`, `"CoachDesk API"`} {
		if !strings.Contains(w.Body.String(), want) {
			t.Fatalf("doc.json missing %s", want)
		}
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger", nil))
	if w.Code != http.StatusMovedPermanently {
		t.Fatalf("redirect status = %d, want 301", w.Code)
	}
}
