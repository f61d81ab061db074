package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/orders/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/orders/:id", "200"))
	for _, p := range []string{"/api/orders/1", "/api/orders/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/orders/:id", "200"))

	assert.Equal(t, float64(2), after-before)
}

func TestRecordChange(t *testing.T) {
	before := testutil.ToFloat64(storeChanges.WithLabelValues("order", "create"))
	RecordChange("order", "create")
	assert.Equal(t, before+1, testutil.ToFloat64(storeChanges.WithLabelValues("order", "create")))
}

func TestHandlerServesRegistry(t *testing.T) {
	RecordChange("truck", "delete")
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fleet_store_changes_total")
}
