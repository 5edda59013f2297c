package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInitIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Init()
		Init()
	})
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/api/quiz", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(RequestCounter.WithLabelValues(http.MethodGet, "/api/quiz", "200"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/quiz", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	after := testutil.ToFloat64(RequestCounter.WithLabelValues(http.MethodGet, "/api/quiz", "200"))
	assert.Equal(t, before+1, after)
	assert.Equal(t, float64(1), testutil.ToFloat64(RequestCounter.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestObserveAggregation(t *testing.T) {
	ObserveAggregation("weekly", time.Now().Add(-10*time.Millisecond))
	assert.Equal(t, 1, testutil.CollectAndCount(AggregationDuration, "progress_aggregation_duration_seconds"))
}
