package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findMetric(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric %s not found", name)
	return nil
}

func TestRecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest("GET", "/api/blogs", 200, 15*time.Millisecond)
	c.RecordRequest("GET", "/api/blogs", 200, 5*time.Millisecond)

	mf := findMetric(t, reg, "blog_http_requests_total")
	require.Len(t, mf.GetMetric(), 1)
	assert.Equal(t, float64(2), mf.GetMetric()[0].GetCounter().GetValue())

	hist := findMetric(t, reg, "blog_http_request_duration_seconds")
	assert.Equal(t, uint64(2), hist.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestInteractionCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordLike()
	c.RecordView()
	c.RecordView()
	c.RecordComment()
	c.RecordLogin("success")

	assert.Equal(t, float64(1), findMetric(t, reg, "blog_likes_total").GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, float64(2), findMetric(t, reg, "blog_views_total").GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, float64(1), findMetric(t, reg, "blog_comments_total").GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, float64(1), findMetric(t, reg, "blog_admin_logins_total").GetMetric()[0].GetCounter().GetValue())
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordLike()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(string(body), "blog_likes_total 1"))
}
