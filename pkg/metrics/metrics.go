// Package metrics collects Prometheus metrics for the HTTP layer and blog interactions.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type IMetrics interface {
	RecordRequest(method, route string, status int, latency time.Duration)
	RecordLike()
	RecordView()
	RecordComment()
	RecordLogin(outcome string)
}

type Collector struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	likes    prometheus.Counter
	views    prometheus.Counter
	comments prometheus.Counter
	logins   *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blog_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blog_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		likes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blog_likes_total",
			Help: "Likes recorded on blog posts.",
		}),
		views: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blog_views_total",
			Help: "Views recorded on blog posts.",
		}),
		comments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blog_comments_total",
			Help: "Comments added to blog posts.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blog_admin_logins_total",
			Help: "Admin login attempts by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(c.requests, c.latency, c.likes, c.views, c.comments, c.logins)

	return c
}

func (c *Collector) RecordRequest(method, route string, status int, latency time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(latency.Seconds())
}

func (c *Collector) RecordLike() {
	c.likes.Inc()
}

func (c *Collector) RecordView() {
	c.views.Inc()
}

func (c *Collector) RecordComment() {
	c.comments.Inc()
}

func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything. Used where metrics are not wired, mostly tests.
type Nop struct{}

func (Nop) RecordRequest(string, string, int, time.Duration) {}
func (Nop) RecordLike()                                      {}
func (Nop) RecordView()                                      {}
func (Nop) RecordComment()                                   {}
func (Nop) RecordLogin(string)                               {}
