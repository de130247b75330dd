// Package metrics 提供 API 服務的 Prometheus 指標。
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Option 調整 Manager 設定
type Option func(*Manager)

// WithNamespace 設定指標命名空間
func WithNamespace(ns string) Option {
	return func(m *Manager) { m.namespace = ns }
}

// WithBuckets 設定延遲直方圖的 bucket
func WithBuckets(b []float64) Option {
	return func(m *Manager) { m.buckets = b }
}

// Manager 管理服務所有的 Prometheus 指標
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	storeErrors         *prometheus.CounterVec
}

// NewManager 建立獨立 registry 的 Manager，避免測試之間重複註冊
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "zoo_api",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   m.buckets,
	}, []string{"route", "method", "status_code"})

	m.storeErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "store_errors_total",
		Help:      "Store failures by resource and operation",
	}, []string{"resource", "operation"})

	m.registry.MustRegister(
		m.httpRequests,
		m.httpRequestDuration,
		m.storeErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordHTTPRequest 記錄一次請求的次數與耗時
func (m *Manager) RecordHTTPRequest(route, method, statusCode string, d time.Duration) {
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, statusCode).Observe(d.Seconds())
}

// RecordStoreError 記錄一次資料庫錯誤
func (m *Manager) RecordStoreError(resource, operation string) {
	m.storeErrors.WithLabelValues(resource, operation).Inc()
}

// Registry 回傳底層 registry，測試時用來讀取指標
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler 回傳 /metrics 的 HTTP handler
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
