package healthendpoint

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

type HTTPStatusCollector interface {
	prometheus.Collector
	IncConcurrentHTTPRequest()
	DecConcurrentHTTPRequest()
	RecordResponse(route string, method string, statusCode int)
}

type httpStatusCollector struct {
	concurrentRequests prometheus.Gauge
	responses          *prometheus.CounterVec
}

func NewHTTPStatusCollector(namespace, subSystem string) HTTPStatusCollector {
	return &httpStatusCollector{
		concurrentRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "concurrent_http_request",
			Help:      "Number of concurrent http request",
		}),
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "http_responses_total",
			Help:      "Number of http responses by route and status code",
		}, []string{"route", "method", "code"}),
	}
}

func (c *httpStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	c.concurrentRequests.Describe(ch)
	c.responses.Describe(ch)
}

func (c *httpStatusCollector) Collect(ch chan<- prometheus.Metric) {
	c.concurrentRequests.Collect(ch)
	c.responses.Collect(ch)
}

func (c *httpStatusCollector) IncConcurrentHTTPRequest() {
	c.concurrentRequests.Inc()
}

func (c *httpStatusCollector) DecConcurrentHTTPRequest() {
	c.concurrentRequests.Dec()
}

func (c *httpStatusCollector) RecordResponse(route string, method string, statusCode int) {
	c.responses.WithLabelValues(route, method, strconv.Itoa(statusCode)).Inc()
}
