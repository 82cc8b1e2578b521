package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gps_http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gps_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"method", "route"})
	POIInsertsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gps_poi_inserts_total",
		Help: "POI insert attempts by outcome",
	}, []string{"outcome"})
	POISearchResults = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "gps_poi_search_results",
		Help:    "Number of POIs returned by range searches",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 500},
	})
	CacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gps_cache_lookups_total",
		Help: "POI listing cache lookups by result",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(POIInsertsTotal)
	prometheus.MustRegister(POISearchResults)
	prometheus.MustRegister(CacheLookupsTotal)
}

// Handler serves every registered collector in the Prometheus text format.
func Handler() http.Handler { return promhttp.Handler() }
