// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starwars_api_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "starwars_api_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	FavoritesAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starwars_api_favorites_added_total",
			Help: "Total number of favorite records created, by kind",
		},
		[]string{"kind"},
	)

	FavoritesRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starwars_api_favorites_removed_total",
			Help: "Total number of favorite records deleted, by kind",
		},
		[]string{"kind"},
	)

	FavoriteRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starwars_api_favorite_rejections_total",
			Help: "Favorite creations rejected because an endpoint did not exist",
		},
		[]string{"kind", "missing"},
	)
)

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
