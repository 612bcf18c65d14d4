package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TotalRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "holonet_http_requests_total",
		Help: "Number of http requests.",
	},
	[]string{"path", "code", "method"},
)

var HttpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "holonet_http_request_duration_seconds",
		Help: "Http request latency.",
		Buckets: []float64{
			0.005,
			0.01,
			0.05,
			0.1, // 100 ms
			0.25,
			0.5,
			1,
			3,
		},
	},
	[]string{"path", "code", "method"},
)

var FavoritesAdded = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "holonet_favorites_added_total",
		Help: "Favorites created, by catalog kind.",
	},
	[]string{"kind"},
)

var FavoritesRemoved = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "holonet_favorites_removed_total",
		Help: "Favorites deleted, by catalog kind.",
	},
	[]string{"kind"},
)

var FavoriteEventsFailed = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "holonet_favorite_events_failed_total",
		Help: "Favorite events that could not be published.",
	},
)
