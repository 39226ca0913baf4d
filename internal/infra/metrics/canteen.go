package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(canteenAPILatencyMs)
}

var canteenAPILatencyMs = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "canteen_api_latency_ms",
		Help:    "Canteen API call latency distribution in milliseconds.",
		Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000},
	},
	[]string{"endpoint", "success"},
)

func ObserveCanteenCall(endpoint string, latencyMs int, success bool) {
	canteenAPILatencyMs.WithLabelValues(norm(endpoint), strconv.FormatBool(success)).
		Observe(float64(latencyMs))
}
