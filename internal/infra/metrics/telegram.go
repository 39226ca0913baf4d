package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		telegramUpdatesTotal,
		telegramCallbacksTotal,
	)
}

var (
	telegramUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_updates_total",
			Help: "Incoming updates by kind (command/callback/other) and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	telegramCallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_callbacks_total",
			Help: "Callback-button presses by resolved route.",
		},
		[]string{"route"},
	)
)

func IncUpdate(kind string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	telegramUpdatesTotal.WithLabelValues(norm(kind), outcome).Inc()
}

func IncCallbackRoute(route string) {
	telegramCallbacksTotal.WithLabelValues(norm(route)).Inc()
}
