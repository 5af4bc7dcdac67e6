package signal

import "github.com/prometheus/client_golang/prometheus"

var SignalFetchAttemptsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "signal_fetch_attempts_total",
		Help: "Upstream signal fetch attempts by result.",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(SignalFetchAttemptsTotal)
}
