package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommandsTotal is the total number of prefix commands handled.
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commands_total",
			Help: "Total number of prefix commands handled",
		},
		[]string{"command", "status"},
	)

	// CommandDuration is the duration of the prefix commands.
	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "commands_duration_seconds",
			Help: "Duration of the prefix commands",
		},
		[]string{"command"},
	)
)

const (
	// StatusOK is the status of a command that ran.
	StatusOK = "ok"

	// StatusError is the status of a command that failed.
	StatusError = "error"

	// StatusLimited is the status of a command dropped by the rate limiter.
	StatusLimited = "limited"
)
