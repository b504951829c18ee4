package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TicketsOpened is the total number of ticket channels created.
	TicketsOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketing_tickets_opened_total",
			Help: "Total number of ticket channels created",
		},
		[]string{"type"},
	)

	// TicketsClosed is the total number of ticket channels deleted by staff.
	TicketsClosed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticketing_tickets_closed_total",
			Help: "Total number of ticket channels closed",
		},
	)

	// CloseDenied is the total number of close attempts by members without the staff role.
	CloseDenied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticketing_close_denied_total",
			Help: "Total number of close attempts by members without the staff role",
		},
	)
)
