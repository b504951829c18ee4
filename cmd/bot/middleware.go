package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Jacobbrewer1/concierge/cmd/bot/monitoring"
	"github.com/Jacobbrewer1/concierge/pkg/logging"
	"github.com/Jacobbrewer1/concierge/pkg/request"
	"github.com/Jacobbrewer1/discordgo"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

func middlewareHttp(a IApp, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		cw := request.NewClientWriter(w)

		var path string
		route := mux.CurrentRoute(r)
		if route != nil { // The route may be nil if the request is not routed.
			var err error
			path, err = route.GetPathTemplate()
			if err != nil {
				// An error here is only returned if the route does not define a path.
				a.Log().Error("Error getting path template", slog.String(logging.KeyError, err.Error()))
				path = r.URL.Path
			}
		} else {
			// Unrouted requests are grouped so unknown paths cannot grow the label set.
			path = "unrouted"
		}

		defer func() {
			// Run the deferred function after the request has been handled, as the status code will not be available until then.
			monitoring.HttpTotalRequests.WithLabelValues(path, r.Method, fmt.Sprintf("%d", cw.StatusCode())).Inc()
			monitoring.HttpRequestDuration.WithLabelValues(path, r.Method, fmt.Sprintf("%d", cw.StatusCode())).Observe(time.Since(now).Seconds())
		}()

		// Recover from any panics that occur in the handler. This runs before the metrics are recorded.
		defer func() {
			if rec := recover(); rec != nil {
				a.Log().Error("Panic in handler",
					slog.String(logging.KeyError, fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
				)
				cw.WriteHeader(http.StatusInternalServerError)
				if err := json.NewEncoder(cw).Encode(request.NewMessage(request.ErrInternalServer.Error())); err != nil {
					a.Log().Error("Error encoding response", slog.String(logging.KeyError, err.Error()))
				}
			}
		}()

		handler(cw, r)
	}
}

// discordHandler wraps a handler of gateway events of type T. Every event gets an ID that is attached to the log lines
// of the failures, and the duration and failures of the handler are recorded.
func discordHandler[T any](a IApp, name string, handler func(e T) error) func(s *discordgo.Session, e T) {
	return func(_ *discordgo.Session, e T) {
		l := a.Log().With(
			slog.String(logging.KeyHandler, name),
			slog.String(logging.KeyEventID, uuid.NewString()),
		)

		t := prometheus.NewTimer(monitoring.DiscordHandlerDuration.WithLabelValues(name))
		defer t.ObserveDuration()

		defer func() {
			if rec := recover(); rec != nil {
				monitoring.DiscordHandlerErrors.WithLabelValues(name).Inc()
				l.Error("Panic in discord handler",
					slog.String(logging.KeyError, fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()

		l.Debug("Handling event")
		if err := handler(e); err != nil {
			monitoring.DiscordHandlerErrors.WithLabelValues(name).Inc()
			l.Error("Error handling event", slog.String(logging.KeyError, err.Error()))
		}
	}
}
