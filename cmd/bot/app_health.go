package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
)

func (a *App) healthCheck() http.HandlerFunc {
	checker := health.NewChecker(
		// Set a TTL of 1 second for the results of the checks.
		health.WithCacheDuration(1*time.Second),

		// Set a timeout of 2 seconds for the checks.
		health.WithTimeout(2*time.Second),

		// The gateway connection is up and the state is populated.
		health.WithCheck(health.Check{
			Name: "Discord_Session",
			Check: func(ctx context.Context) error {
				return sessionReady(a)
			},
			StatusListener: func(ctx context.Context, name string, state health.CheckState) {
				a.Log().Info("Discord session health check status changed",
					slog.String("name", name),
					slog.String("state", string(state.Status)),
				)
			},
		}),

		// Monitor the health of the Discord API.
		health.WithPeriodicCheck(15*time.Second, 5*time.Second, health.Check{
			Name: "Discord_API",
			Check: func(ctx context.Context) error {
				if _, err := a.Session().GatewayBot(); err != nil {
					return fmt.Errorf("failed to ping Discord API: %w", err)
				}
				return nil
			},
			Timeout: 3 * time.Second,
			StatusListener: func(ctx context.Context, name string, state health.CheckState) {
				a.Log().Info("Discord API health check status changed",
					slog.String("name", name),
					slog.String("state", string(state.Status)),
				)
			},
		}),
	)

	return health.NewHandler(checker).ServeHTTP
}

// errSessionNotReady is returned by the health check until the first ready event.
var errSessionNotReady = errors.New("discord session is not ready")

func sessionReady(a IApp) error {
	s := a.Session()
	if s == nil {
		return errSessionNotReady
	}

	s.RLock()
	defer s.RUnlock()
	if !s.DataReady {
		return errSessionNotReady
	}
	return nil
}
