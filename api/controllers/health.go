package controllers

import (
	"net/http"
	"time"

	"github.com/JonathanI21/Courses-solidaires-2/api/responses"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/config"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/logger"
)

const envHeader = "X-Courses-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports whether the API's dependencies answer. Either store
// failing flips the response to 503 with the failing probe named.
func HealthReady(cfg *config.Config, logg *logger.Logger, probes map[string]func() error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		checks := map[string]string{}
		healthy := true
		for name, ping := range probes {
			if ping == nil {
				continue
			}
			if err := ping(); err != nil {
				healthy = false
				checks[name] = "down"
				if logg != nil {
					ctx := logg.WithField(r.Context(), "probe", name)
					logg.Warn(ctx, "readiness probe failed")
				}
				continue
			}
			checks[name] = "up"
		}

		status := http.StatusOK
		state := "ready"
		if !healthy {
			status = http.StatusServiceUnavailable
			state = "degraded"
		}
		responses.WriteSuccessStatus(w, status, map[string]any{
			"status": state,
			"checks": checks,
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}
