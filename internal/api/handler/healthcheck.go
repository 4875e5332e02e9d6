package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

const pingTimeout = 2 * time.Second

// Pinger verifica se o armazenamento responde
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 503 quando o banco não responde ao ping; db nulo não é verificado
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, body := http.StatusOK, healthResponse{Status: "healthy"}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Error("Healthcheck: banco de dados não respondeu")
				status, body.Status = http.StatusServiceUnavailable, "unhealthy"
			}
		}

		body.Timestamp = time.Now().UTC().Format(time.RFC3339)
		if err := utils.WriteJSON(w, status, body); err != nil {
			log.L.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// NotFound responde rotas inexistentes no mesmo formato de erro da API
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Not found")
	})
}
