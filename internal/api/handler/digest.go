package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

// DigestService é o job de digest exposto para execução manual
type DigestService interface {
	TriggerManualRun(ctx context.Context)
	GetStatus() map[string]any
}

// RunDigest dispara uma rodada do digest fora do agendamento
func RunDigest(service DigestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Digest service unavailable")
			return
		}

		log.ForContext(r.Context()).WithOperation("analytics_digest").Info("RunDigest: execução manual solicitada")

		// a rodada continua depois que a requisição termina
		service.TriggerManualRun(context.WithoutCancel(r.Context()))

		writeStatus(r.Context(), w, http.StatusAccepted, map[string]any{
			"message": "Digest started",
		})
	}
}

func GetDigestStatus(service DigestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Digest service unavailable")
			return
		}

		writeStatus(r.Context(), w, http.StatusOK, service.GetStatus())
	}
}
