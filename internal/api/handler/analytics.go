package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

// GetSummary retorna a receita do trimestre corrente contra a meta
func GetSummary(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetSummary(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithOperation("summary").WithError(err).Error("GetSummary: erro ao calcular resumo")
			apiErrors.WriteError(w, apiErrors.ErrAnalytics, "Failed to fetch summary")
			return
		}

		writeResponse(r.Context(), w, summary)
	}
}

// GetDrivers retorna os indicadores de receita com variação e tendência
func GetDrivers(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drivers, err := service.GetDrivers(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithOperation("drivers").WithError(err).Error("GetDrivers: erro ao calcular indicadores")
			apiErrors.WriteError(w, apiErrors.ErrAnalytics, "Failed to fetch drivers")
			return
		}

		writeResponse(r.Context(), w, drivers)
	}
}

func GetRiskFactors(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		risks, err := service.GetRiskFactors(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithOperation("risk_factors").WithError(err).Error("GetRiskFactors: erro ao calcular riscos")
			apiErrors.WriteError(w, apiErrors.ErrAnalytics, "Failed to fetch risk factors")
			return
		}

		writeResponse(r.Context(), w, nonNil(risks))
	}
}

func GetRecommendations(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recommendations, err := service.GetRecommendations(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithOperation("recommendations").WithError(err).Error("GetRecommendations: erro ao calcular recomendações")
			apiErrors.WriteError(w, apiErrors.ErrAnalytics, "Failed to fetch recommendations")
			return
		}

		writeResponse(r.Context(), w, nonNil(recommendations))
	}
}

// nonNil garante que listas vazias sejam serializadas como []
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func writeResponse(ctx context.Context, w http.ResponseWriter, body any) {
	writeStatus(ctx, w, http.StatusOK, body)
}

func writeStatus(ctx context.Context, w http.ResponseWriter, status int, body any) {
	if err := utils.WriteJSON(w, status, body); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao enviar resposta")
	}
}
