package handler

import (
	"net/http"

	"github.com/vfg2006/sales-insights-api/internal/api/handler/router"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/api/drivers",
			Method:  http.MethodGet,
			Handler: GetDrivers(service),
		},
		{
			Path:    "/api/risk-factors",
			Method:  http.MethodGet,
			Handler: GetRiskFactors(service),
		},
		{
			Path:    "/api/recommendations",
			Method:  http.MethodGet,
			Handler: GetRecommendations(service),
		},
	}
}

func Digest(service DigestService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/digest/run",
			Method:  http.MethodPost,
			Handler: RunDigest(service),
		},
		{
			Path:    "/api/digest/status",
			Method:  http.MethodGet,
			Handler: GetDigestStatus(service),
		},
	}
}
