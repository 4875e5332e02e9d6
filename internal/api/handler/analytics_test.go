package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func TestAnalyticsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mocks.NewMockAnalyzer(ctrl)
	queryErr := &analyzing.AnalysisError{Op: "summary", Err: analyzing.ErrQueryFailed}
	qoq := 12.5

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		setup      func()
		wantStatus int
		wantBody   string
	}{
		{
			name:    "Resumo com sucesso",
			handler: GetSummary(analyzer),
			setup: func() {
				analyzer.EXPECT().GetSummary(gomock.Any()).Return(&domain.SummaryResponse{
					CurrentQuarterRevenue: 450000,
					Target:                400000,
					GapPercentage:         12.5,
					GapText:               domain.GapAhead,
					QuarterLabel:          "Q4 2025",
					PreviousQuarterLabel:  "Q3 2025",
					QoQChange:             &qoq,
					MonthlyRevenue:        []domain.MonthlyRevenue{{Month: "2025-12", Revenue: 450000, Target: 400000}},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"currentQuarterRevenue":450000,"target":400000,"gapPercentage":12.5,"gapText":"ahead",` +
				`"quarterLabel":"Q4 2025","previousQuarterLabel":"Q3 2025","qoqChange":12.5,` +
				`"monthlyRevenue":[{"month":"2025-12","revenue":450000,"target":400000}]}`,
		},
		{
			name:    "Resumo sem variação trimestral",
			handler: GetSummary(analyzer),
			setup: func() {
				analyzer.EXPECT().GetSummary(gomock.Any()).Return(&domain.SummaryResponse{
					QuarterLabel:         "Q4 2025",
					PreviousQuarterLabel: "Q3 2025",
					GapText:              domain.GapAhead,
					MonthlyRevenue:       []domain.MonthlyRevenue{},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"currentQuarterRevenue":0,"target":0,"gapPercentage":0,"gapText":"ahead",` +
				`"quarterLabel":"Q4 2025","previousQuarterLabel":"Q3 2025","qoqChange":null,"monthlyRevenue":[]}`,
		},
		{
			name:    "Erro no resumo",
			handler: GetSummary(analyzer),
			setup: func() {
				analyzer.EXPECT().GetSummary(gomock.Any()).Return(nil, queryErr)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to fetch summary"}`,
		},
		{
			name:    "Erro nos indicadores",
			handler: GetDrivers(analyzer),
			setup: func() {
				analyzer.EXPECT().GetDrivers(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to fetch drivers"}`,
		},
		{
			name:    "Riscos vazios viram lista vazia",
			handler: GetRiskFactors(analyzer),
			setup: func() {
				analyzer.EXPECT().GetRiskFactors(gomock.Any()).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:    "Riscos com contagem",
			handler: GetRiskFactors(analyzer),
			setup: func() {
				count := 7
				analyzer.EXPECT().GetRiskFactors(gomock.Any()).Return([]domain.RiskFactor{{
					ID:          "low-activity-accounts",
					Type:        domain.RiskLowActivity,
					Description: "7 Accounts with no recent activity",
					Severity:    domain.SeverityLow,
					Count:       &count,
				}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `[{"id":"low-activity-accounts","type":"low_activity",` +
				`"description":"7 Accounts with no recent activity","severity":"low","count":7}]`,
		},
		{
			name:    "Erro nos riscos",
			handler: GetRiskFactors(analyzer),
			setup: func() {
				analyzer.EXPECT().GetRiskFactors(gomock.Any()).Return(nil, queryErr)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to fetch risk factors"}`,
		},
		{
			name:    "Recomendações vazias viram lista vazia",
			handler: GetRecommendations(analyzer),
			setup: func() {
				analyzer.EXPECT().GetRecommendations(gomock.Any()).Return([]domain.Recommendation{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:    "Erro nas recomendações",
			handler: GetRecommendations(analyzer),
			setup: func() {
				analyzer.EXPECT().GetRecommendations(gomock.Any()).Return(nil, queryErr)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to fetch recommendations"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			tt.handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGetDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().GetDrivers(gomock.Any()).Return(&domain.DriversResponse{
		SalesCycle: domain.DriverMetric{
			Current:       28,
			Change:        -4,
			ChangePercent: -12.5,
			Trend:         []float64{0, 30, 32, 0, 28, 0},
			Label:         "Sales Cycle",
			LowerIsBetter: true,
			Improving:     true,
		},
	}, nil)

	rec := httptest.NewRecorder()
	GetDrivers(analyzer).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/drivers", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"salesCycle":{"current":28,"change":-4,"changePercent":-12.5,"trend":[0,30,32,0,28,0]`)
	assert.Contains(t, body, `"improving":true`)
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		wantStatus int
		wantBody   string
	}{
		{name: "Sem verificação de banco", db: nil, wantStatus: http.StatusOK, wantBody: "healthy"},
		{name: "Banco respondendo", db: fakePinger{}, wantStatus: http.StatusOK, wantBody: "healthy"},
		{name: "Banco fora do ar", db: fakePinger{err: errors.New("connection refused")}, wantStatus: http.StatusServiceUnavailable, wantBody: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthcheckHandler(tt.db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tt.wantStatus, rec.Code)

			var body healthResponse
			require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body.Status)
			_, err := time.Parse(time.RFC3339, body.Timestamp)
			assert.NoError(t, err)
		})
	}
}
