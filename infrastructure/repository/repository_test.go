package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights-api/infrastructure/database"
	"github.com/vfg2006/sales-insights-api/infrastructure/database/sqlite"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

var (
	asOf     = date(2025, 12, 31)
	q4       = domain.QuarterOf(asOf)
	lookback = date(2025, 12, 1)
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func amount(v float64) *float64 {
	return &v
}

func fixtureRecords() domain.RecordSet {
	return domain.RecordSet{
		Accounts: []domain.Account{
			{ID: "A1", Name: "Acme", Industry: "Tech", Segment: domain.SegmentSMB},
			{ID: "A2", Name: "Globex", Industry: "Finance", Segment: domain.SegmentEnterprise},
			{ID: "A3", Name: "Initech", Industry: "Tech", Segment: domain.SegmentMidMarket},
		},
		Reps: []domain.Rep{
			{ID: "R1", Name: "Ana Souza"},
			{ID: "R2", Name: "Bruno Lima"},
		},
		Deals: []domain.Deal{
			{ID: "D1", AccountID: "A1", RepID: "R1", Stage: domain.StageClosedWon, Amount: amount(10000), CreatedAt: date(2025, 10, 1), ClosedAt: datePtr(2025, 10, 21)},
			{ID: "D2", AccountID: "A2", RepID: "R2", Stage: domain.StageClosedWon, Amount: amount(30000), CreatedAt: date(2025, 9, 1), ClosedAt: datePtr(2025, 11, 10)},
			{ID: "D3", AccountID: "A2", RepID: "R1", Stage: domain.StageClosedLost, Amount: amount(5000), CreatedAt: date(2025, 10, 5), ClosedAt: datePtr(2025, 12, 1)},
			{ID: "D4", AccountID: "A3", RepID: "R2", Stage: domain.StageProspecting, Amount: amount(8000), CreatedAt: date(2025, 8, 1)},
			{ID: "D5", AccountID: "A1", RepID: "R1", Stage: domain.StageNegotiation, CreatedAt: date(2025, 12, 20)},
			{ID: "D6", AccountID: "A3", RepID: "R2", Stage: domain.StageClosedWon, Amount: amount(20000), CreatedAt: date(2025, 7, 1), ClosedAt: datePtr(2025, 8, 15)},
		},
		Activities: []domain.Activity{
			{ID: "X1", DealID: "D5", Type: domain.ActivityCall, Timestamp: time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)},
			{ID: "X2", DealID: "D4", Type: domain.ActivityEmail, Timestamp: time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)},
		},
		Targets: []domain.Target{
			{Month: "2025-09", Target: 10000},
			{Month: "2025-10", Target: 20000},
			{Month: "2025-11", Target: 25000},
			{Month: "2025-12", Target: 30000},
		},
	}
}

func newTestConnection(t *testing.T) *database.Connection {
	t.Helper()

	ctx := context.Background()
	conn, err := sqlite.NewConnection(ctx, sqlite.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.Migrate(ctx))
	return conn
}

func seededConnection(t *testing.T) *database.Connection {
	t.Helper()

	conn := newTestConnection(t)
	require.NoError(t, NewRecordRepository(conn).InsertAll(context.Background(), fixtureRecords()))
	return conn
}

func TestDealRepository_Totals(t *testing.T) {
	repo := NewDealRepository(seededConnection(t))
	ctx := context.Background()

	tests := []struct {
		name     string
		filter   domain.DealFilter
		validate func(t *testing.T, totals domain.DealTotals)
	}{
		{
			name:   "Negócios ganhos no trimestre",
			filter: domain.WonDeals().ClosedWithin(q4),
			validate: func(t *testing.T, totals domain.DealTotals) {
				assert.Equal(t, 2, totals.Count)
				assert.Equal(t, 2, totals.Won)
				assert.InDelta(t, 40000, totals.Amount, 0.001)
				assert.InDelta(t, 20000, totals.AvgWonAmount, 0.001)
				assert.InDelta(t, 45, totals.AvgWonCycleDays, 0.001)
			},
		},
		{
			name:   "Negócios encerrados no trimestre incluem perdidos",
			filter: domain.ClosedDeals().ClosedWithin(q4),
			validate: func(t *testing.T, totals domain.DealTotals) {
				assert.Equal(t, 3, totals.Closed)
				assert.Equal(t, 2, totals.Won)
				assert.InDelta(t, 66.666, totals.WinRate(), 0.01)
			},
		},
		{
			name:   "Pipeline aberto ignora negócios sem valor na soma",
			filter: domain.OpenDeals(),
			validate: func(t *testing.T, totals domain.DealTotals) {
				assert.Equal(t, 2, totals.Count)
				assert.InDelta(t, 8000, totals.Amount, 0.001)
			},
		},
		{
			name:   "Filtro sem resultados retorna zeros",
			filter: domain.WonDeals().InSegment(domain.SegmentSMB).AmountGreaterThan(50000),
			validate: func(t *testing.T, totals domain.DealTotals) {
				assert.Equal(t, domain.DealTotals{}, totals)
				assert.Equal(t, 0.0, totals.WinRate())
			},
		},
		{
			name:   "Negócios abertos e antigos",
			filter: domain.OpenDeals().OlderThan(asOf, 30),
			validate: func(t *testing.T, totals domain.DealTotals) {
				assert.Equal(t, 1, totals.Count)
				assert.InDelta(t, 8000, totals.Amount, 0.001)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := repo.Totals(ctx, tt.filter)
			require.NoError(t, err)
			tt.validate(t, totals)
		})
	}
}

func TestDealRepository_TotalsByMonth(t *testing.T) {
	repo := NewDealRepository(seededConnection(t))

	rows, err := repo.TotalsByMonth(context.Background(), domain.WonDeals(), domain.ClosedAt)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "2025-08", rows[0].Month)
	assert.InDelta(t, 20000, rows[0].Amount, 0.001)
	assert.Equal(t, "2025-10", rows[1].Month)
	assert.InDelta(t, 10000, rows[1].Amount, 0.001)
	assert.Equal(t, "2025-11", rows[2].Month)
	assert.InDelta(t, 30000, rows[2].Amount, 0.001)

	created, err := repo.TotalsByMonth(context.Background(), domain.DealFilter{}.CreatedWithin(q4), domain.CreatedAt)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "2025-10", created[0].Month)
	assert.Equal(t, 2, created[0].Count)
	assert.Equal(t, "2025-12", created[1].Month)
	assert.Equal(t, 1, created[1].Count)

	_, err = repo.TotalsByMonth(context.Background(), domain.WonDeals(), domain.DateField("amount"))
	assert.Error(t, err)
}

func TestDealRepository_TotalsByRep(t *testing.T) {
	repo := NewDealRepository(seededConnection(t))

	rows, err := repo.TotalsByRep(context.Background(), domain.ClosedDeals().ClosedWithin(q4))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "R1", rows[0].RepID)
	assert.Equal(t, "Ana Souza", rows[0].RepName)
	assert.Equal(t, 2, rows[0].Closed)
	assert.Equal(t, 1, rows[0].Won)
	assert.InDelta(t, 50, rows[0].WinRate(), 0.001)

	assert.Equal(t, "R2", rows[1].RepID)
	assert.Equal(t, 1, rows[1].Closed)
	assert.InDelta(t, 100, rows[1].WinRate(), 0.001)
}

func TestDealRepository_TotalsBySegmentAndIndustry(t *testing.T) {
	repo := NewDealRepository(seededConnection(t))
	ctx := context.Background()

	segments, err := repo.TotalsBySegment(ctx, domain.OpenDeals().OlderThan(asOf, 30))
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, domain.SegmentMidMarket, segments[0].Segment)
	assert.Equal(t, 1, segments[0].Count)
	assert.InDelta(t, 8000, segments[0].Amount, 0.001)

	industries, err := repo.TotalsByIndustry(ctx, domain.WonDeals())
	require.NoError(t, err)
	require.Len(t, industries, 2)
	assert.Equal(t, "Finance", industries[0].Industry)
	assert.Equal(t, 1, industries[0].Count)
	assert.Equal(t, "Tech", industries[1].Industry)
	assert.Equal(t, 2, industries[1].Count)
	assert.InDelta(t, 30000, industries[1].Amount, 0.001)
}

func TestDealRepository_CountByStage(t *testing.T) {
	repo := NewDealRepository(seededConnection(t))

	rows, err := repo.CountByStage(context.Background(), domain.OpenDeals())
	require.NoError(t, err)

	assert.Equal(t, []domain.StageCount{
		{Stage: domain.StageNegotiation, Count: 1},
		{Stage: domain.StageProspecting, Count: 1},
	}, rows)
}

func TestActivityRepository_InactiveAccounts(t *testing.T) {
	repo := NewActivityRepository(seededConnection(t))
	ctx := context.Background()

	bySegment, err := repo.InactiveAccountsBySegment(ctx, lookback)
	require.NoError(t, err)
	assert.Equal(t, []domain.SegmentCount{{Segment: domain.SegmentMidMarket, Count: 1}}, bySegment)

	total, err := repo.CountInactiveAccounts(ctx, lookback)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	// com uma janela maior a atividade de outubro volta a contar
	total, err = repo.CountInactiveAccounts(ctx, date(2025, 9, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestActivityRepository_SegmentCountsMatchTotal(t *testing.T) {
	repo := NewActivityRepository(seededConnection(t))
	ctx := context.Background()

	for _, since := range []time.Time{date(2025, 1, 1), lookback, date(2026, 1, 1)} {
		bySegment, err := repo.InactiveAccountsBySegment(ctx, since)
		require.NoError(t, err)

		total, err := repo.CountInactiveAccounts(ctx, since)
		require.NoError(t, err)

		sum := 0
		for _, row := range bySegment {
			sum += row.Count
		}
		assert.Equal(t, total, sum, since.Format(domain.DateLayout))
	}
}

func TestTargetRepository(t *testing.T) {
	repo := NewTargetRepository(seededConnection(t))
	ctx := context.Background()

	total, err := repo.SumTargets(ctx, q4.StartMonth(), q4.EndMonth())
	require.NoError(t, err)
	assert.InDelta(t, 75000, total, 0.001)

	targets, err := repo.ListTargets(ctx, "2025-09", "2025-10")
	require.NoError(t, err)
	assert.Equal(t, []domain.Target{{Month: "2025-09", Target: 10000}, {Month: "2025-10", Target: 20000}}, targets)

	empty, err := repo.SumTargets(ctx, "2024-01", "2024-03")
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty)
}

func TestRecordRepository_InsertAllIsIdempotent(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewRecordRepository(conn)
	ctx := context.Background()

	counts, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RecordCounts{}, counts)

	require.NoError(t, repo.InsertAll(ctx, fixtureRecords()))
	require.NoError(t, repo.InsertAll(ctx, fixtureRecords()))

	counts, err = repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RecordCounts{Accounts: 3, Reps: 2, Deals: 6, Activities: 2, Targets: 4}, counts)
}

func TestRecordRepository_InsertAllChunks(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewRecordRepository(conn)
	ctx := context.Background()

	records := domain.RecordSet{}
	for i := 0; i < insertChunkSize*2+7; i++ {
		records.Reps = append(records.Reps, domain.Rep{ID: fmt.Sprintf("R%03d", i), Name: "Rep"})
	}

	require.NoError(t, repo.InsertAll(ctx, records))

	counts, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, insertChunkSize*2+7, counts.Reps)
}
