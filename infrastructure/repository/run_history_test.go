package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/attribution-sync/infrastructure/database"
	"github.com/vfg2006/attribution-sync/infrastructure/migration"
	"github.com/vfg2006/attribution-sync/internal/config"
	"github.com/vfg2006/attribution-sync/internal/domain"
)

func newTestRepository(t *testing.T) RunHistoryRepository {
	t.Helper()

	ctx := context.Background()
	conn, err := database.NewConnection(ctx, config.Database{Driver: database.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, migration.Apply(ctx, conn))

	return NewRunHistoryRepository(conn)
}

func TestRunHistoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	base := time.Date(2025, 11, 30, 6, 0, 0, 0, time.UTC)
	results := []domain.ClientResult{
		{RunID: "run1", Client: "Bforbank", Mode: domain.RunModePeriod, Policy: domain.PushOverwrite, Begin: "2025-11-01", End: "2025-11-29", Success: true, RowsPulled: 10, RowsPushed: 8, StartedAt: base, FinishedAt: base.Add(2 * time.Second)},
		{RunID: "run1", Client: "FDJ", Mode: domain.RunModePeriod, Policy: domain.PushReplace, Begin: "2025-11-01", End: "2025-11-29", Error: "quota", StartedAt: base.Add(time.Minute), FinishedAt: base.Add(time.Minute)},
		{RunID: "run2", Client: "Bforbank", Mode: domain.RunModeDaily, Policy: domain.PushMerge, Begin: "2025-11-30", End: "2025-11-30", Success: true, RowsUpdated: 3, RowsInserted: 1, OutputFile: "output_Bforbank_2025-11-30.csv", StartedAt: base.Add(time.Hour), FinishedAt: base.Add(time.Hour)},
	}

	for i := range results {
		require.NoError(t, repo.Save(ctx, &results[i]))
		assert.NotZero(t, results[i].ID)
	}

	t.Run("Lista os mais recentes primeiro", func(t *testing.T) {
		recent, err := repo.ListRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "run2", recent[0].RunID)
		assert.Equal(t, "FDJ", recent[1].Client)
		assert.False(t, recent[1].Success)
		assert.Equal(t, "quota", recent[1].Error)
	})

	t.Run("Filtra por cliente", func(t *testing.T) {
		history, err := repo.ListByClient(ctx, "Bforbank", 0)
		require.NoError(t, err)
		require.Len(t, history, 2)

		latest := history[0]
		assert.Equal(t, domain.RunModeDaily, latest.Mode)
		assert.Equal(t, domain.PushMerge, latest.Policy)
		assert.Equal(t, 3, latest.RowsUpdated)
		assert.Equal(t, "output_Bforbank_2025-11-30.csv", latest.OutputFile)
		assert.True(t, latest.StartedAt.Equal(base.Add(time.Hour)))

		assert.Equal(t, 2*time.Second, history[1].Duration())
	})

	t.Run("Cliente sem histórico", func(t *testing.T) {
		history, err := repo.ListByClient(ctx, "Lalalab", 10)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}
