package merging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/attribution-sync/internal/domain"
)

var sheetColumns = []string{
	domain.ColumnDay, domain.ColumnCountry, domain.ColumnCampaign,
	domain.ColumnAdspend, domain.ColumnInstalls, domain.ColumnRevenueD0, domain.ColumnRevenueD7, domain.ColumnCPI,
}

func sheetRow(day, country, campaign string, adspend, installs, d0, d7, cpi float64) domain.Row {
	return domain.Row{
		domain.ColumnDay:       day,
		domain.ColumnCountry:   country,
		domain.ColumnCampaign:  campaign,
		domain.ColumnAdspend:   adspend,
		domain.ColumnInstalls:  installs,
		domain.ColumnRevenueD0: d0,
		domain.ColumnRevenueD7: d7,
		domain.ColumnCPI:       cpi,
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		existing *domain.Table
		incoming *domain.Table
		policy   domain.PushPolicy
		opts     Options
		validate func(t *testing.T, result *Result, err error)
	}{
		{
			name: "Overwrite grava a tabela transformada inteira",
			existing: domain.NewTable(sheetColumns,
				sheetRow("2025-11-01", "France", "c1", 1, 1, 1, 1, 1),
			),
			incoming: domain.NewTable(sheetColumns,
				sheetRow("2025-11-02", "France", "c1", 2, 2, 2, 2, 1),
			),
			policy: domain.PushOverwrite,
			validate: func(t *testing.T, result *Result, err error) {
				require.NoError(t, err)
				assert.True(t, result.FullPush)
				assert.Equal(t, 1, result.Table.Len())
				assert.Equal(t, "2025-11-02", result.Table.Rows[0].String(domain.ColumnDay))
			},
		},
		{
			name:     "Planilha vazia vira push completo",
			existing: domain.NewTable(nil),
			incoming: domain.NewTable(sheetColumns,
				sheetRow("2025-11-02", "France", "c1", 2, 2, 2, 2, 1),
			),
			policy: domain.PushMerge,
			validate: func(t *testing.T, result *Result, err error) {
				require.NoError(t, err)
				assert.True(t, result.FullPush)
				assert.Equal(t, 1, result.Inserted)
			},
		},
		{
			name: "Merge atualiza só receitas e preserva CPI editado manualmente",
			existing: domain.NewTable(sheetColumns,
				sheetRow("01/11/2025", "France", "c1", 50, 10, 1, 2, 4.5),
				sheetRow("2025-11-03", "Italy", "c1", 30, 3, 0, 0, 10),
			),
			incoming: domain.NewTable(sheetColumns,
				sheetRow("2025-11-01", "France", "c1", 70, 12, 9, 19, 7),
				sheetRow("2025-11-02", "Germany", "c2", 20, 4, 3, 5, 5),
			),
			policy: domain.PushMerge,
			validate: func(t *testing.T, result *Result, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.Updated)
				assert.Equal(t, 1, result.Inserted)
				require.Equal(t, 3, result.Table.Len())

				updated := result.Table.Rows[0]
				assert.Equal(t, "2025-11-01", updated.String(domain.ColumnDay))
				assert.Equal(t, 9.0, updated.Float(domain.ColumnRevenueD0))
				assert.Equal(t, 19.0, updated.Float(domain.ColumnRevenueD7))
				assert.Equal(t, 50.0, updated.Float(domain.ColumnAdspend))
				assert.Equal(t, 10.0, updated.Float(domain.ColumnInstalls))
				assert.Equal(t, 4.5, updated.Float(domain.ColumnCPI))

				inserted := result.Table.Rows[1]
				assert.Equal(t, "Germany", inserted.String(domain.ColumnCountry))
				assert.Equal(t, 20.0, inserted.Float(domain.ColumnAdspend))
				assert.Equal(t, 5.0, inserted.Float(domain.ColumnCPI))

				assert.Equal(t, "Italy", result.Table.Rows[2].String(domain.ColumnCountry))
			},
		},
		{
			name: "Revenues zera custo nas linhas novas e não mexe em linhas antigas",
			existing: domain.NewTable(sheetColumns,
				sheetRow("2025-09-01", "France", "c1", 50, 10, 1, 2, 5),
				sheetRow("2025-10-20", "France", "c1", 60, 10, 1, 2, 6),
			),
			incoming: domain.NewTable(sheetColumns,
				sheetRow("2025-09-01", "France", "c1", 0, 10, 8, 8, 0),
				sheetRow("2025-10-20", "France", "c1", 0, 10, 7, 17, 0),
				sheetRow("2025-10-21", "France", "c1", 99, 10, 3, 3, 9.9),
			),
			policy: domain.PushRevenues,
			opts:   Options{Cutoff: "2025-10-01"},
			validate: func(t *testing.T, result *Result, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.Updated)
				assert.Equal(t, 1, result.Inserted)
				require.Equal(t, 3, result.Table.Len())

				old := result.Table.Rows[0]
				assert.Equal(t, 1.0, old.Float(domain.ColumnRevenueD0))
				assert.Equal(t, 2.0, old.Float(domain.ColumnRevenueD7))

				recent := result.Table.Rows[1]
				assert.Equal(t, 7.0, recent.Float(domain.ColumnRevenueD0))
				assert.Equal(t, 17.0, recent.Float(domain.ColumnRevenueD7))
				assert.Equal(t, 60.0, recent.Float(domain.ColumnAdspend))
				assert.Equal(t, 6.0, recent.Float(domain.ColumnCPI))

				inserted := result.Table.Rows[2]
				assert.Equal(t, 0.0, inserted.Float(domain.ColumnAdspend))
				assert.Equal(t, 0.0, inserted.Float(domain.ColumnCPI))
				assert.Equal(t, 3.0, inserted.Float(domain.ColumnRevenueD0))
			},
		},
		{
			name: "Revenues cria as colunas de custo ausentes para as linhas novas",
			existing: domain.NewTable([]string{domain.ColumnDay, domain.ColumnCountry, domain.ColumnRevenueD7},
				domain.Row{domain.ColumnDay: "2025-11-01", domain.ColumnCountry: "France", domain.ColumnRevenueD7: 1.0},
			),
			incoming: domain.NewTable([]string{domain.ColumnDay, domain.ColumnCountry, domain.ColumnRevenueD7},
				domain.Row{domain.ColumnDay: "2025-11-01", domain.ColumnCountry: "France", domain.ColumnRevenueD7: 4.0},
				domain.Row{domain.ColumnDay: "2025-11-02", domain.ColumnCountry: "Italy", domain.ColumnRevenueD7: 2.0},
			),
			policy: domain.PushRevenues,
			validate: func(t *testing.T, result *Result, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.Updated)
				assert.Equal(t, 1, result.Inserted)
				assert.Equal(t, []string{domain.ColumnDay, domain.ColumnCountry, domain.ColumnRevenueD7, domain.ColumnAdSpend, domain.ColumnCPI}, result.Table.Columns)

				inserted := result.Table.Rows[1]
				assert.Equal(t, "Italy", inserted.String(domain.ColumnCountry))
				assert.Equal(t, 0.0, inserted[domain.ColumnAdSpend])
				assert.Equal(t, 0.0, inserted[domain.ColumnCPI])
				assert.Equal(t, 4.0, result.Table.Rows[0].Float(domain.ColumnRevenueD7))
			},
		},
		{
			name: "Revenues sem coluna de receita em comum não grava",
			existing: domain.NewTable([]string{domain.ColumnDay, domain.ColumnCountry, domain.ColumnInstalls},
				domain.Row{domain.ColumnDay: "2025-11-01", domain.ColumnCountry: "France", domain.ColumnInstalls: 1.0},
			),
			incoming: domain.NewTable(sheetColumns,
				sheetRow("2025-11-01", "France", "c1", 0, 1, 1, 1, 0),
			),
			policy: domain.PushRevenues,
			validate: func(t *testing.T, result *Result, err error) {
				require.NoError(t, err)
				assert.True(t, result.Skipped)
				assert.Zero(t, result.Updated+result.Inserted)
			},
		},
		{
			name: "Sem colunas de chave em comum é erro",
			existing: domain.NewTable([]string{"Notes"},
				domain.Row{"Notes": "manual"},
			),
			incoming: domain.NewTable(sheetColumns,
				sheetRow("2025-11-01", "France", "c1", 0, 1, 1, 1, 0),
			),
			policy: domain.PushMerge,
			validate: func(t *testing.T, result *Result, err error) {
				assert.ErrorIs(t, err, ErrNoCommonKeys)
				assert.Nil(t, result)
			},
		},
		{
			name: "Colunas novas dos dados entram no final do cabeçalho",
			existing: domain.NewTable([]string{domain.ColumnDay, domain.ColumnCountry, "Comentário", domain.ColumnRevenueD0},
				domain.Row{domain.ColumnDay: "2025-11-01", domain.ColumnCountry: "France", "Comentário": "ok", domain.ColumnRevenueD0: 1.0},
			),
			incoming: domain.NewTable([]string{domain.ColumnDay, domain.ColumnCountry, domain.ColumnRevenueD0, "first purchase_events"},
				domain.Row{domain.ColumnDay: "2025-11-01", domain.ColumnCountry: "France", domain.ColumnRevenueD0: 2.0, "first purchase_events": 1.0},
			),
			policy: domain.PushMerge,
			validate: func(t *testing.T, result *Result, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{domain.ColumnDay, domain.ColumnCountry, "Comentário", domain.ColumnRevenueD0, "first purchase_events"}, result.Table.Columns)
				assert.Equal(t, "ok", result.Table.Rows[0].String("Comentário"))
				assert.Equal(t, 2.0, result.Table.Rows[0].Float(domain.ColumnRevenueD0))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Merge(tt.existing, tt.incoming, tt.policy, tt.opts)
			tt.validate(t, result, err)
		})
	}
}

func TestMerge_PreservesNonRevenueColumns(t *testing.T) {
	existing := domain.NewTable(sheetColumns,
		sheetRow("2025-11-01", "France", "c1", 11, 1, 0, 0, 11),
		sheetRow("2025-11-02", "France", "c2", 22, 2, 0, 0, 11),
		sheetRow("2025-11-03", "Italy", "c3", 33, 3, 0, 0, 11),
	)
	incoming := domain.NewTable(sheetColumns,
		sheetRow("2025-11-01", "France", "c1", 1, 100, 5, 6, 0.01),
		sheetRow("2025-11-02", "France", "c2", 2, 200, 7, 8, 0.01),
		sheetRow("2025-11-03", "Italy", "c3", 3, 300, 9, 10, 0.01),
	)

	for _, policy := range []domain.PushPolicy{domain.PushMerge, domain.PushRevenues} {
		t.Run(string(policy), func(t *testing.T) {
			result, err := Merge(existing.Clone(), incoming, policy, Options{})
			require.NoError(t, err)
			require.Equal(t, existing.Len(), result.Table.Len())

			for i, row := range result.Table.Rows {
				for _, column := range sheetColumns {
					if column == domain.ColumnRevenueD0 || column == domain.ColumnRevenueD7 {
						assert.Equal(t, incoming.Rows[i][column], row[column])
						continue
					}
					assert.Equal(t, existing.Rows[i][column], row[column], "coluna %s alterada", column)
				}
			}
		})
	}
}

func TestMerge_Replace(t *testing.T) {
	columns := []string{domain.ColumnDay, domain.ColumnCampaignName, domain.ColumnAdName, domain.ColumnAdSpend}
	existing := domain.NewTable(columns,
		domain.Row{domain.ColumnDay: "2025-11-01", domain.ColumnCampaignName: "Parions", domain.ColumnAdName: "v1", domain.ColumnAdSpend: 10.0},
		domain.Row{domain.ColumnDay: "03/11/2025", domain.ColumnCampaignName: "Parions", domain.ColumnAdName: "v1", domain.ColumnAdSpend: 30.0},
	)

	t.Run("Substitui linhas com a mesma chave e insere as outras", func(t *testing.T) {
		incoming := domain.NewTable(columns,
			domain.Row{domain.ColumnDay: "2025-11-03", domain.ColumnCampaignName: "Parions", domain.ColumnAdName: "v1", domain.ColumnAdSpend: 31.0},
			domain.Row{domain.ColumnDay: "2025-11-02", domain.ColumnCampaignName: "Parions", domain.ColumnAdName: "v1", domain.ColumnAdSpend: 20.0},
		)

		result, err := Merge(existing, incoming, domain.PushReplace, Options{})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Replaced)
		assert.Equal(t, 1, result.Inserted)
		require.Equal(t, 3, result.Table.Len())
		assert.Equal(t, []float64{10, 20, 31}, []float64{
			result.Table.Rows[0].Float(domain.ColumnAdSpend),
			result.Table.Rows[1].Float(domain.ColumnAdSpend),
			result.Table.Rows[2].Float(domain.ColumnAdSpend),
		})
		assert.Equal(t, 2, existing.Len())
	})

	t.Run("Sem colunas de chave apenas acrescenta", func(t *testing.T) {
		incoming := domain.NewTable([]string{domain.ColumnDay, domain.ColumnAdSpend},
			domain.Row{domain.ColumnDay: "2025-11-03", domain.ColumnAdSpend: 5.0},
		)

		result, err := Merge(existing, incoming, domain.PushReplace, Options{})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Table.Len())
		assert.Equal(t, 1, result.Inserted)
		assert.Equal(t, 5.0, result.Table.Rows[2].Float(domain.ColumnAdSpend))
	})
}
