package transforming

import (
	"fmt"

	"github.com/vfg2006/attribution-sync/internal/domain"
	"github.com/vfg2006/attribution-sync/pkg/utils"
)

var fdjDateColumns = []string{domain.ColumnDay, domain.ColumnWeek, domain.ColumnMonth}

// transformFDJ renomeia as colunas para o layout FDJ e calcula CPA e budget gasto
func transformFDJ(table *domain.Table, cpa float64) (*domain.Table, error) {
	renamed := table.Clone()
	for from, to := range domain.FDJRenames {
		renamed.Rename(from, to)
	}

	out := renamed.Select(domain.FDJLayout)
	out.Set(domain.ColumnCPA, func(domain.Row) any { return cpa })
	out.Set(domain.ColumnBudget, func(r domain.Row) any {
		if !out.Has(domain.ColumnConfirmations) {
			return 0.0
		}
		return utils.Multiply(cpa, r.Float(domain.ColumnConfirmations))
	})

	for _, column := range out.Present(fdjDateColumns) {
		for _, row := range out.Rows {
			if row.IsBlank(column) {
				continue
			}
			date, err := utils.NormalizeDate(row.String(column))
			if err != nil {
				return nil, fmt.Errorf("erro ao formatar %s: %w", column, err)
			}
			row[column] = date
		}
	}

	return out, nil
}
