package transforming

import (
	"github.com/samber/lo"
	"github.com/vfg2006/attribution-sync/internal/domain"
)

// groupOtherBucket reagrupa as linhas sem installs por dia e país numa campanha "other"
func groupOtherBucket(table *domain.Table) *domain.Table {
	if !table.Has(domain.ColumnInstalls) {
		return table
	}

	withInstalls := table.Filter(func(r domain.Row) bool {
		return r.Float(domain.ColumnInstalls) > 0
	})
	zeroInstalls := table.Filter(func(r domain.Row) bool {
		return r.Float(domain.ColumnInstalls) == 0
	})
	if zeroInstalls.IsEmpty() {
		return table
	}

	sums := append(zeroInstalls.Present(domain.OtherBucketSumColumns), lo.Filter(zeroInstalls.Columns, func(c string, _ int) bool {
		return domain.IsFirstPurchaseColumn(c)
	})...)

	other := Aggregate(zeroInstalls, domain.OtherBucketGroupColumns, sums)
	if other.Has(domain.ColumnAdspend) && other.Has(domain.ColumnInstalls) {
		other.Set(domain.ColumnCPI, func(domain.Row) any { return 0.0 })
	}
	for _, column := range []string{domain.ColumnCampaign, domain.ColumnAdgroup, domain.ColumnCreative} {
		other.Set(column, func(domain.Row) any { return domain.OtherBucket })
	}

	out := withInstalls.Clone()
	out.Append(other)
	if out.Has(domain.ColumnDay) {
		out.SortStable(func(a, b domain.Row) bool {
			return a.String(domain.ColumnDay) < b.String(domain.ColumnDay)
		})
	}

	return out
}

// lalalabLayout é a ordem das colunas da planilha Lalalab, com as colunas de primeira compra no final
func lalalabLayout(table *domain.Table) []string {
	layout := append([]string{}, domain.LalalabLayout...)
	layout = append(layout, lo.Filter(table.Columns, func(c string, _ int) bool {
		return domain.IsFirstPurchaseColumn(c) && !lo.Contains(layout, c)
	})...)
	return table.Present(layout)
}
