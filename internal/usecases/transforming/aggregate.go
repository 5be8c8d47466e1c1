package transforming

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/attribution-sync/internal/domain"
)

const keySeparator = "\x00"

type group struct {
	dimensions domain.Row
	sums       map[string]decimal.Decimal
}

// Aggregate agrupa as linhas pelas colunas keys e soma as colunas sums.
// A saída tem uma linha por chave, em ordem crescente de chave, com as colunas keys seguidas de sums.
func Aggregate(table *domain.Table, keys, sums []string) *domain.Table {
	keys = table.Present(keys)
	sums = table.Present(sums)

	groups := map[string]*group{}
	for _, row := range table.Rows {
		key := domain.CompositeKey(row, keys, keySeparator)

		g, ok := groups[key]
		if !ok {
			g = &group{
				dimensions: make(domain.Row, len(keys)),
				sums:       make(map[string]decimal.Decimal, len(sums)),
			}
			for _, k := range keys {
				g.dimensions[k] = row[k]
			}
			groups[key] = g
		}

		for _, column := range sums {
			g.sums[column] = g.sums[column].Add(decimal.NewFromFloat(row.Float(column)))
		}
	}

	ordered := make([]string, 0, len(groups))
	for key := range groups {
		ordered = append(ordered, key)
	}
	sort.Strings(ordered)

	columns := append(append([]string{}, keys...), sums...)
	out := domain.NewTable(columns)
	for _, key := range ordered {
		g := groups[key]
		row := g.dimensions.Clone()
		for _, column := range sums {
			row[column] = g.sums[column].InexactFloat64()
		}
		out.Rows = append(out.Rows, row)
	}

	return out
}

