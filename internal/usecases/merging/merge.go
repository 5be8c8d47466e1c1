package merging

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-sync/internal/domain"
	"github.com/vfg2006/attribution-sync/pkg/utils"
)

const (
	mergeKeySeparator   = "||"
	replaceKeySeparator = "_"
)

var ErrNoCommonKeys = errors.New("nenhuma coluna de chave em comum entre a planilha e os novos dados")

// Options parametriza as políticas incrementais
type Options struct {
	// Cutoff (YYYY-MM-DD): linhas existentes anteriores a esta data não são alteradas na política revenues
	Cutoff string
}

// Result descreve a tabela a gravar e o que mudou em relação à planilha
type Result struct {
	Table    *domain.Table
	Updated  int
	Inserted int
	Replaced int
	// FullPush indica que a tabela transformada foi gravada inteira
	FullPush bool
	// Skipped indica que nada deve ser gravado
	Skipped bool
}

// Merge reconcilia a tabela transformada com o conteúdo atual da planilha segundo a política
func Merge(existing, incoming *domain.Table, policy domain.PushPolicy, opts Options) (*Result, error) {
	if incoming == nil {
		incoming = domain.NewTable(nil)
	}

	if policy == domain.PushOverwrite || existing.IsEmpty() {
		return &Result{
			Table:    incoming,
			Inserted: incoming.Len(),
			FullPush: true,
		}, nil
	}

	switch policy {
	case domain.PushMerge, domain.PushRevenues:
		return mergeRevenues(existing, incoming, policy, opts)
	case domain.PushReplace:
		return replaceRows(existing, incoming), nil
	default:
		return nil, fmt.Errorf("política de push desconhecida: %q", policy)
	}
}

// mergeRevenues atualiza apenas as colunas de receita das chaves existentes e insere as chaves novas
func mergeRevenues(existing, incoming *domain.Table, policy domain.PushPolicy, opts Options) (*Result, error) {
	current := existing.Clone()
	fresh := incoming.Clone()
	normalizeDay(current)
	normalizeDay(fresh)

	keys := lo.Filter(domain.MergeKeyColumns, func(c string, _ int) bool {
		return current.Has(c) && fresh.Has(c)
	})
	if len(keys) == 0 {
		return nil, ErrNoCommonKeys
	}

	revenueColumns := lo.Filter(domain.RevenueColumns, func(c string, _ int) bool {
		return current.Has(c) && fresh.Has(c)
	})
	if policy == domain.PushRevenues && len(revenueColumns) == 0 {
		logrus.Warn("Nenhuma coluna de receita em comum, planilha mantida como está")
		return &Result{Table: existing, Skipped: true}, nil
	}

	index := map[string][]int{}
	for i, row := range current.Rows {
		key := domain.CompositeKey(row, keys, mergeKeySeparator)
		index[key] = append(index[key], i)
	}

	result := &Result{}
	out := current
	for _, c := range fresh.Columns {
		out.EnsureColumn(c)
	}

	for _, row := range fresh.Rows {
		key := domain.CompositeKey(row, keys, mergeKeySeparator)

		matches, found := index[key]
		if !found {
			inserted := row.Clone()
			if policy == domain.PushRevenues {
				ensureCostColumns(out)
				for _, c := range out.Present(domain.CostColumns) {
					inserted[c] = 0.0
				}
			}
			out.Rows = append(out.Rows, inserted)
			result.Inserted++
			continue
		}

		if policy == domain.PushRevenues && isBefore(current.Rows[matches[0]], opts.Cutoff) {
			continue
		}

		for _, i := range matches {
			for _, c := range revenueColumns {
				current.Rows[i][c] = row[c]
			}
		}
		result.Updated++
	}

	sortByDay(out)
	result.Table = out

	return result, nil
}

// replaceRows troca as linhas existentes que têm a mesma chave dia + campanha + anúncio
func replaceRows(existing, incoming *domain.Table) *Result {
	out := existing.Clone()

	if lo.SomeBy(domain.ReplaceKeyColumns, func(c string) bool { return !incoming.Has(c) }) {
		out.Append(incoming.Clone())
		return &Result{Table: out, Inserted: incoming.Len()}
	}

	normalizeDay(out)
	fresh := incoming.Clone()
	normalizeDay(fresh)

	replaceKey := func(r domain.Row) string {
		return domain.CompositeKey(r, domain.ReplaceKeyColumns, replaceKeySeparator)
	}
	incomingKeys := lo.SliceToMap(fresh.Rows, func(r domain.Row) (string, bool) {
		return replaceKey(r), true
	})
	existingKeys := lo.SliceToMap(out.Rows, func(r domain.Row) (string, bool) {
		return replaceKey(r), true
	})

	kept := out.Filter(func(r domain.Row) bool {
		return !incomingKeys[replaceKey(r)]
	})
	replaced := lo.CountBy(fresh.Rows, func(r domain.Row) bool {
		return existingKeys[replaceKey(r)]
	})

	kept.Append(fresh)
	sortByDay(kept)

	return &Result{
		Table:    kept,
		Replaced: replaced,
		Inserted: fresh.Len() - replaced,
	}
}

// ensureCostColumns garante CPI e uma coluna de gasto para receber os zeros das linhas novas
func ensureCostColumns(table *domain.Table) {
	if !table.Has(domain.ColumnAdspend) && !table.Has(domain.ColumnAdSpend) {
		table.EnsureColumn(domain.ColumnAdSpend)
	}
	table.EnsureColumn(domain.ColumnCPI)
}

// normalizeDay reescreve o dia como YYYY-MM-DD; valores não reconhecidos ficam como estão
func normalizeDay(table *domain.Table) {
	if !table.Has(domain.ColumnDay) {
		return
	}
	for _, row := range table.Rows {
		if day, err := utils.NormalizeDate(row.String(domain.ColumnDay)); err == nil {
			row[domain.ColumnDay] = day
		}
	}
}

func isBefore(row domain.Row, cutoff string) bool {
	if cutoff == "" {
		return false
	}
	return row.String(domain.ColumnDay) < cutoff
}

func sortByDay(table *domain.Table) {
	if !table.Has(domain.ColumnDay) {
		return
	}
	table.SortStable(func(a, b domain.Row) bool {
		return a.String(domain.ColumnDay) < b.String(domain.ColumnDay)
	})
}
