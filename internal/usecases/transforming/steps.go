package transforming

import (
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-sync/internal/domain"
	"github.com/vfg2006/attribution-sync/pkg/utils"
)

// coerceNumeric converte em número as colunas de métricas cujas células não vazias são todas numéricas
func coerceNumeric(table *domain.Table) {
	for _, column := range table.Columns {
		if lo.Contains(domain.MergeKeyColumns, column) {
			continue
		}

		numeric := lo.EveryBy(table.Rows, func(r domain.Row) bool {
			if r.IsBlank(column) {
				return true
			}
			_, err := strconv.ParseFloat(strings.TrimSpace(r.String(column)), 64)
			return err == nil
		})
		if !numeric {
			continue
		}

		for _, row := range table.Rows {
			if !row.IsBlank(column) {
				row[column] = row.Float(column)
			}
		}
	}
}

func filterCountries(table *domain.Table, countries []string) *domain.Table {
	if len(countries) == 0 || !table.Has(domain.ColumnCountry) {
		return table
	}

	return table.Filter(func(r domain.Row) bool {
		return lo.Contains(countries, r.String(domain.ColumnCountry))
	})
}

func filterNetwork(table *domain.Table, network string) *domain.Table {
	if network == "" || !table.Has(domain.ColumnNetwork) {
		return table
	}

	return table.Filter(func(r domain.Row) bool {
		return r.String(domain.ColumnNetwork) == network
	})
}

func filterStartDate(table *domain.Table, startDate string) (*domain.Table, error) {
	if startDate == "" || !table.Has(domain.ColumnDay) {
		return table, nil
	}

	start, err := utils.ParseFlexibleDate(startDate)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.Row, 0, table.Len())
	for _, row := range table.Rows {
		day, err := utils.ParseFlexibleDate(row.String(domain.ColumnDay))
		if err != nil {
			return nil, err
		}
		if !day.Before(start) {
			rows = append(rows, row)
		}
	}

	return domain.NewTable(table.Columns, rows...), nil
}

func filterInstalls(table *domain.Table) *domain.Table {
	return table.Filter(func(r domain.Row) bool {
		return r.Float(domain.ColumnInstalls) > 0
	})
}

func fillBlank(table *domain.Table, column string, value any) {
	if !table.Has(column) {
		return
	}
	for _, row := range table.Rows {
		if row.IsBlank(column) {
			row[column] = value
		}
	}
}

// applyCustomCPI zera CPI e custo e aplica a taxa fixa de cada país: custo = installs x taxa
func applyCustomCPI(table *domain.Table, rates map[string]float64) {
	table.Set(domain.ColumnCPI, func(domain.Row) any { return 0.0 })
	table.Set(domain.ColumnAdspend, func(domain.Row) any { return 0.0 })

	countries := lo.Keys(rates)
	sort.Strings(countries)

	for _, country := range countries {
		rate := rates[country]
		logrus.WithFields(logrus.Fields{
			"country": country,
			"cpi":     rate,
		}).Debug("Aplicando CPI fixo")

		for _, row := range table.Rows {
			if row.String(domain.ColumnCountry) != country {
				continue
			}
			row[domain.ColumnCPI] = rate
			row[domain.ColumnAdspend] = utils.Multiply(row.Float(domain.ColumnInstalls), rate)
		}
	}
}

// recomputeCPI recalcula CPI = custo / installs, 0 quando não há installs
func recomputeCPI(table *domain.Table) {
	if !table.Has(domain.ColumnAdspend) || !table.Has(domain.ColumnInstalls) {
		return
	}

	table.Set(domain.ColumnCPI, func(r domain.Row) any {
		return utils.SafeDivide(r.Float(domain.ColumnAdspend), r.Float(domain.ColumnInstalls))
	})
}

// sumColumns lista as métricas somáveis presentes, seguidas das colunas de eventos
func sumColumns(table *domain.Table) []string {
	columns := table.Present(domain.SummableColumns)
	events := lo.Filter(table.Columns, func(c string, _ int) bool {
		return domain.IsEventColumn(c) && !lo.Contains(columns, c)
	})
	return append(columns, events...)
}
