package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Row é uma linha de relatório indexada pelo nome da coluna.
// Dimensões e datas são strings, métricas são float64.
type Row map[string]any

// String retorna o valor da coluna formatado como texto
func (r Row) String(column string) string {
	return FormatCell(r[column])
}

// Float retorna o valor numérico da coluna, 0 quando vazio ou inválido
func (r Row) Float(column string) float64 {
	return ParseNumber(r[column])
}

// IsBlank indica se a célula está ausente ou vazia
func (r Row) IsBlank(column string) bool {
	return strings.TrimSpace(r.String(column)) == ""
}

func (r Row) Clone() Row {
	clone := make(Row, len(r))
	for k, v := range r {
		clone[k] = v
	}
	return clone
}

// Table é um conjunto ordenado de colunas e linhas
type Table struct {
	Columns []string
	Rows    []Row
}

func NewTable(columns []string, rows ...Row) *Table {
	return &Table{
		Columns: append([]string{}, columns...),
		Rows:    rows,
	}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

func (t *Table) Has(column string) bool {
	return lo.Contains(t.Columns, column)
}

// Present filtra as colunas informadas mantendo apenas as que existem na tabela
func (t *Table) Present(columns []string) []string {
	return lo.Filter(columns, func(c string, _ int) bool {
		return t.Has(c)
	})
}

// EnsureColumn adiciona a coluna ao final caso ainda não exista
func (t *Table) EnsureColumn(column string) {
	if !t.Has(column) {
		t.Columns = append(t.Columns, column)
	}
}

// Set grava o valor em todas as linhas, criando a coluna se necessário
func (t *Table) Set(column string, fn func(Row) any) {
	t.EnsureColumn(column)
	for _, row := range t.Rows {
		row[column] = fn(row)
	}
}

func (t *Table) Rename(from, to string) {
	if !t.Has(from) || from == to {
		return
	}

	for i, c := range t.Columns {
		if c == from {
			t.Columns[i] = to
		}
	}
	t.Columns = lo.Uniq(t.Columns)

	for _, row := range t.Rows {
		if v, ok := row[from]; ok {
			row[to] = v
			delete(row, from)
		}
	}
}

// Select retorna uma nova tabela apenas com as colunas informadas, na ordem informada
func (t *Table) Select(columns []string) *Table {
	selected := t.Present(columns)
	rows := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		out := make(Row, len(selected))
		for _, c := range selected {
			if v, ok := row[c]; ok {
				out[c] = v
			}
		}
		rows = append(rows, out)
	}
	return NewTable(selected, rows...)
}

// Filter retorna uma nova tabela com as linhas aceitas por keep
func (t *Table) Filter(keep func(Row) bool) *Table {
	rows := lo.Filter(t.Rows, func(r Row, _ int) bool {
		return keep(r)
	})
	return NewTable(t.Columns, rows...)
}

func (t *Table) Clone() *Table {
	rows := lo.Map(t.Rows, func(r Row, _ int) Row {
		return r.Clone()
	})
	return NewTable(t.Columns, rows...)
}

// Append adiciona as linhas de outra tabela, unindo as colunas
func (t *Table) Append(other *Table) {
	if other == nil {
		return
	}
	for _, c := range other.Columns {
		t.EnsureColumn(c)
	}
	t.Rows = append(t.Rows, other.Rows...)
}

// SortStable ordena as linhas mantendo a ordem original dos empates
func (t *Table) SortStable(less func(a, b Row) bool) {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return less(t.Rows[i], t.Rows[j])
	})
}

func (t *Table) Sum(column string) float64 {
	return lo.SumBy(t.Rows, func(r Row) float64 {
		return r.Float(column)
	})
}

// Values converte a tabela para a matriz cabeçalho + linhas usada na escrita
func (t *Table) Values() [][]any {
	values := make([][]any, 0, len(t.Rows)+1)
	values = append(values, lo.Map(t.Columns, func(c string, _ int) any {
		return c
	}))
	for _, row := range t.Rows {
		line := make([]any, len(t.Columns))
		for i, c := range t.Columns {
			v, ok := row[c]
			if !ok || v == nil {
				line[i] = ""
				continue
			}
			line[i] = v
		}
		values = append(values, line)
	}
	return values
}

// Records converte a tabela em linhas de texto, com o cabeçalho na primeira linha
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, append([]string{}, t.Columns...))
	for _, row := range t.Rows {
		records = append(records, lo.Map(t.Columns, func(c string, _ int) string {
			return row.String(c)
		}))
	}
	return records
}

// TableFromValues monta uma tabela a partir de uma matriz onde a primeira linha é o cabeçalho.
// Colunas sem nome e linhas totalmente vazias são descartadas.
func TableFromValues(values [][]any) *Table {
	if len(values) == 0 {
		return NewTable(nil)
	}

	header := make([]string, len(values[0]))
	columns := make([]string, 0, len(values[0]))
	for i, v := range values[0] {
		name := strings.TrimSpace(FormatCell(v))
		header[i] = name
		if name != "" && !lo.Contains(columns, name) {
			columns = append(columns, name)
		}
	}

	table := NewTable(columns)
	for _, line := range values[1:] {
		row := make(Row, len(columns))
		blank := true
		for i, name := range header {
			if name == "" {
				continue
			}
			if _, seen := row[name]; seen {
				continue
			}
			var v any = ""
			if i < len(line) && line[i] != nil {
				v = line[i]
			}
			if strings.TrimSpace(FormatCell(v)) != "" {
				blank = false
			}
			row[name] = v
		}
		if !blank {
			table.Rows = append(table.Rows, row)
		}
	}

	return table
}

// CompositeKey concatena os valores das colunas informadas com o separador
func CompositeKey(row Row, columns []string, separator string) string {
	parts := lo.Map(columns, func(c string, _ int) string {
		return row.String(c)
	})
	return strings.Join(parts, separator)
}

// FormatCell converte o valor de uma célula em texto
func FormatCell(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprint(value)
	}
}

// ParseNumber converte o valor de uma célula em número, 0 quando não for numérico
func ParseNumber(v any) float64 {
	switch value := v.(type) {
	case nil:
		return 0
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case string:
		s := strings.TrimSpace(value)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
