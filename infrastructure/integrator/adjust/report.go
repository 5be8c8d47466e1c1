package adjust

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/attribution-sync/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseCSVReport converte o CSV do reports-service numa tabela ordenada por dia.
// As células ficam como texto; as métricas são convertidas sob demanda.
func ParseCSVReport(data []byte) (*domain.Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.NewTable(nil), nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o cabeçalho do relatório: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	table := domain.NewTable(header)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler a linha %d do relatório: %w", table.Len()+2, err)
		}

		row := make(domain.Row, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
				continue
			}
			row[column] = ""
		}
		table.Rows = append(table.Rows, row)
	}

	if table.Has(domain.ColumnDay) {
		table.SortStable(func(a, b domain.Row) bool {
			return a.String(domain.ColumnDay) < b.String(domain.ColumnDay)
		})
	}

	return table, nil
}
