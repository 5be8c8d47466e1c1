package syncing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/attribution-sync/internal/domain"
)

const reportRule = "============================================================"

// FormatReport monta o relatório final impresso ao término da execução
func FormatReport(report *domain.RunReport) string {
	var b strings.Builder

	fmt.Fprintln(&b, reportRule)
	fmt.Fprintf(&b, "RELATÓRIO FINAL (execução %s, modo %s, período %s)\n", report.RunID, report.Mode, report.Period)
	if report.DryRun {
		fmt.Fprintln(&b, "Simulação: nenhuma planilha foi alterada")
	}
	fmt.Fprintln(&b, reportRule)

	for _, result := range report.Results {
		if result.Success {
			fmt.Fprintf(&b, "  [OK]    %s (%d linhas)\n", result.Client, result.RowsPushed)
			continue
		}
		fmt.Fprintf(&b, "  [FALHA] %s: %s\n", result.Client, result.Error)
	}

	fmt.Fprintf(&b, "Sucessos: %d/%d\n", report.Successes(), report.Total())
	fmt.Fprintf(&b, "Falhas: %d/%d\n", report.Failures(), report.Total())
	if failed := report.FailedClients(); len(failed) > 0 {
		fmt.Fprintf(&b, "Clientes com falha: %s\n", strings.Join(failed, ", "))
	}
	fmt.Fprintf(&b, "Duração: %s\n", report.FinishedAt.Sub(report.StartedAt).Round(1e6))

	return b.String()
}
