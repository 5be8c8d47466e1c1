package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/attribution-sync/internal/config"
	"github.com/vfg2006/attribution-sync/internal/usecases/configuring"
	"github.com/vfg2006/attribution-sync/pkg/utils"
)

var errCheckFailed = errors.New("verificação encontrou erros")

// checkReport acumula o resultado das verificações da instalação
type checkReport struct {
	errors   []string
	warnings []string
	success  []string
}

func (r *checkReport) ok(format string, args ...any) {
	r.success = append(r.success, fmt.Sprintf(format, args...))
}

func (r *checkReport) fail(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *checkReport) warn(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *checkReport) print(w io.Writer) {
	section := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s:\n", title)
		for _, line := range lines {
			fmt.Fprintf(w, "   %s\n", line)
		}
	}

	fmt.Fprintln(w, "RESUMO DA VERIFICAÇÃO")
	section("ERROS", r.errors)
	section("AVISOS", r.warnings)
	section("OK", r.success)
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verifica credenciais, planilha de configuração e clientes ativos",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			report := &checkReport{}
			checkServiceAccount(report, cfg.GoogleSheets)

			if len(report.errors) == 0 {
				a, err := newApp(cmd.Context(), cfg)
				if err != nil {
					report.fail("inicialização: %v", err)
				} else {
					defer a.Close()
					checkClients(cmd.Context(), report, cfg, a.loader)
				}
			}

			report.print(cmd.OutOrStdout())
			if len(report.errors) > 0 {
				return errCheckFailed
			}
			return nil
		},
	}
}

// checkServiceAccount valida o arquivo de credenciais da conta de serviço
func checkServiceAccount(report *checkReport, cfg config.GoogleSheets) {
	if cfg.Endpoint != "" {
		report.warn("usando endpoint alternativo do Google Sheets sem autenticação: %s", cfg.Endpoint)
		return
	}

	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		report.fail("%s não encontrado: %v", cfg.CredentialsFile, err)
		return
	}

	var account struct {
		ClientEmail string `json:"client_email"`
	}
	if err := utils.JSON.Unmarshal(data, &account); err != nil {
		report.fail("%s corrompido: %v", cfg.CredentialsFile, err)
		return
	}
	if account.ClientEmail == "" {
		report.fail("%s inválido: client_email ausente", cfg.CredentialsFile)
		return
	}

	report.ok("%s (email: %s)", cfg.CredentialsFile, account.ClientEmail)
	report.warn("as planilhas dos clientes precisam estar compartilhadas com %s", account.ClientEmail)
}

// checkClients lê a planilha de configuração e lista os clientes ativos
func checkClients(ctx context.Context, report *checkReport, cfg *config.Config, loader configuring.Loader) {
	entries, err := loader.LoadClients(ctx)
	if err != nil {
		report.fail("planilha de configuração %s: %v", cfg.GoogleSheets.ConfigSheetID, err)
		return
	}
	report.ok("planilha de configuração %s, aba %q", cfg.GoogleSheets.ConfigSheetID, cfg.GoogleSheets.ConfigSheetName)

	if len(entries) == 0 {
		report.warn("nenhum cliente ativo na planilha de configuração")
		return
	}

	for _, entry := range entries {
		if entry.Err != nil {
			report.fail("cliente %s: %v", entry.Client, entry.Err)
			continue
		}
		report.ok("cliente %s (perfil %s, política %s, aba %s)",
			entry.Client, entry.Config.Profile, entry.Config.PushPolicy, entry.Config.SheetName)
	}
}
