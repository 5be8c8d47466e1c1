package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vfg2006/attribution-sync/internal/usecases/syncing"
)

func newRunCmd() *cobra.Command {
	var opts syncing.RunOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Executa a sincronização dos clientes ativos",
		Example: `  attribution-sync run
  attribution-sync run --date 2025-11-10
  attribution-sync run --update-revenues --client lalalab
  attribution-sync run --begin 2025-11-01 --end 2025-11-15 --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.syncer.Run(ctx, opts)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), syncing.FormatReport(report))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Date, "date", "", "processa um único dia (YYYY-MM-DD) com push incremental")
	flags.BoolVar(&opts.UpdateRevenues, "update-revenues", false, "atualiza apenas as receitas da janela móvel")
	flags.StringVar(&opts.Client, "client", "", "processa só os clientes cujo nome contém o texto")
	flags.StringVar(&opts.Begin, "begin", "", "data inicial do período (padrão SYNC_BEGIN_DATE)")
	flags.StringVar(&opts.End, "end", "", "data final do período (padrão ontem)")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "transforma e exporta sem alterar as planilhas")
	cmd.MarkFlagsMutuallyExclusive("date", "update-revenues")

	return cmd
}
