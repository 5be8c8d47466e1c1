package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/attribution-sync/internal/domain"
	"github.com/vfg2006/attribution-sync/internal/usecases/authenticating"
)

func newTokenCmd() *cobra.Command {
	var subject, role string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token de acesso à API para um operador",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			token, err := authenticating.NewService(cfg).GenerateToken(subject, role)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "identificação do operador (e-mail ou nome)")
	cmd.Flags().StringVar(&role, "role", domain.RoleViewer, "perfil de acesso: admin ou viewer")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
