package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/attribution-sync/internal/api"
	"github.com/vfg2006/attribution-sync/internal/api/handler"
	"github.com/vfg2006/attribution-sync/internal/scheduler"
	"github.com/vfg2006/attribution-sync/internal/usecases/authenticating"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Inicia os agendadores e a API HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			guard := scheduler.NewRunGuard()
			attributionSyncService := scheduler.NewAttributionSyncService(a.syncer, cfg, guard)
			revenueSyncService := scheduler.NewRevenueSyncService(a.syncer, cfg, guard)

			for _, job := range []*scheduler.SyncJobService{attributionSyncService, revenueSyncService} {
				if err := job.Start(ctx); err != nil {
					logrus.WithError(err).WithField("job", job.Name()).Error("Erro ao iniciar o agendador")
					continue
				}
				logrus.WithField("job", job.Name()).Info("Agendador iniciado")
			}

			server, err := api.New(
				cfg,
				authenticating.NewService(cfg),
				handler.CronJobServices{
					Sync:     attributionSyncService,
					Revenues: revenueSyncService,
					All:      scheduler.NewJobSequence(handler.CronJobTypeAll, guard, attributionSyncService, revenueSyncService),
				},
				a.loader,
				a.history,
				a.metrics.Handler(),
			)
			if err != nil {
				return err
			}

			return server.Run(ctx)
		},
	}
}
