package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-sync/infrastructure/database"
	"github.com/vfg2006/attribution-sync/infrastructure/integrator/adjust"
	"github.com/vfg2006/attribution-sync/infrastructure/integrator/adjust/adjustclient"
	"github.com/vfg2006/attribution-sync/infrastructure/integrator/gsheets"
	"github.com/vfg2006/attribution-sync/infrastructure/integrator/gsheets/sheetsclient"
	"github.com/vfg2006/attribution-sync/infrastructure/migration"
	"github.com/vfg2006/attribution-sync/infrastructure/repository"
	"github.com/vfg2006/attribution-sync/infrastructure/storage/s3store"
	"github.com/vfg2006/attribution-sync/internal/config"
	"github.com/vfg2006/attribution-sync/internal/metrics"
	"github.com/vfg2006/attribution-sync/internal/usecases/configuring"
	"github.com/vfg2006/attribution-sync/internal/usecases/exporting"
	"github.com/vfg2006/attribution-sync/internal/usecases/syncing"
	"github.com/vfg2006/attribution-sync/internal/usecases/transforming"
)

// app reúne as dependências compartilhadas pelos comandos
type app struct {
	cfg     *config.Config
	conn    *database.Connection
	history repository.RunHistoryRepository
	store   gsheets.SheetStore
	loader  configuring.Loader
	syncer  *syncing.SyncService
	metrics *metrics.Metrics
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{
		cfg:     cfg,
		metrics: metrics.New(),
	}

	sheetsClient, err := sheetsclient.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.store = gsheets.New(sheetsClient)
	a.loader = configuring.New(cfg, a.store)

	uploader, err := s3store.NewUploader(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao configurar o envio para o S3")
	}

	adjustIntegrator := adjust.New(cfg, adjustclient.NewClient(cfg))

	a.syncer = syncing.NewService(
		cfg,
		a.loader,
		adjustIntegrator,
		transforming.New(cfg),
		a.store,
		exporting.New(cfg, uploader),
	).WithMetrics(a.metrics)

	if cfg.Database.Enabled {
		if err := a.openHistory(ctx); err != nil {
			return nil, err
		}
		a.syncer.WithHistory(a.history)
	}

	return a, nil
}

// openHistory conecta ao banco, aplica o schema e cria o repositório do histórico
func (a *app) openHistory(ctx context.Context) error {
	conn, err := database.NewConnection(ctx, a.cfg.Database)
	if err != nil {
		return errors.Wrapf(err, "erro ao conectar ao banco (%s)", a.cfg.Database.Driver)
	}

	if err := migration.Apply(ctx, conn); err != nil {
		conn.Close()
		return errors.Wrap(err, "erro ao aplicar o schema do histórico")
	}

	logrus.WithField("driver", conn.Driver).Info("Histórico de execuções habilitado")

	a.conn = conn
	a.history = repository.NewRunHistoryRepository(conn)
	return nil
}

func (a *app) Close() {
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar a conexão com o banco")
		}
	}
}
