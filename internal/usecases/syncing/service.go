package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/vfg2006/attribution-sync/infrastructure/integrator/adjust"
	"github.com/vfg2006/attribution-sync/infrastructure/integrator/gsheets"
	"github.com/vfg2006/attribution-sync/infrastructure/repository"
	"github.com/vfg2006/attribution-sync/internal/config"
	"github.com/vfg2006/attribution-sync/internal/domain"
	"github.com/vfg2006/attribution-sync/internal/metrics"
	"github.com/vfg2006/attribution-sync/internal/usecases/configuring"
	"github.com/vfg2006/attribution-sync/internal/usecases/exporting"
	"github.com/vfg2006/attribution-sync/internal/usecases/merging"
	"github.com/vfg2006/attribution-sync/internal/usecases/transforming"
	"github.com/vfg2006/attribution-sync/pkg/log"
	"github.com/vfg2006/attribution-sync/pkg/utils"
)

type Syncer interface {
	Run(ctx context.Context, opts RunOptions) (*domain.RunReport, error)
}

type SyncService struct {
	cfg         *config.Config
	loader      configuring.Loader
	adjust      adjust.AdjustIntegrator
	transformer transforming.Transformer
	store       gsheets.SheetStore
	exporter    exporting.Exporter
	history     repository.RunHistoryRepository
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewService(
	cfg *config.Config,
	loader configuring.Loader,
	adjustIntegrator adjust.AdjustIntegrator,
	transformer transforming.Transformer,
	store gsheets.SheetStore,
	exporter exporting.Exporter,
) *SyncService {
	return &SyncService{
		cfg:         cfg,
		loader:      loader,
		adjust:      adjustIntegrator,
		transformer: transformer,
		store:       store,
		exporter:    exporter,
		now:         time.Now,
	}
}

// WithHistory grava o resultado de cada cliente no histórico de execuções
func (s *SyncService) WithHistory(history repository.RunHistoryRepository) *SyncService {
	s.history = history
	return s
}

func (s *SyncService) WithMetrics(m *metrics.Metrics) *SyncService {
	s.metrics = m
	return s
}

func (s *SyncService) WithClock(now func() time.Time) *SyncService {
	s.now = now
	return s
}

// Run processa os clientes ativos em sequência. A falha de um cliente não interrompe os demais.
func (s *SyncService) Run(ctx context.Context, opts RunOptions) (*domain.RunReport, error) {
	startedAt := s.now()

	period, err := resolvePeriod(opts, s.cfg.Sync.BeginDate, s.cfg.RevenueSync.RollingDays, startedAt)
	if err != nil {
		return nil, err
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o id da execução")
	}
	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)

	report := &domain.RunReport{
		RunID:     runID,
		Mode:      opts.Mode(),
		Period:    period,
		DryRun:    opts.DryRun,
		StartedAt: startedAt,
	}

	logger.WithFields(log.Fields{
		"mode":    report.Mode,
		"period":  period.String(),
		"client":  opts.Client,
		"dry_run": opts.DryRun,
	}).Info("Iniciando execução")

	entries, err := s.loader.LoadClients(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar a configuração dos clientes")
	}

	entries = configuring.SelectClients(entries, opts.Client)
	if len(entries) == 0 {
		return nil, ErrNoClients
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			logger.WithError(err).Warn("Execução cancelada, clientes restantes não processados")
			break
		}

		result := s.runClient(ctx, runID, entry, report.Mode, period, opts)
		report.Record(result)
		s.metrics.ObserveClient(result)

		if s.history != nil {
			if err := s.history.Save(ctx, &result); err != nil {
				logger.WithError(err).WithField("client", result.Client).Warn("Erro ao gravar o histórico do cliente")
			}
		}
	}

	report.FinishedAt = s.now()
	s.metrics.ObserveRun(report, report.FinishedAt)

	if _, err := s.exporter.ExportSummary(ctx, report); err != nil {
		logger.WithError(err).Warn("Erro ao exportar o resumo da execução")
	}

	logger.WithFields(log.Fields{
		"total":     report.Total(),
		"successes": report.Successes(),
		"failures":  report.Failures(),
	}).Info("Execução finalizada")

	return report, nil
}

// runClient isola o processamento de um cliente: qualquer erro ou panic vira uma falha no relatório
func (s *SyncService) runClient(ctx context.Context, runID string, entry configuring.Entry, mode domain.RunMode, period domain.Period, opts RunOptions) (result domain.ClientResult) {
	logger := log.ForContext(ctx).WithField("client", entry.Client)

	result = domain.ClientResult{
		RunID:     runID,
		Client:    entry.Client,
		Mode:      mode,
		Begin:     period.Begin,
		End:       period.End,
		StartedAt: s.now(),
	}

	defer func() {
		if r := recover(); r != nil {
			result.Success = false
			result.Error = fmt.Sprintf("panic: %v", r)
			logger.WithField("panic", r).Error("Erro inesperado ao processar o cliente")
		}
		result.FinishedAt = s.now()
	}()

	if entry.Err != nil {
		result.Error = entry.Err.Error()
		logger.WithError(entry.Err).Error("Configuração do cliente inválida")
		return result
	}

	client := *entry.Config
	result.Policy = policyFor(mode, client)

	if err := s.syncClient(ctx, client, period, opts, &result); err != nil {
		result.Error = err.Error()
		logger.WithFields(log.Fields{
			"policy": result.Policy,
			"cause":  errors.Cause(err),
		}).Errorf("Erro ao processar o cliente: %v", err)
		return result
	}

	result.Success = true
	return result
}

func (s *SyncService) syncClient(ctx context.Context, client domain.ClientConfig, period domain.Period, opts RunOptions, result *domain.ClientResult) error {
	logger := log.ForContext(ctx).WithField("client", client.Name)

	raw, err := s.adjust.PullReport(ctx, client, period)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar o relatório no Adjust")
	}
	result.RowsPulled = raw.Len()

	table, err := s.transformer.Transform(client, raw, transforming.Options{
		DisableCustomCPI: result.Mode == domain.RunModeRevenues,
	})
	if err != nil {
		return errors.Wrap(err, "erro ao transformar o relatório")
	}

	logger.WithFields(previewFields(table)).Info("Relatório transformado")

	file, err := s.exporter.ExportTable(ctx, client, period.End, table)
	if err != nil {
		return errors.Wrap(err, "erro ao exportar o CSV de auditoria")
	}
	result.OutputFile = file

	if table.IsEmpty() {
		logger.Warn("Nenhuma linha após a transformação, planilha não alterada")
		return nil
	}

	if opts.DryRun {
		logger.WithField("policy", result.Policy).Info("Simulação: planilha não alterada")
		return nil
	}

	tab := client.SheetName
	existing := domain.NewTable(nil)
	if result.Policy != domain.PushOverwrite {
		existing, err = s.store.ReadTable(ctx, client.SheetID, tab)
		if err != nil {
			return errors.Wrap(err, "erro ao ler a planilha de destino")
		}
	}

	merged, err := merging.Merge(existing, table, result.Policy, merging.Options{
		Cutoff: s.revenueCutoff(result.Mode),
	})
	if err != nil {
		return errors.Wrap(err, "erro ao reconciliar com a planilha")
	}

	result.RowsUpdated = merged.Updated + merged.Replaced
	result.RowsInserted = merged.Inserted

	if merged.Skipped {
		logger.WithField("policy", result.Policy).Warn("Nada a gravar na planilha")
		return nil
	}

	if err := s.store.WriteTable(ctx, client.SheetID, tab, merged.Table); err != nil {
		return errors.Wrap(err, "erro ao gravar na planilha")
	}
	result.RowsPushed = merged.Table.Len()

	logger.WithFields(log.Fields{
		"policy":    result.Policy,
		"rows":      result.RowsPushed,
		"updated":   result.RowsUpdated,
		"inserted":  result.RowsInserted,
		"full_push": merged.FullPush,
		"sheet":     gsheets.SheetURL(client.SheetID),
		"tab":       tab,
	}).Info("Planilha atualizada")

	return nil
}

func (s *SyncService) revenueCutoff(mode domain.RunMode) string {
	if mode != domain.RunModeRevenues {
		return ""
	}
	return utils.DaysAgo(s.now(), s.cfg.RevenueSync.RollingDays)
}

// previewFields resume a tabela transformada: número de linhas e total de cada coluna de receita
func previewFields(table *domain.Table) log.Fields {
	fields := log.Fields{"rows": table.Len()}

	revenueColumns := lo.Filter(table.Columns, func(column string, _ int) bool {
		return domain.IsRevenueColumn(column)
	})
	for _, column := range revenueColumns {
		fields[column] = utils.RoundWithTwoDecimalPlace(table.Sum(column))
	}

	return fields
}
