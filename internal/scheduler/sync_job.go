package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-sync/internal/config"
	"github.com/vfg2006/attribution-sync/internal/domain"
	"github.com/vfg2006/attribution-sync/internal/usecases/syncing"
)

// SyncJobConfig representa a configuração de um job agendado
type SyncJobConfig struct {
	Name         string
	CronSchedule string
	SyncEnabled  bool
	Options      syncing.RunOptions
}

// SyncJobService agenda e executa um modo de sincronização para todos os clientes ativos
type SyncJobService struct {
	scheduler           *gocron.Scheduler
	config              SyncJobConfig
	syncer              syncing.Syncer
	guard               *RunGuard
	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.RunReport
	lastError           error
}

// NewAttributionSyncService cria o job que reprocessa o período inteiro e grava as planilhas.
// guard deve ser o mesmo de NewRevenueSyncService.
func NewAttributionSyncService(syncer syncing.Syncer, appConfig *config.Config, guard *RunGuard) *SyncJobService {
	return newSyncJobService(syncer, guard, SyncJobConfig{
		Name:         "sync",
		CronSchedule: appConfig.Sync.CronSchedule,
		SyncEnabled:  appConfig.Sync.Enabled,
	})
}

// NewRevenueSyncService cria o job de atualização das receitas na janela móvel
func NewRevenueSyncService(syncer syncing.Syncer, appConfig *config.Config, guard *RunGuard) *SyncJobService {
	return newSyncJobService(syncer, guard, SyncJobConfig{
		Name:         "revenues",
		CronSchedule: appConfig.RevenueSync.CronSchedule,
		SyncEnabled:  appConfig.RevenueSync.Enabled,
		Options:      syncing.RunOptions{UpdateRevenues: true},
	})
}

func newSyncJobService(syncer syncing.Syncer, guard *RunGuard, jobConfig SyncJobConfig) *SyncJobService {
	logrus.WithFields(logrus.Fields{
		"job":           jobConfig.Name,
		"cron_schedule": jobConfig.CronSchedule,
		"sync_enabled":  jobConfig.SyncEnabled,
	}).Info("Configuração do agendador carregada")

	if guard == nil {
		guard = NewRunGuard()
	}

	return &SyncJobService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    jobConfig,
		syncer:    syncer,
		guard:     guard,
		ctx:       context.Background(),
	}
}

func (s *SyncJobService) Name() string {
	return s.config.Name
}

// Start inicia o agendador. ctx também é usado pelas execuções manuais.
func (s *SyncJobService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.ctx = ctx
	s.syncMutex.Unlock()

	if !s.config.SyncEnabled {
		logrus.WithField("job", s.config.Name).Info("Sincronização desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"job":  s.config.Name,
		"cron": s.config.CronSchedule,
	}).Info("Iniciando agendador de sincronização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a sincronização %s: %w", s.config.Name, err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("job", s.config.Name).Info("Parando agendador de sincronização")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SyncJobService) baseContext() context.Context {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.ctx
}

func (s *SyncJobService) manualOptions(client string) syncing.RunOptions {
	opts := s.config.Options
	opts.Client = client
	return opts
}

func (s *SyncJobService) markRunning() {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = true
}

func (s *SyncJobService) runSync(ctx context.Context) {
	if !s.guard.tryAcquire(s.config.Name) {
		return
	}
	defer s.guard.release()

	s.markRunning()
	s.execute(ctx, s.config.Options)
}

func (s *SyncJobService) execute(ctx context.Context, opts syncing.RunOptions) {
	s.syncMutex.Lock()
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	report, err := s.syncer.Run(ctx, opts)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = err
	if report != nil {
		s.lastReport = report
	}

	fields := logrus.Fields{
		"job":      s.config.Name,
		"duration": s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
	}
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Erro na sincronização agendada")
		return
	}

	fields["successes"] = report.Successes()
	fields["failures"] = report.Failures()
	logrus.WithFields(fields).Info("Sincronização concluída")
}

// TriggerManualSync inicia uma execução em segundo plano. client filtra os clientes pelo nome.
// Retorna false se este ou outro job que compartilha o guard estiver em execução.
func (s *SyncJobService) TriggerManualSync(client string) bool {
	if !s.guard.tryAcquire(s.config.Name) {
		return false
	}
	s.markRunning()

	logrus.WithFields(logrus.Fields{
		"job":    s.config.Name,
		"client": client,
	}).Info("Iniciando sincronização manual")

	go func() {
		defer s.guard.release()
		s.execute(s.baseContext(), s.manualOptions(client))
	}()
	return true
}

func (s *SyncJobService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *SyncJobService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"running_job":            s.guard.Running(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}
	if s.lastReport != nil {
		status["last_run_id"] = s.lastReport.RunID
		status["last_period"] = s.lastReport.Period.String()
		status["last_successes"] = s.lastReport.Successes()
		status["last_failures"] = s.lastReport.Failures()
		status["last_failed_clients"] = s.lastReport.FailedClients()
	}

	return status
}
