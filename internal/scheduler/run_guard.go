package scheduler

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// RunGuard é compartilhado pelos jobs que gravam nas mesmas planilhas: só um executa por vez
type RunGuard struct {
	mu      sync.Mutex
	running string
}

func NewRunGuard() *RunGuard {
	return &RunGuard{}
}

// tryAcquire reserva a execução para o job; retorna false se outro job estiver rodando
func (g *RunGuard) tryAcquire(job string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running != "" {
		logrus.WithFields(logrus.Fields{
			"job":         job,
			"running_job": g.running,
		}).Info("Sincronização já em andamento, ignorando")
		return false
	}
	g.running = job
	return true
}

func (g *RunGuard) release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.running = ""
}

// Running retorna o nome do job em execução ou vazio
func (g *RunGuard) Running() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// JobSequence executa vários jobs um após o outro na mesma goroutine
type JobSequence struct {
	name  string
	guard *RunGuard
	jobs  []*SyncJobService
}

func NewJobSequence(name string, guard *RunGuard, jobs ...*SyncJobService) *JobSequence {
	return &JobSequence{name: name, guard: guard, jobs: jobs}
}

func (q *JobSequence) Name() string {
	return q.name
}

// TriggerManualSync dispara a sequência em segundo plano. Retorna false se algum job já estiver rodando.
func (q *JobSequence) TriggerManualSync(client string) bool {
	if !q.guard.tryAcquire(q.name) {
		return false
	}

	for _, job := range q.jobs {
		job.markRunning()
	}

	logrus.WithFields(logrus.Fields{
		"job":    q.name,
		"client": client,
	}).Info("Iniciando sequência manual de sincronizações")

	go func() {
		defer q.guard.release()
		for _, job := range q.jobs {
			job.execute(job.baseContext(), job.manualOptions(client))
		}
	}()

	return true
}

func (q *JobSequence) GetStatus() map[string]any {
	status := map[string]any{}
	for _, job := range q.jobs {
		status[job.Name()] = job.GetStatus()
	}
	return status
}
