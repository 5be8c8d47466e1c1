package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/attribution-sync/pkg/apiErrors"
	"github.com/vfg2006/attribution-sync/pkg/log"
)

const (
	CronJobTypeSync     = "sync"
	CronJobTypeRevenues = "revenues"
	CronJobTypeAll      = "all"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	Name() string
	TriggerManualSync(client string) bool
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser executados manualmente.
// All executa Sync e Revenues em sequência.
type CronJobServices struct {
	Sync     CronJob
	Revenues CronJob
	All      CronJob
}

func (s CronJobServices) jobs(cronType string) ([]CronJob, bool) {
	switch cronType {
	case CronJobTypeSync:
		return []CronJob{s.Sync}, true
	case CronJobTypeRevenues:
		return []CronJob{s.Revenues}, true
	case CronJobTypeAll:
		return []CronJob{s.All}, true
	default:
		return nil, false
	}
}

// RunCronJob dispara uma execução em segundo plano. O parâmetro client filtra os clientes pelo nome.
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		client := r.URL.Query().Get("client")

		jobs, ok := services.jobs(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrSyncUnknownJob, "Tipo de job inválido. Valores aceitos: sync, revenues, all", nil)
			return
		}

		started := map[string]bool{}
		for _, job := range jobs {
			if job == nil {
				continue
			}
			started[job.Name()] = job.TriggerManualSync(client)
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"type":    cronType,
			"client":  client,
			"started": started,
		}).Info("Execução manual solicitada")

		if len(started) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		anyStarted := false
		for _, jobStarted := range started {
			anyStarted = anyStarted || jobStarted
		}
		if !anyStarted {
			apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Sincronização já em andamento", started)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Sincronização iniciada",
			"type":    cronType,
			"client":  client,
			"started": started,
		})
	})
}

// GetCronStatus retorna o status dos jobs agendados
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for _, job := range []CronJob{services.Sync, services.Revenues} {
			if job != nil {
				status[job.Name()] = job.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	})
}
