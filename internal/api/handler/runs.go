package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/attribution-sync/infrastructure/repository"
	"github.com/vfg2006/attribution-sync/internal/domain"
	"github.com/vfg2006/attribution-sync/pkg/apiErrors"
	"github.com/vfg2006/attribution-sync/pkg/log"
)

// ListRuns lista o histórico de execuções por cliente, mais recentes primeiro
func ListRuns(history repository.RunHistoryRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if history == nil {
			apiErrors.WriteError(w, apiErrors.ErrSyncHistory, "Histórico de execuções desabilitado (DATABASE_ENABLED=false)", nil)
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", raw)
				return
			}
			limit = parsed
		}

		var (
			results []domain.ClientResult
			err     error
		)
		if client := r.URL.Query().Get("client"); client != "" {
			results, err = history.ListByClient(r.Context(), client, limit)
		} else {
			results, err = history.ListRecent(r.Context(), limit)
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao consultar o histórico de execuções")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o histórico de execuções", nil)
			return
		}

		if results == nil {
			results = []domain.ClientResult{}
		}
		writeJSON(w, http.StatusOK, results)
	})
}
