package handler

import (
	"net/http"

	"github.com/vfg2006/attribution-sync/pkg/apiErrors"
	"github.com/vfg2006/attribution-sync/pkg/utils"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := utils.JSON.NewEncoder(w).Encode(body); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}
