package handler

import (
	"net/http"

	"github.com/vfg2006/attribution-sync/internal/domain"
	"github.com/vfg2006/attribution-sync/internal/usecases/configuring"
	"github.com/vfg2006/attribution-sync/pkg/apiErrors"
	"github.com/vfg2006/attribution-sync/pkg/log"
)

// ClientResponse é a configuração de um cliente sem os tokens do Adjust
type ClientResponse struct {
	Client string               `json:"client"`
	Config *domain.ClientConfig `json:"config,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// ListClients lista os clientes ativos da planilha de configuração
func ListClients(loader configuring.Loader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entries, err := loader.LoadClients(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao ler a planilha de configuração")
			apiErrors.WriteError(w, apiErrors.ErrSyncConfig, "Erro ao ler a planilha de configuração", nil)
			return
		}

		entries = configuring.SelectClients(entries, r.URL.Query().Get("client"))

		response := make([]ClientResponse, 0, len(entries))
		for _, entry := range entries {
			item := ClientResponse{Client: entry.Client, Config: entry.Config}
			if entry.Err != nil {
				item.Error = entry.Err.Error()
			}
			response = append(response, item)
		}

		writeJSON(w, http.StatusOK, response)
	})
}
