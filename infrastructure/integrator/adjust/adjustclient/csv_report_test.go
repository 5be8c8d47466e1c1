package adjustclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/attribution-sync/internal/config"
)

func newTestConfig(url string) *config.Config {
	return &config.Config{
		Adjust: config.Adjust{
			URL:               url,
			UTCOffset:         "+01:00",
			AttributionSource: "first",
			AttributionType:   "all",
			Currency:          "EUR",
			Timeout:           5 * time.Second,
		},
	}
}

func TestAdjustClient_GetCSVReport(t *testing.T) {
	tests := []struct {
		name     string
		params   CSVReportParams
		handler  http.HandlerFunc
		validate func(t *testing.T, body []byte, err error)
	}{
		{
			name: "Envia todos os parâmetros e o token do cliente",
			params: CSVReportParams{
				APIToken:   "api-token",
				AppToken:   "vmu6fbf5yprt",
				AccountID:  "259",
				BeginDate:  "2025-11-01",
				EndDate:    "2025-11-02",
				Dimensions: "day,country,network",
				Metrics:    "installs,clicks,impressions,first purchase_events",
			},
			handler: func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if r.Header.Get("Authorization") != "Bearer api-token" ||
					q.Get("date_period") != "2025-11-01:2025-11-02" ||
					q.Get("dimensions") != "day,country,network" ||
					q.Get("metrics") != "installs,clicks,impressions,first purchase_events" ||
					q.Get("readable_names") != "true" ||
					q.Get("utc_offset") != "+01:00" ||
					q.Get("attribution_source") != "first" ||
					q.Get("attribution_type") != "all" ||
					q.Get("currency") != "EUR" ||
					q.Get("app_token__in") != "vmu6fbf5yprt" ||
					q.Get("adjust_account_id") != "259" ||
					q.Has("store_id__in") {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				w.Write([]byte("Day (date),Installs\n2025-11-01,10\n"))
			},
			validate: func(t *testing.T, body []byte, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Day (date),Installs\n2025-11-01,10\n", string(body))
			},
		},
		{
			name: "Filtra por loja quando informado",
			params: CSVReportParams{
				APIToken: "api-token",
				AppToken: "xyufp5gt730g",
				StoreID:  "1222993561",
			},
			handler: func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if q.Get("store_id__in") != "1222993561" || q.Has("adjust_account_id") {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				w.Write([]byte("ok"))
			},
			validate: func(t *testing.T, body []byte, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ok", string(body))
			},
		},
		{
			name:   "Status diferente de 200 vira erro com o corpo da resposta",
			params: CSVReportParams{APIToken: "api-token"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte("invalid token\n"))
			},
			validate: func(t *testing.T, body []byte, err error) {
				require.Error(t, err)
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
				assert.Equal(t, "invalid token", apiErr.Body)
				assert.Nil(t, body)
			},
		},
		{
			name:   "Sem token da API não faz requisição",
			params: CSVReportParams{AppToken: "app"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				t.Error("requisição não deveria ser feita")
			},
			validate: func(t *testing.T, body []byte, err error) {
				assert.ErrorIs(t, err, ErrMissingToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(newTestConfig(server.URL + "/reports-service/csv_report"))
			body, err := client.GetCSVReport(context.Background(), tt.params)
			tt.validate(t, body, err)
		})
	}
}
