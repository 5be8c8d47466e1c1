package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repositoryMocks "github.com/vfg2006/attribution-sync/infrastructure/repository/mocks"
	"github.com/vfg2006/attribution-sync/internal/api/handler"
	handlerMocks "github.com/vfg2006/attribution-sync/internal/api/handler/mocks"
	"github.com/vfg2006/attribution-sync/internal/config"
	"github.com/vfg2006/attribution-sync/internal/domain"
	"github.com/vfg2006/attribution-sync/internal/metrics"
	authMocks "github.com/vfg2006/attribution-sync/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/attribution-sync/internal/usecases/configuring"
	configuringMocks "github.com/vfg2006/attribution-sync/internal/usecases/configuring/mocks"
	"github.com/vfg2006/attribution-sync/pkg/apiErrors"
	"github.com/vfg2006/attribution-sync/pkg/log"
	"github.com/vfg2006/attribution-sync/pkg/utils"
	"go.uber.org/mock/gomock"
)

type apiMocks struct {
	auth     *authMocks.MockAuthenticator
	sync     *handlerMocks.MockCronJob
	revenues *handlerMocks.MockCronJob
	all      *handlerMocks.MockCronJob
	loader   *configuringMocks.MockLoader
	history  *repositoryMocks.MockRunHistoryRepository
}

func (m apiMocks) asAdmin() {
	m.auth.EXPECT().ValidateToken("token").Return(&domain.Claims{Role: domain.RoleAdmin}, nil)
}

func (m apiMocks) asViewer() {
	m.auth.EXPECT().ValidateToken("token").Return(&domain.Claims{Role: domain.RoleViewer}, nil)
}

func TestHandler(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name       string
		method     string
		path       string
		noHistory  bool
		setup      func(m apiMocks)
		wantStatus int
		validate   func(t *testing.T, body []byte)
	}{
		{
			name:       "Healthcheck sem token",
			method:     http.MethodGet,
			path:       "/healthcheck",
			setup:      func(m apiMocks) {},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"status":"ok"`)
			},
		},
		{
			name:       "Métricas sem token",
			method:     http.MethodGet,
			path:       "/metrics",
			setup:      func(m apiMocks) {},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Admin dispara a atualização de receitas de um cliente",
			method: http.MethodPost,
			path:   "/v1/cron/revenues/run?client=lalalab",
			setup: func(m apiMocks) {
				m.asAdmin()
				m.revenues.EXPECT().TriggerManualSync("lalalab").Return(true)
				m.revenues.EXPECT().Name().Return("revenues")
			},
			wantStatus: http.StatusAccepted,
			validate: func(t *testing.T, body []byte) {
				var response map[string]any
				require.NoError(t, utils.JSON.Unmarshal(body, &response))
				assert.Equal(t, map[string]any{"revenues": true}, response["started"])
			},
		},
		{
			name:   "Execução em andamento retorna conflito",
			method: http.MethodPost,
			path:   "/v1/cron/all/run",
			setup: func(m apiMocks) {
				m.asAdmin()
				m.all.EXPECT().Name().Return("all")
				m.all.EXPECT().TriggerManualSync("").Return(false)
			},
			wantStatus: http.StatusConflict,
			validate: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), apiErrors.ErrSyncAlreadyRunning)
			},
		},
		{
			name:   "Todos os jobs são disparados como uma única sequência",
			method: http.MethodPost,
			path:   "/v1/cron/all/run?client=FDJ",
			setup: func(m apiMocks) {
				m.asAdmin()
				m.all.EXPECT().Name().Return("all")
				m.all.EXPECT().TriggerManualSync("FDJ").Return(true)
			},
			wantStatus: http.StatusAccepted,
			validate: func(t *testing.T, body []byte) {
				var response map[string]any
				require.NoError(t, utils.JSON.Unmarshal(body, &response))
				assert.Equal(t, map[string]any{"all": true}, response["started"])
			},
		},
		{
			name:   "Tipo de job desconhecido",
			method: http.MethodPost,
			path:   "/v1/cron/meta/run",
			setup: func(m apiMocks) {
				m.asAdmin()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "Leitor não pode disparar sincronização",
			method: http.MethodPost,
			path:   "/v1/cron/sync/run",
			setup: func(m apiMocks) {
				m.asViewer()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "Leitor consulta o status dos jobs",
			method: http.MethodGet,
			path:   "/v1/cron/status",
			setup: func(m apiMocks) {
				m.asViewer()
				m.sync.EXPECT().Name().Return("sync")
				m.sync.EXPECT().GetStatus().Return(map[string]any{"sync_running": false})
				m.revenues.EXPECT().Name().Return("revenues")
				m.revenues.EXPECT().GetStatus().Return(map[string]any{"sync_running": true})
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var response map[string]map[string]any
				require.NoError(t, utils.JSON.Unmarshal(body, &response))
				assert.Equal(t, true, response["revenues"]["sync_running"])
				assert.Equal(t, false, response["sync"]["sync_running"])
			},
		},
		{
			name:   "Histórico filtrado por cliente",
			method: http.MethodGet,
			path:   "/v1/runs?client=FDJ&limit=5",
			setup: func(m apiMocks) {
				m.asViewer()
				m.history.EXPECT().ListByClient(gomock.Any(), "FDJ", 5).Return([]domain.ClientResult{
					{RunID: "r1", Client: "FDJ", Success: true},
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var results []domain.ClientResult
				require.NoError(t, utils.JSON.Unmarshal(body, &results))
				require.Len(t, results, 1)
				assert.Equal(t, "r1", results[0].RunID)
			},
		},
		{
			name:   "Histórico recente vazio retorna lista",
			method: http.MethodGet,
			path:   "/v1/runs",
			setup: func(m apiMocks) {
				m.asViewer()
				m.history.EXPECT().ListRecent(gomock.Any(), 0).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				assert.JSONEq(t, "[]", string(body))
			},
		},
		{
			name:   "Limite inválido",
			method: http.MethodGet,
			path:   "/v1/runs?limit=abc",
			setup: func(m apiMocks) {
				m.asViewer()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "Histórico desabilitado",
			method:    http.MethodGet,
			path:      "/v1/runs",
			noHistory: true,
			setup: func(m apiMocks) {
				m.asViewer()
			},
			wantStatus: http.StatusNotImplemented,
		},
		{
			name:   "Lista os clientes sem os tokens",
			method: http.MethodGet,
			path:   "/v1/clients",
			setup: func(m apiMocks) {
				m.asAdmin()
				m.loader.EXPECT().LoadClients(gomock.Any()).Return([]configuring.Entry{
					{Client: "Bforbank", Config: &domain.ClientConfig{Name: "Bforbank", APIToken: "segredo", AppToken: "app"}},
					{Client: "Sem planilha", Err: configuring.ErrSheetURLNotFound},
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				assert.NotContains(t, string(body), "segredo")

				var response []handler.ClientResponse
				require.NoError(t, utils.JSON.Unmarshal(body, &response))
				require.Len(t, response, 2)
				assert.Equal(t, "Bforbank", response[0].Config.Name)
				assert.Equal(t, configuring.ErrSheetURLNotFound.Error(), response[1].Error)
			},
		},
		{
			name:   "Planilha de configuração indisponível",
			method: http.MethodGet,
			path:   "/v1/clients",
			setup: func(m apiMocks) {
				m.asAdmin()
				m.loader.EXPECT().LoadClients(gomock.Any()).Return(nil, errors.New("403"))
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := apiMocks{
				auth:     authMocks.NewMockAuthenticator(ctrl),
				sync:     handlerMocks.NewMockCronJob(ctrl),
				revenues: handlerMocks.NewMockCronJob(ctrl),
				all:      handlerMocks.NewMockCronJob(ctrl),
				loader:   configuringMocks.NewMockLoader(ctrl),
				history:  repositoryMocks.NewMockRunHistoryRepository(ctrl),
			}
			tt.setup(m)

			services := handler.CronJobServices{Sync: m.sync, Revenues: m.revenues, All: m.all}
			h := NewHandler(m.auth, services, m.loader, m.history, metrics.New().Handler())
			if tt.noHistory {
				h = NewHandler(m.auth, services, m.loader, nil, metrics.New().Handler())
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer token")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.validate != nil {
				tt.validate(t, rec.Body.Bytes())
			}
		})
	}
}

func TestNew_RequiresSecretKey(t *testing.T) {
	_, err := New(&config.Config{}, nil, handler.CronJobServices{}, nil, nil, http.NotFoundHandler())
	assert.Error(t, err)

	srv, err := New(&config.Config{SecretKey: "s", Server: config.Server{Host: "localhost", Port: "8000"}}, nil, handler.CronJobServices{}, nil, nil, http.NotFoundHandler())
	require.NoError(t, err)
	assert.Equal(t, "localhost:8000", srv.httpServer.Addr)
}
