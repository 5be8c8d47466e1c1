package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/attribution-sync/internal/domain"
	"github.com/vfg2006/attribution-sync/internal/usecases/authenticating"
	"github.com/vfg2006/attribution-sync/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/attribution-sync/pkg/apiErrors"
	"github.com/vfg2006/attribution-sync/pkg/log"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthAndRoleMiddleware(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name       string
		path       string
		header     string
		roles      func() func(http.Handler) http.Handler
		setup      func(auth *mocks.MockAuthenticator)
		wantStatus int
	}{
		{
			name:       "Rota pública dispensa token",
			path:       "/healthcheck",
			setup:      func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "Sem cabeçalho Authorization",
			path:       "/v1/cron/status",
			roles:      AllRoles,
			setup:      func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Cabeçalho sem Bearer",
			path:       "/v1/cron/status",
			header:     "Basic abc",
			roles:      AllRoles,
			setup:      func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token expirado",
			path:   "/v1/cron/status",
			header: "Bearer velho",
			roles:  AllRoles,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("velho").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Leitor acessa rota de leitura",
			path:   "/v1/runs",
			header: "Bearer ok",
			roles:  AllRoles,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("ok").Return(&domain.Claims{Role: domain.RoleViewer}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "Leitor não dispara sincronização",
			path:   "/v1/cron/sync/run",
			header: "Bearer ok",
			roles:  AdminOnly,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("ok").Return(&domain.Claims{Role: domain.RoleViewer}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			chain := alice.New(LoggingMiddleware(), AuthMiddleware(auth))
			if tt.roles != nil {
				chain = chain.Append(tt.roles())
			}
			handler := chain.Then(okHandler())

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("falha")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/runs", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
