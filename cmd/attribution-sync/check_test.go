package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/attribution-sync/internal/config"
	"github.com/vfg2006/attribution-sync/internal/domain"
	"github.com/vfg2006/attribution-sync/internal/usecases/configuring"
	"github.com/vfg2006/attribution-sync/internal/usecases/configuring/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "service_account.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckServiceAccount(t *testing.T) {
	tests := []struct {
		name     string
		cfg      func(t *testing.T) config.GoogleSheets
		validate func(t *testing.T, report *checkReport)
	}{
		{
			name: "Conta de serviço válida",
			cfg: func(t *testing.T) config.GoogleSheets {
				return config.GoogleSheets{CredentialsFile: writeFile(t, `{"client_email":"sync@projeto.iam.gserviceaccount.com"}`)}
			},
			validate: func(t *testing.T, report *checkReport) {
				assert.Empty(t, report.errors)
				assert.Len(t, report.success, 1)
				assert.Contains(t, report.warnings[0], "sync@projeto.iam.gserviceaccount.com")
			},
		},
		{
			name: "Arquivo ausente",
			cfg: func(t *testing.T) config.GoogleSheets {
				return config.GoogleSheets{CredentialsFile: filepath.Join(t.TempDir(), "nada.json")}
			},
			validate: func(t *testing.T, report *checkReport) {
				assert.Len(t, report.errors, 1)
			},
		},
		{
			name: "Arquivo sem client_email",
			cfg: func(t *testing.T) config.GoogleSheets {
				return config.GoogleSheets{CredentialsFile: writeFile(t, `{"type":"service_account"}`)}
			},
			validate: func(t *testing.T, report *checkReport) {
				assert.Contains(t, report.errors[0], "client_email")
			},
		},
		{
			name: "Arquivo corrompido",
			cfg: func(t *testing.T) config.GoogleSheets {
				return config.GoogleSheets{CredentialsFile: writeFile(t, `{`)}
			},
			validate: func(t *testing.T, report *checkReport) {
				assert.Contains(t, report.errors[0], "corrompido")
			},
		},
		{
			name: "Endpoint alternativo dispensa credenciais",
			cfg: func(t *testing.T) config.GoogleSheets {
				return config.GoogleSheets{Endpoint: "http://localhost:9000/"}
			},
			validate: func(t *testing.T, report *checkReport) {
				assert.Empty(t, report.errors)
				assert.Len(t, report.warnings, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &checkReport{}
			checkServiceAccount(report, tt.cfg(t))
			tt.validate(t, report)
		})
	}
}

func TestCheckClients(t *testing.T) {
	cfg := &config.Config{GoogleSheets: config.GoogleSheets{ConfigSheetID: "cfg", ConfigSheetName: "custom CPI"}}

	t.Run("Lista clientes e falhas de configuração", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		loader := mocks.NewMockLoader(ctrl)
		loader.EXPECT().LoadClients(gomock.Any()).Return([]configuring.Entry{
			{Client: "FDJ", Config: &domain.ClientConfig{Name: "FDJ", Profile: domain.ProfileFDJ, PushPolicy: domain.PushReplace, SheetName: "Sheet1"}},
			{Client: "linha 3", Err: configuring.ErrSheetURLNotFound},
		}, nil)

		report := &checkReport{}
		checkClients(context.Background(), report, cfg, loader)

		assert.Len(t, report.success, 2)
		assert.Len(t, report.errors, 1)

		var out bytes.Buffer
		report.print(&out)
		assert.Contains(t, out.String(), "ERROS:")
		assert.Contains(t, out.String(), "cliente FDJ (perfil fdj, política replace, aba Sheet1)")
	})

	t.Run("Planilha de configuração inacessível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		loader := mocks.NewMockLoader(ctrl)
		loader.EXPECT().LoadClients(gomock.Any()).Return(nil, errors.New("403"))

		report := &checkReport{}
		checkClients(context.Background(), report, cfg, loader)

		assert.Len(t, report.errors, 1)
		assert.Empty(t, report.success)
	})
}
