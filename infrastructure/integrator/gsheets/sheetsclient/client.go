package sheetsclient

import (
	"context"
	"fmt"

	"github.com/vfg2006/attribution-sync/internal/config"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	valueRenderUnformatted = "UNFORMATTED_VALUE"
	dateRenderFormatted    = "FORMATTED_STRING"
	valueInputUserEntered  = "USER_ENTERED"
)

type Client interface {
	GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]any, error)
	ClearValues(ctx context.Context, spreadsheetID, clearRange string) error
	UpdateValues(ctx context.Context, spreadsheetID, writeRange string, values [][]any) error
}

type SheetsClient struct {
	service *sheets.Service
	config  *config.Config
}

// NewClient autentica com a conta de serviço e cria o cliente da API do Google Sheets
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	opts := []option.ClientOption{
		option.WithScopes(sheets.SpreadsheetsScope),
	}

	// Endpoint alternativo é usado apenas com emuladores locais, sem autenticação
	if cfg.GoogleSheets.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.GoogleSheets.Endpoint), option.WithoutAuthentication())
	} else {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleSheets.CredentialsFile))
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o cliente do Google Sheets: %w", err)
	}

	return &SheetsClient{
		service: service,
		config:  cfg,
	}, nil
}

func (c *SheetsClient) GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]any, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, readRange).
		ValueRenderOption(valueRenderUnformatted).
		DateTimeRenderOption(dateRenderFormatted).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %s da planilha %s: %w", readRange, spreadsheetID, err)
	}

	return resp.Values, nil
}

func (c *SheetsClient) ClearValues(ctx context.Context, spreadsheetID, clearRange string) error {
	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao limpar %s da planilha %s: %w", clearRange, spreadsheetID, err)
	}

	return nil
}

func (c *SheetsClient) UpdateValues(ctx context.Context, spreadsheetID, writeRange string, values [][]any) error {
	body := &sheets.ValueRange{
		Values: values,
	}

	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, writeRange, body).
		ValueInputOption(valueInputUserEntered).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao gravar %s na planilha %s: %w", writeRange, spreadsheetID, err)
	}

	return nil
}
