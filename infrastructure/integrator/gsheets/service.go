package gsheets

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-sync/infrastructure/integrator/gsheets/sheetsclient"
	"github.com/vfg2006/attribution-sync/internal/domain"
)

var sheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

type SheetStore interface {
	ReadTable(ctx context.Context, sheetID, tab string) (*domain.Table, error)
	WriteTable(ctx context.Context, sheetID, tab string, table *domain.Table) error
}

type SheetsService struct {
	Client sheetsclient.Client
}

func New(client sheetsclient.Client) SheetStore {
	return &SheetsService{
		Client: client,
	}
}

// ReadTable lê a aba inteira, usando a primeira linha como cabeçalho
func (s *SheetsService) ReadTable(ctx context.Context, sheetID, tab string) (*domain.Table, error) {
	values, err := s.Client.GetValues(ctx, sheetID, TabRange(tab))
	if err != nil {
		return nil, err
	}

	table := domain.TableFromValues(values)

	logrus.WithFields(logrus.Fields{
		"sheet_id": sheetID,
		"tab":      tab,
		"rows":     table.Len(),
	}).Debug("Aba lida do Google Sheets")

	return table, nil
}

// WriteTable limpa a aba e grava cabeçalho e linhas a partir de A1.
// Se a gravação falhar depois da limpeza a aba fica vazia.
func (s *SheetsService) WriteTable(ctx context.Context, sheetID, tab string, table *domain.Table) error {
	if table == nil {
		return fmt.Errorf("tabela nula para a aba %s", tab)
	}

	if err := s.Client.ClearValues(ctx, sheetID, TabRange(tab)); err != nil {
		return err
	}

	if err := s.Client.UpdateValues(ctx, sheetID, TabRange(tab)+"!A1", table.Values()); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"sheet_id": sheetID,
		"tab":      tab,
		"rows":     table.Len(),
		"columns":  len(table.Columns),
	}).Info("Aba gravada no Google Sheets")

	return nil
}

// TabRange devolve o nome da aba entre aspas simples, no formato A1 da API
func TabRange(tab string) string {
	return "'" + strings.ReplaceAll(tab, "'", "''") + "'"
}

// ExtractSheetID extrai o ID de uma URL do Google Sheets
func ExtractSheetID(url string) (string, bool) {
	match := sheetIDPattern.FindStringSubmatch(url)
	if len(match) < 2 {
		return "", false
	}
	return match[1], true
}

func SheetURL(sheetID string) string {
	return "https://docs.google.com/spreadsheets/d/" + sheetID
}
