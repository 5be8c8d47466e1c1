package exporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-sync/infrastructure/storage/s3store"
	"github.com/vfg2006/attribution-sync/internal/config"
	"github.com/vfg2006/attribution-sync/internal/domain"
)

type Exporter interface {
	ExportTable(ctx context.Context, client domain.ClientConfig, endDate string, table *domain.Table) (string, error)
	ExportSummary(ctx context.Context, report *domain.RunReport) (string, error)
}

type ExportService struct {
	cfg      *config.Config
	uploader s3store.Uploader
}

// New cria o exportador das cópias de auditoria. uploader pode ser nil.
func New(cfg *config.Config, uploader s3store.Uploader) Exporter {
	return &ExportService{
		cfg:      cfg,
		uploader: uploader,
	}
}

// ExportTable grava a tabela transformada em output_<cliente>_<fim>.csv
func (s *ExportService) ExportTable(ctx context.Context, client domain.ClientConfig, endDate string, table *domain.Table) (string, error) {
	if !s.cfg.Export.Enabled || table == nil {
		return "", nil
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(table.Records()); err != nil {
		return "", fmt.Errorf("erro ao gerar o CSV de %s: %w", client.Name, err)
	}

	return s.write(ctx, client.OutputFileName(endDate), buf.Bytes())
}

// ExportSummary grava o resumo da execução em run_<id>.csv, uma linha por cliente
func (s *ExportService) ExportSummary(ctx context.Context, report *domain.RunReport) (string, error) {
	if !s.cfg.Export.Enabled || report == nil || len(report.Results) == 0 {
		return "", nil
	}

	data, err := csvutil.Marshal(report.Results)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar o resumo da execução: %w", err)
	}

	return s.write(ctx, fmt.Sprintf("run_%s.csv", report.RunID), data)
}

func (s *ExportService) write(ctx context.Context, name string, data []byte) (string, error) {
	dir := s.cfg.Export.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar o diretório de exportação: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"file":  path,
		"bytes": len(data),
	}).Info("Arquivo de auditoria exportado")

	if s.uploader != nil {
		location, err := s.uploader.Upload(ctx, name, bytes.NewReader(data))
		if err != nil {
			// A cópia local já existe, a falha no S3 não interrompe o cliente
			logrus.WithFields(logrus.Fields{
				"file":  name,
				"error": err,
			}).Warn("Falha ao enviar arquivo de auditoria para o S3")
		} else {
			logrus.WithField("location", location).Debug("Arquivo de auditoria enviado para o S3")
		}
	}

	return path, nil
}
