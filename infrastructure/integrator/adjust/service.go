package adjust

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-sync/infrastructure/integrator/adjust/adjustclient"
	"github.com/vfg2006/attribution-sync/internal/config"
	"github.com/vfg2006/attribution-sync/internal/domain"
)

type AdjustIntegrator interface {
	PullReport(ctx context.Context, client domain.ClientConfig, period domain.Period) (*domain.Table, error)
}

type AdjustService struct {
	cfg    *config.Config
	Client adjustclient.Client
}

func New(cfg *config.Config, client adjustclient.Client) AdjustIntegrator {
	return &AdjustService{
		cfg:    cfg,
		Client: client,
	}
}

// PullReport busca o relatório CSV do cliente para o período e o converte em tabela
func (s *AdjustService) PullReport(ctx context.Context, client domain.ClientConfig, period domain.Period) (*domain.Table, error) {
	params := adjustclient.CSVReportParams{
		APIToken:   client.APIToken,
		AppToken:   client.AppToken,
		AccountID:  client.AccountID,
		StoreID:    client.StoreID,
		BeginDate:  period.Begin,
		EndDate:    period.End,
		Dimensions: client.Dimensions,
		Metrics:    client.MetricsWithEvents(),
	}

	logrus.WithFields(logrus.Fields{
		"client":     client.Name,
		"period":     period.String(),
		"account_id": client.AccountID,
		"dimensions": params.Dimensions,
		"metrics":    params.Metrics,
	}).Info("Buscando relatório no Adjust")

	body, err := s.Client.GetCSVReport(ctx, params)
	if err != nil {
		return nil, err
	}

	table, err := ParseCSVReport(body)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"client": client.Name,
		"rows":   table.Len(),
	}).Info("Relatório do Adjust recebido")

	return table, nil
}
