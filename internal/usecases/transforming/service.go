package transforming

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-sync/internal/config"
	"github.com/vfg2006/attribution-sync/internal/domain"
)

// Options ajusta a transformação ao modo da execução
type Options struct {
	// DisableCustomCPI ignora a tabela de CPI por país (atualização de receitas)
	DisableCustomCPI bool
}

type Transformer interface {
	Transform(client domain.ClientConfig, raw *domain.Table, opts Options) (*domain.Table, error)
}

type TransformService struct {
	cfg *config.Config
}

func New(cfg *config.Config) Transformer {
	return &TransformService{
		cfg: cfg,
	}
}

// Transform aplica filtros, custo por país, agregação e as regras do perfil do cliente.
// A tabela de entrada não é alterada.
func (s *TransformService) Transform(client domain.ClientConfig, raw *domain.Table, opts Options) (*domain.Table, error) {
	if raw == nil {
		return domain.NewTable(nil), nil
	}

	logger := logrus.WithFields(logrus.Fields{
		"client":  client.Name,
		"profile": client.Profile,
	})

	table := raw.Clone()
	coerceNumeric(table)

	table = filterCountries(table, client.Countries)
	table = filterNetwork(table, client.Network)

	table, err := filterStartDate(table, client.StartDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao filtrar pela data inicial: %w", err)
	}

	logger.WithField("rows", table.Len()).Debug("Filtros aplicados")

	if client.Profile == domain.ProfileFDJ {
		out, err := transformFDJ(table, client.CPA)
		if err != nil {
			return nil, err
		}
		logger.WithField("rows", out.Len()).Info("Transformação FDJ concluída")
		return out, nil
	}

	if s.skipInstallsFilter(client.Name) {
		logger.Debug("Cliente sem filtro de installs > 0")
		fillBlank(table, domain.ColumnImpressions, 0.0)
	} else {
		table = filterInstalls(table)
	}

	if !opts.DisableCustomCPI && len(client.CustomCPI) > 0 {
		applyCustomCPI(table, client.CustomCPI)
	}

	if keys := table.Present(client.AggColumns); len(keys) > 0 {
		table = Aggregate(table, keys, sumColumns(table))
		logger.WithFields(logrus.Fields{
			"agg_columns": keys,
			"rows":        table.Len(),
		}).Debug("Agregação concluída")
	}

	recomputeCPI(table)

	if client.Profile == domain.ProfileLalalab {
		table = groupOtherBucket(table)
		table = table.Select(lalalabLayout(table))
	}

	logger.WithFields(logrus.Fields{
		"rows":    table.Len(),
		"columns": len(table.Columns),
	}).Info("Transformação concluída")

	return table, nil
}

func (s *TransformService) skipInstallsFilter(clientName string) bool {
	return lo.Contains(s.cfg.Transform.SkipInstallsFilterClients, clientName)
}
