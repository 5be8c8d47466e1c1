package configuring

import (
	"context"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-sync/infrastructure/integrator/gsheets"
	"github.com/vfg2006/attribution-sync/internal/config"
	"github.com/vfg2006/attribution-sync/internal/domain"
)

const sheetURLMarker = "docs.google.com/spreadsheets"

// Entry é o resultado da leitura de uma linha ativa da planilha de configuração
type Entry struct {
	Client string
	Config *domain.ClientConfig
	Err    error
}

type Loader interface {
	LoadClients(ctx context.Context) ([]Entry, error)
}

// configRow espelha as colunas da aba de configuração
type configRow struct {
	Client                string  `mapstructure:"client"`
	APIToken              string  `mapstructure:"api_token"`
	AppToken              string  `mapstructure:"app_token"`
	AccountID             string  `mapstructure:"account_id"`
	StoreID               string  `mapstructure:"store_id"`
	SheetName             string  `mapstructure:"sheet_name"`
	StartDate             string  `mapstructure:"start_date"`
	CustomCPI             string  `mapstructure:"custom_cpi"`
	AggColumns            string  `mapstructure:"agg_columns"`
	GroupByMostAggColumns string  `mapstructure:"group_by_most_agg_columns"`
	Countries             string  `mapstructure:"countries"`
	Events                string  `mapstructure:"events"`
	Network               string  `mapstructure:"network"`
	PushPolicy            string  `mapstructure:"push_policy"`
	Profile               string  `mapstructure:"profile"`
	CPA                   float64 `mapstructure:"cpa"`
	Dimensions            string  `mapstructure:"dimensions"`
	Metrics               string  `mapstructure:"metrics"`
}

type ConfigService struct {
	cfg   *config.Config
	store gsheets.SheetStore
}

func New(cfg *config.Config, store gsheets.SheetStore) Loader {
	return &ConfigService{
		cfg:   cfg,
		store: store,
	}
}

// LoadClients lê a aba de configuração e monta a configuração de cada cliente ativo.
// Linhas com erro viram entradas com Err preenchido para serem contadas como falha.
func (s *ConfigService) LoadClients(ctx context.Context) ([]Entry, error) {
	sheetID := s.cfg.GoogleSheets.ConfigSheetID
	if sheetID == "" {
		return nil, ErrConfigSheetMissing
	}

	table, err := s.store.ReadTable(ctx, sheetID, s.cfg.GoogleSheets.ConfigSheetName)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar a configuração: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"rows":    table.Len(),
		"columns": table.Columns,
	}).Info("Configuração carregada")

	entries := make([]Entry, 0, table.Len())
	for i, row := range table.Rows {
		if row.IsBlank("api_token") || row.IsBlank("app_token") {
			continue
		}

		client, err := s.buildClientConfig(table.Columns, row)
		name := strings.TrimSpace(row.String("client"))
		if name == "" {
			name = fmt.Sprintf("linha %d", i+2)
		}

		if err != nil {
			logrus.WithFields(logrus.Fields{
				"client": name,
				"error":  err,
			}).Warn("Configuração do cliente ignorada")
		}

		entries = append(entries, Entry{
			Client: name,
			Config: client,
			Err:    err,
		})
	}

	logrus.WithField("active_clients", len(entries)).Info("Clientes ativos encontrados")

	return entries, nil
}

func (s *ConfigService) buildClientConfig(columns []string, row domain.Row) (*domain.ClientConfig, error) {
	var raw configRow
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(map[string]any(row)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRow, err)
	}

	sheetURL, found := lo.Find(columns, func(c string) bool {
		return strings.Contains(row.String(c), sheetURLMarker)
	})
	if !found {
		return nil, ErrSheetURLNotFound
	}
	sheetID, ok := gsheets.ExtractSheetID(row.String(sheetURL))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSheetURL, row.String(sheetURL))
	}

	profile := ResolveProfile(raw.Profile, raw.Client)
	defaults := defaultsFor(profile)

	client := &domain.ClientConfig{
		Name:       strings.TrimSpace(raw.Client),
		APIToken:   strings.TrimSpace(raw.APIToken),
		AppToken:   strings.TrimSpace(raw.AppToken),
		AccountID:  strings.TrimSpace(raw.AccountID),
		StoreID:    strings.TrimSpace(raw.StoreID),
		SheetID:    sheetID,
		SheetName:  lo.Ternary(strings.TrimSpace(raw.SheetName) != "", strings.TrimSpace(raw.SheetName), s.cfg.Transform.DefaultSheetName),
		StartDate:  lo.Ternary(strings.TrimSpace(raw.StartDate) != "", strings.TrimSpace(raw.StartDate), s.cfg.Transform.DefaultStartDate),
		CustomCPI:  ParseCustomCPI(raw.CustomCPI),
		AggColumns: defaults.AggColumns,
		Countries:  defaults.Countries,
		Events:     defaults.Events,
		Network:    lo.Ternary(strings.TrimSpace(raw.Network) != "", strings.TrimSpace(raw.Network), s.cfg.Transform.Network),
		Dimensions: lo.Ternary(strings.TrimSpace(raw.Dimensions) != "", strings.TrimSpace(raw.Dimensions), defaults.Dimensions),
		Metrics:    lo.Ternary(strings.TrimSpace(raw.Metrics) != "", strings.TrimSpace(raw.Metrics), defaults.Metrics),
		Profile:    profile,
		PushPolicy: defaults.PushPolicy,
	}

	if cols := ParseColumnList(raw.GroupByMostAggColumns); len(cols) > 0 {
		client.AggColumns = cols
	} else if cols := ParseColumnList(raw.AggColumns); len(cols) > 0 {
		client.AggColumns = cols
	}
	if countries := ParseColumnList(raw.Countries); len(countries) > 0 {
		client.Countries = countries
	}
	if events := ParseColumnList(raw.Events); len(events) > 0 {
		client.Events = events
	}

	if strings.TrimSpace(raw.PushPolicy) != "" {
		policy, err := domain.ParsePushPolicy(raw.PushPolicy)
		if err != nil {
			return nil, err
		}
		client.PushPolicy = policy
	}

	if profile == domain.ProfileFDJ {
		client.CPA = lo.Ternary(raw.CPA > 0, raw.CPA, s.cfg.Transform.DefaultCPA)
	}

	return client, nil
}
