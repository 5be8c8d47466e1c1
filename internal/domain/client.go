package domain

import (
	"fmt"
	"strings"
)

// Profile agrupa as regras de uma família de clientes
type Profile string

const (
	ProfileStandard Profile = "standard"
	ProfileLalalab  Profile = "lalalab"
	ProfileFDJ      Profile = "fdj"
)

// PushPolicy define como a tabela transformada é gravada na planilha de destino
type PushPolicy string

const (
	// PushOverwrite limpa a aba e grava a tabela transformada
	PushOverwrite PushPolicy = "overwrite"
	// PushMerge atualiza só as receitas das chaves existentes e insere as linhas novas inteiras
	PushMerge PushPolicy = "merge"
	// PushRevenues atualiza receitas numa janela móvel e insere linhas novas com custo zerado
	PushRevenues PushPolicy = "revenues"
	// PushReplace substitui linhas inteiras pela chave dia + campanha + anúncio
	PushReplace PushPolicy = "replace"
)

func ParsePushPolicy(s string) (PushPolicy, error) {
	switch p := PushPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PushOverwrite, PushMerge, PushRevenues, PushReplace:
		return p, nil
	default:
		return "", fmt.Errorf("política de push inválida: %q", s)
	}
}

// ClientConfig é a configuração de um cliente lida da planilha de configuração
type ClientConfig struct {
	Name       string             `json:"client"`
	APIToken   string             `json:"-"`
	AppToken   string             `json:"-"`
	AccountID  string             `json:"account_id,omitempty"`
	StoreID    string             `json:"store_id,omitempty"`
	SheetID    string             `json:"sheet_id"`
	SheetName  string             `json:"sheet_name"`
	StartDate  string             `json:"start_date"`
	CustomCPI  map[string]float64 `json:"custom_cpi,omitempty"`
	AggColumns []string           `json:"agg_columns,omitempty"`
	Countries  []string           `json:"countries,omitempty"`
	Events     []string           `json:"events,omitempty"`
	Network    string             `json:"network"`
	Dimensions string             `json:"dimensions"`
	Metrics    string             `json:"metrics"`
	Profile    Profile            `json:"profile"`
	PushPolicy PushPolicy         `json:"push_policy"`
	CPA        float64            `json:"cpa,omitempty"`
}

var fileNameReplacer = strings.NewReplacer(" ", "_", "/", "_", "\\", "_")

// OutputFileName é o nome do CSV de auditoria do cliente para a data final do período.
// Separadores de caminho no nome do cliente viram "_" para o arquivo ficar no diretório de exportação.
func (c ClientConfig) OutputFileName(endDate string) string {
	return fmt.Sprintf("output_%s_%s.csv", fileNameReplacer.Replace(c.Name), endDate)
}

// MetricsWithEvents retorna as métricas pedidas ao Adjust com os eventos no final
func (c ClientConfig) MetricsWithEvents() string {
	if len(c.Events) == 0 {
		return c.Metrics
	}
	return c.Metrics + "," + strings.Join(c.Events, ",")
}
