package configuring

import (
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-sync/internal/domain"
	"github.com/vfg2006/attribution-sync/pkg/utils"
)

// ParseCustomCPI converte o texto da coluna custom_cpi ("{'France': 7.0}") num mapa país -> CPI.
// Texto vazio ou inválido resulta num mapa vazio.
func ParseCustomCPI(raw string) map[string]float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "{}" {
		return map[string]float64{}
	}

	rates := map[string]float64{}
	if err := utils.JSON.UnmarshalFromString(strings.ReplaceAll(raw, "'", `"`), &rates); err != nil {
		logrus.WithFields(logrus.Fields{
			"custom_cpi": raw,
			"error":      err,
		}).Warn("Erro ao interpretar custom_cpi, ignorando")
		return map[string]float64{}
	}

	return rates
}

// ParseColumnList separa uma lista de colunas por vírgula.
// Aceita o formato de lista com colchetes e aspas.
func ParseColumnList(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	columns := lo.Map(strings.Split(raw, ","), func(c string, _ int) string {
		return strings.Trim(strings.TrimSpace(c), `"'`)
	})

	return lo.Compact(columns)
}

// ResolveProfile usa o perfil informado na configuração ou o deduz pelo nome do cliente
func ResolveProfile(explicit, clientName string) domain.Profile {
	switch p := domain.Profile(strings.ToLower(strings.TrimSpace(explicit))); p {
	case domain.ProfileStandard, domain.ProfileLalalab, domain.ProfileFDJ:
		return p
	}

	name := strings.ToLower(clientName)
	switch {
	case strings.Contains(name, "lalalab"):
		return domain.ProfileLalalab
	case strings.Contains(name, "fdj"):
		return domain.ProfileFDJ
	default:
		return domain.ProfileStandard
	}
}

// SelectClients filtra as entradas pelo trecho do nome do cliente, sem diferenciar maiúsculas
func SelectClients(entries []Entry, selector string) []Entry {
	selector = strings.ToLower(strings.TrimSpace(selector))
	if selector == "" {
		return entries
	}

	return lo.Filter(entries, func(e Entry, _ int) bool {
		return strings.Contains(strings.ToLower(e.Client), selector)
	})
}
