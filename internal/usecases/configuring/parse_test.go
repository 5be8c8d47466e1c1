package configuring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/attribution-sync/internal/domain"
)

func TestParseCustomCPI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]float64
	}{
		{
			name:  "Aspas simples",
			input: "{'France': 7.0, 'Germany': 5.5}",
			want:  map[string]float64{"France": 7.0, "Germany": 5.5},
		},
		{
			name:  "JSON válido",
			input: `{"Italy": 3}`,
			want:  map[string]float64{"Italy": 3},
		},
		{
			name:  "Vazio",
			input: "  ",
			want:  map[string]float64{},
		},
		{
			name:  "Objeto vazio",
			input: "{}",
			want:  map[string]float64{},
		},
		{
			name:  "Texto inválido vira mapa vazio",
			input: "France=7",
			want:  map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCustomCPI(tt.input))
		})
	}
}

func TestParseColumnList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "Lista separada por vírgula",
			input: "App, Month (date) ,Week (date),Day (date)",
			want:  []string{"App", "Month (date)", "Week (date)", "Day (date)"},
		},
		{
			name:  "Formato de lista com colchetes e aspas",
			input: `['Day (date)', "Country"]`,
			want:  []string{"Day (date)", "Country"},
		},
		{
			name:  "Itens vazios são descartados",
			input: "France,,Italy,",
			want:  []string{"France", "Italy"},
		},
		{
			name:  "Vazio",
			input: "",
			want:  nil,
		},
		{
			name:  "Colchetes vazios",
			input: "[]",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseColumnList(tt.input))
		})
	}
}

func TestResolveProfile(t *testing.T) {
	assert.Equal(t, domain.ProfileLalalab, ResolveProfile("", "Lalalab Client Report ios"))
	assert.Equal(t, domain.ProfileFDJ, ResolveProfile("", "FDJ - Parions Sport"))
	assert.Equal(t, domain.ProfileStandard, ResolveProfile("", "Bforbank"))
	assert.Equal(t, domain.ProfileStandard, ResolveProfile("Standard", "Lalalab"))
	assert.Equal(t, domain.ProfileFDJ, ResolveProfile(" fdj ", "Bforbank"))
	assert.Equal(t, domain.ProfileLalalab, ResolveProfile("desconhecido", "Lalalab"))
}

func TestSelectClients(t *testing.T) {
	entries := []Entry{
		{Client: "Lalalab Client Report ios"},
		{Client: "Lalalab Client Report Android"},
		{Client: "Bforbank - iOS"},
	}

	tests := []struct {
		name     string
		selector string
		want     []string
	}{
		{
			name:     "Sem seletor mantém todos",
			selector: "",
			want:     []string{"Lalalab Client Report ios", "Lalalab Client Report Android", "Bforbank - iOS"},
		},
		{
			name:     "Trecho sem diferenciar maiúsculas",
			selector: "IOS",
			want:     []string{"Lalalab Client Report ios", "Bforbank - iOS"},
		},
		{
			name:     "Nenhum cliente encontrado",
			selector: "fdj",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := SelectClients(entries, tt.selector)
			names := make([]string, 0, len(selected))
			for _, e := range selected {
				names = append(names, e.Client)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
