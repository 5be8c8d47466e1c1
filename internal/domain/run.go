package domain

import (
	"time"

	"github.com/samber/lo"
)

// RunMode define o período e a política usados numa execução
type RunMode string

const (
	// RunModePeriod reprocessa o período inteiro desde a data inicial
	RunModePeriod RunMode = "period"
	// RunModeDaily processa uma única data com push incremental
	RunModeDaily RunMode = "daily"
	// RunModeRevenues atualiza apenas as receitas da janela móvel
	RunModeRevenues RunMode = "revenues"
)

type Period struct {
	Begin string `json:"begin"`
	End   string `json:"end"`
}

func (p Period) String() string {
	return p.Begin + ":" + p.End
}

// ClientResult é o resultado do processamento de um cliente
type ClientResult struct {
	ID           int64      `json:"id,omitempty" csv:"-"`
	RunID        string     `json:"run_id" csv:"run_id"`
	Client       string     `json:"client" csv:"client"`
	Mode         RunMode    `json:"mode" csv:"mode"`
	Policy       PushPolicy `json:"policy" csv:"policy"`
	Begin        string     `json:"begin" csv:"begin"`
	End          string     `json:"end" csv:"end"`
	Success      bool       `json:"success" csv:"success"`
	Error        string     `json:"error,omitempty" csv:"error"`
	RowsPulled   int        `json:"rows_pulled" csv:"rows_pulled"`
	RowsPushed   int        `json:"rows_pushed" csv:"rows_pushed"`
	RowsUpdated  int        `json:"rows_updated" csv:"rows_updated"`
	RowsInserted int        `json:"rows_inserted" csv:"rows_inserted"`
	OutputFile   string     `json:"output_file,omitempty" csv:"output_file"`
	StartedAt    time.Time  `json:"started_at" csv:"started_at"`
	FinishedAt   time.Time  `json:"finished_at" csv:"finished_at"`
}

func (r ClientResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// RunReport reúne os resultados de uma execução na ordem em que os clientes foram processados
type RunReport struct {
	RunID      string         `json:"run_id"`
	Mode       RunMode        `json:"mode"`
	Period     Period         `json:"period"`
	DryRun     bool           `json:"dry_run"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Results    []ClientResult `json:"results"`
}

func (r *RunReport) Record(result ClientResult) {
	r.Results = append(r.Results, result)
}

// Outcomes é o mapa cliente -> sucesso da execução
func (r *RunReport) Outcomes() map[string]bool {
	return lo.SliceToMap(r.Results, func(res ClientResult) (string, bool) {
		return res.Client, res.Success
	})
}

func (r *RunReport) Total() int {
	return len(r.Results)
}

func (r *RunReport) Successes() int {
	return lo.CountBy(r.Results, func(res ClientResult) bool {
		return res.Success
	})
}

func (r *RunReport) Failures() int {
	return r.Total() - r.Successes()
}

func (r *RunReport) FailedClients() []string {
	failed := lo.Filter(r.Results, func(res ClientResult, _ int) bool {
		return !res.Success
	})
	return lo.Map(failed, func(res ClientResult, _ int) string {
		return res.Client
	})
}
