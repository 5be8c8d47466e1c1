package syncing

import (
	"time"

	"github.com/vfg2006/attribution-sync/internal/domain"
	"github.com/vfg2006/attribution-sync/pkg/utils"
)

// RunOptions são os parâmetros de uma execução, vindos da linha de comando, da API ou do agendador
type RunOptions struct {
	// Date processa um único dia com push incremental
	Date string
	// UpdateRevenues atualiza só as receitas da janela móvel
	UpdateRevenues bool
	// Client filtra os clientes por trecho do nome
	Client string
	Begin  string
	End    string
	// DryRun transforma e exporta sem gravar nas planilhas
	DryRun bool
}

func (o RunOptions) Mode() domain.RunMode {
	switch {
	case o.UpdateRevenues:
		return domain.RunModeRevenues
	case o.Date != "":
		return domain.RunModeDaily
	default:
		return domain.RunModePeriod
	}
}

// resolvePeriod calcula o período da execução a partir do modo e da data atual
func resolvePeriod(opts RunOptions, beginDate string, rollingDays int, now time.Time) (domain.Period, error) {
	if opts.UpdateRevenues && opts.Date != "" {
		return domain.Period{}, ErrConflictingModes
	}

	var period domain.Period
	switch opts.Mode() {
	case domain.RunModeRevenues:
		period = domain.Period{
			Begin: utils.DaysAgo(now, rollingDays),
			End:   utils.Yesterday(now),
		}
	case domain.RunModeDaily:
		period = domain.Period{Begin: opts.Date, End: opts.Date}
	default:
		period = domain.Period{Begin: beginDate, End: utils.Yesterday(now)}
		if opts.Begin != "" {
			period.Begin = opts.Begin
		}
		if opts.End != "" {
			period.End = opts.End
		}
	}

	begin, err := utils.NormalizeDate(period.Begin)
	if err != nil {
		return domain.Period{}, ErrInvalidDate
	}
	end, err := utils.NormalizeDate(period.End)
	if err != nil {
		return domain.Period{}, ErrInvalidDate
	}
	if begin > end {
		return domain.Period{}, ErrInvalidPeriod
	}
	period = domain.Period{Begin: begin, End: end}

	return period, nil
}

// policyFor escolhe a política de push do cliente para o modo da execução
func policyFor(mode domain.RunMode, client domain.ClientConfig) domain.PushPolicy {
	switch mode {
	case domain.RunModeRevenues:
		return domain.PushRevenues
	case domain.RunModeDaily:
		if client.PushPolicy == domain.PushReplace {
			return domain.PushReplace
		}
		return domain.PushMerge
	default:
		return client.PushPolicy
	}
}
