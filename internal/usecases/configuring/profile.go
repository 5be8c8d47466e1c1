package configuring

import "github.com/vfg2006/attribution-sync/internal/domain"

type profileDefaults struct {
	Dimensions string
	Metrics    string
	AggColumns []string
	Countries  []string
	Events     []string
	PushPolicy domain.PushPolicy
}

var lalalabCountries = []string{"France", "Germany", "Italy"}

var fdjEvents = []string{
	"inscription_etape1_events",
	"inscription_etape2_events",
	"inscription_etape3_events",
	"inscription_etape5 (pi)_events",
	"inscription_etape6 (adresse)_events",
	domain.ColumnConfirmations,
	"1er versement_events",
	"autre versement_events",
	"prise de jeu_events",
}

var profiles = map[domain.Profile]profileDefaults{
	domain.ProfileStandard: {
		Dimensions: "day,country,network,campaign,creative,adgroup",
		Metrics:    "installs,clicks,impressions",
		AggColumns: domain.StandardAggColumns,
		PushPolicy: domain.PushOverwrite,
	},
	// Repush completo: as receitas d7/d30 continuam mudando
	domain.ProfileLalalab: {
		Dimensions: "app,month,week,day,country,network,campaign,creative,adgroup",
		Metrics:    "installs,clicks,impressions,revenue,all_revenue_total_d0,all_revenue_total_d7,all_revenue_total_d30",
		AggColumns: domain.LalalabAggColumns,
		Countries:  lalalabCountries,
		Events:     []string{"first purchase_events"},
		PushPolicy: domain.PushOverwrite,
	},
	domain.ProfileFDJ: {
		Dimensions: "app,month,week,day,campaign,creative",
		Metrics:    "installs,clicks,impressions,cost,revenue",
		Events:     fdjEvents,
		PushPolicy: domain.PushReplace,
	},
}

func defaultsFor(profile domain.Profile) profileDefaults {
	if d, ok := profiles[profile]; ok {
		return d
	}
	return profiles[domain.ProfileStandard]
}
