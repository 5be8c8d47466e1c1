package domain

import "strings"

// Nomes legíveis das colunas retornadas pelo relatório CSV do Adjust
const (
	ColumnApp         = "App"
	ColumnMonth       = "Month (date)"
	ColumnWeek        = "Week (date)"
	ColumnDay         = "Day (date)"
	ColumnNetwork     = "Network (attribution)"
	ColumnCountry     = "Country"
	ColumnCampaign    = "Campaign (attribution)"
	ColumnAdgroup     = "Adgroup (attribution)"
	ColumnCreative    = "Creative (attribution)"
	ColumnInstalls    = "Installs"
	ColumnClicks      = "Clicks"
	ColumnImpressions = "Impressions"
	ColumnAdspend     = "Adspend"
	ColumnInAppRev    = "In-app revenue"
	ColumnRevenueD0   = "0D All revenue total"
	ColumnRevenueD7   = "7D All revenue total"
	ColumnRevenueD30  = "30D All revenue total"
	ColumnCPI         = "CPI"
)

// Colunas do layout FDJ
const (
	ColumnAdSpend       = "Ad spend"
	ColumnNetworkName   = "Network"
	ColumnCampaignName  = "Campaign name"
	ColumnAdName        = "Ad name"
	ColumnCPA           = "CPA"
	ColumnBudget        = "Budget dépensé"
	ColumnConfirmations = "inscription_confirmation_events"
)

// OtherBucket é o valor usado nas linhas agrupadas sem instalações
const OtherBucket = "other"

// SummableColumns são as métricas somadas na agregação (CPI é recalculado depois)
var SummableColumns = []string{
	ColumnImpressions,
	ColumnClicks,
	ColumnInstalls,
	ColumnAdspend,
	ColumnInAppRev,
	ColumnRevenueD0,
	ColumnRevenueD7,
	ColumnRevenueD30,
	"all_revenue_total_d0",
	"all_revenue_total_d7",
	"all_revenue_total_d30",
}

// RevenueColumns são as únicas colunas sobrescritas no merge seletivo
var RevenueColumns = []string{ColumnRevenueD0, ColumnRevenueD7, ColumnRevenueD30}

// CostColumns são zeradas nas linhas novas da atualização de receitas
var CostColumns = []string{ColumnAdspend, ColumnAdSpend, ColumnCPI}

// MergeKeyColumns são as dimensões candidatas para a chave do merge
var MergeKeyColumns = []string{
	ColumnApp,
	ColumnMonth,
	ColumnWeek,
	ColumnDay,
	ColumnNetwork,
	ColumnCountry,
	ColumnCampaign,
	ColumnAdgroup,
	ColumnCreative,
}

// ReplaceKeyColumns identificam uma linha no layout FDJ
var ReplaceKeyColumns = []string{ColumnDay, ColumnCampaignName, ColumnAdName}

var StandardAggColumns = []string{
	ColumnDay,
	ColumnCountry,
	ColumnNetwork,
	ColumnCampaign,
	ColumnAdgroup,
	ColumnCreative,
}

var LalalabAggColumns = MergeKeyColumns

// OtherBucketGroupColumns agrupam as linhas com zero instalações
var OtherBucketGroupColumns = []string{
	ColumnApp,
	ColumnMonth,
	ColumnWeek,
	ColumnDay,
	ColumnNetwork,
	ColumnCountry,
}

var OtherBucketSumColumns = []string{
	ColumnImpressions,
	ColumnClicks,
	ColumnInstalls,
	ColumnAdspend,
	ColumnInAppRev,
	ColumnRevenueD0,
	ColumnRevenueD7,
	ColumnRevenueD30,
}

var LalalabLayout = []string{
	ColumnApp,
	ColumnMonth,
	ColumnWeek,
	ColumnDay,
	ColumnNetwork,
	ColumnCountry,
	ColumnCampaign,
	ColumnAdgroup,
	ColumnCreative,
	ColumnAdspend,
	ColumnInstalls,
	ColumnImpressions,
	ColumnClicks,
	ColumnInAppRev,
	ColumnRevenueD0,
	ColumnRevenueD7,
	ColumnRevenueD30,
	ColumnCPI,
}

var FDJLayout = []string{
	ColumnApp,
	ColumnMonth,
	ColumnWeek,
	ColumnDay,
	ColumnCampaignName,
	ColumnAdName,
	ColumnAdSpend,
	ColumnInstalls,
	ColumnClicks,
	ColumnInAppRev,
	"inscription_etape1_events",
	"inscription_etape2_events",
	"inscription_etape3_events",
	"inscription_etape5 (pi)_events",
	"inscription_etape6 (adresse)_events",
	ColumnConfirmations,
	"1er versement_events",
	"autre versement_events",
	"prise de jeu_events",
}

// FDJRenames mapeia as colunas do Adjust para o layout FDJ
var FDJRenames = map[string]string{
	ColumnNetwork:  ColumnNetworkName,
	ColumnCampaign: ColumnCampaignName,
	ColumnCreative: ColumnAdName,
	ColumnAdspend:  ColumnAdSpend,
}

// IsEventColumn identifica colunas de eventos de conversão somáveis
func IsEventColumn(column string) bool {
	c := strings.ToLower(column)
	return strings.Contains(c, "first_purchase") ||
		strings.Contains(c, "first purchase") ||
		strings.Contains(c, "purchase_events")
}

// IsFirstPurchaseColumn identifica colunas de primeira compra
func IsFirstPurchaseColumn(column string) bool {
	c := strings.ToLower(column)
	return strings.Contains(c, "first_purchase") || strings.Contains(c, "first purchase")
}

// IsRevenueColumn identifica colunas de receita para o resumo da execução
func IsRevenueColumn(column string) bool {
	return strings.Contains(strings.ToLower(column), "revenue")
}
