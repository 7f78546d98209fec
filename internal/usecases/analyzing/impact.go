// Package analyzing calcula o impacto financeiro das mudanças de tarifas
// propostas sobre os grupos de agregação
package analyzing

import (
	"math"
	"time"

	"github.com/lexrates/rate-insights-api/internal/domain"
)

// nowFunc permite fixar o relógio nos testes
var nowFunc = time.Now

// AnalysisOptions parametriza o cálculo de impacto
type AnalysisOptions struct {
	ViewType domain.ImpactViewType

	// BaseYear é o ano de partida da projeção plurianual; zero usa o ano
	// corrente
	BaseYear int

	// ProjectionYears é o horizonte da visão MULTI_YEAR
	ProjectionYears int
}

// ComputeImpact deriva o resultado de impacto a partir dos grupos agregados.
// Uma lista de grupos vazia produz um resultado zerado com itens vazios. O
// percentual de variação é zero quando o total atual é zero: não há base de
// comparação, e zero é a resposta menos enganosa para um dashboard.
func ComputeImpact(groups []*domain.AggregationGroup, options AnalysisOptions) (*domain.ImpactResult, error) {
	if !options.ViewType.Valid() {
		return nil, domain.NewValidationError("view_type", "visão de impacto desconhecida: "+string(options.ViewType))
	}

	result := &domain.ImpactResult{
		ViewType: options.ViewType,
		Items:    make([]*domain.ImpactItem, 0, len(groups)),
	}

	for _, group := range groups {
		if result.Currency == "" {
			result.Currency = group.Currency
		}

		item := &domain.ImpactItem{
			Key:              group.Key,
			Label:            group.Label,
			CurrentTotal:     group.CurrentTotal,
			ProposedTotal:    group.ProposedTotal,
			Impact:           group.Impact(),
			NetImpact:        group.NetImpact(),
			PercentageChange: percentageChange(group.CurrentTotal, group.ProposedTotal),
			RecordCount:      group.RecordCount(),
		}
		result.Items = append(result.Items, item)

		result.TotalCurrent += group.CurrentTotal
		result.TotalProposed += group.ProposedTotal
		result.TotalImpact += item.Impact
		result.TotalNetImpact += item.NetImpact

		if result.HighestImpact == nil || item.Impact > result.HighestImpact.Impact {
			result.HighestImpact = item
		}
		if result.LowestImpact == nil || item.Impact < result.LowestImpact.Impact {
			result.LowestImpact = item
		}
	}

	result.PercentageChange = percentageChange(result.TotalCurrent, result.TotalProposed)

	if options.ViewType == domain.ImpactViewMultiYear {
		result.Projection = project(result.TotalProposed, result.PercentageChange, options)
	}

	return result, nil
}

func percentageChange(current, proposed float64) float64 {
	if current == 0 {
		return 0
	}
	return (proposed - current) / current * 100
}

// project compõe a variação percentual calculada sobre o total proposto ao
// longo do horizonte solicitado. A projeção é ilustrativa: assume que a mesma
// variação se repete todos os anos.
func project(proposedTotal, pctChange float64, options AnalysisOptions) []*domain.ProjectionPoint {
	years := options.ProjectionYears
	if years <= 0 {
		return nil
	}

	baseYear := options.BaseYear
	if baseYear == 0 {
		baseYear = nowFunc().UTC().Year()
	}

	points := make([]*domain.ProjectionPoint, 0, years)
	for k := 1; k <= years; k++ {
		points = append(points, &domain.ProjectionPoint{
			Year:           baseYear + k,
			ProjectedTotal: proposedTotal * math.Pow(1+pctChange/100, float64(k)),
		})
	}

	return points
}
