// Package comparing posiciona a organização chamadora dentro da distribuição
// de tarifas do seu grupo de pares
package comparing

import (
	"math"
	"sort"

	"github.com/lexrates/rate-insights-api/internal/domain"
)

// quantile calcula o quantil q (0..1) por interpolação linear entre as
// posições vizinhas (método R-7). O slice de entrada deve estar ordenado.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	position := q * float64(len(sorted)-1)
	lower := int(math.Floor(position))
	upper := int(math.Ceil(position))
	if lower == upper {
		return sorted[lower]
	}

	fraction := position - float64(lower)
	return sorted[lower] + fraction*(sorted[upper]-sorted[lower])
}

// Statistics resume a distribuição de valores do grupo de pares. Os quartis
// são nil quando há menos de 2 valores: indefinido não é zero.
func Statistics(values []float64) *domain.PeerStatistics {
	stats := &domain.PeerStatistics{MemberCount: len(values)}
	if len(values) == 0 {
		return stats
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, value := range sorted {
		sum += value
	}

	stats.Average = sum / float64(len(sorted))
	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]

	if len(sorted) >= 2 {
		p25 := quantile(sorted, 0.25)
		p50 := quantile(sorted, 0.50)
		p75 := quantile(sorted, 0.75)
		stats.Percentile25 = &p25
		stats.Percentile50 = &p50
		stats.Percentile75 = &p75
	}

	return stats
}

// PercentileRank retorna a posição percentual de value dentro da distribuição:
// a fração de valores menores ou iguais a ele, limitada a [0, 100]. Retorna
// nil quando a distribuição tem menos de 2 valores.
func PercentileRank(values []float64, value float64) *float64 {
	if len(values) < 2 {
		return nil
	}

	atOrBelow := 0
	for _, v := range values {
		if v <= value {
			atOrBelow++
		}
	}

	rank := float64(atOrBelow) / float64(len(values)) * 100
	rank = math.Max(0, math.Min(100, rank))

	return &rank
}

// ComputeComparison monta o resultado da comparação a partir das médias dos
// membros do grupo de pares. A posição percentual é calculada apenas contra os
// pares, nunca incluindo a própria organização na distribuição.
func ComputeComparison(
	viewType domain.PeerViewType,
	peerGroupID string,
	ownAverage float64,
	items []*domain.PeerComparisonItem,
) (*domain.PeerComparisonResult, error) {
	if !viewType.Valid() {
		return nil, domain.NewValidationError("view_type", "visão de comparação desconhecida: "+string(viewType))
	}

	values := make([]float64, 0, len(items))
	for _, item := range items {
		values = append(values, item.Average)
	}

	ordered := make([]*domain.PeerComparisonItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Average > ordered[j].Average
	})

	return &domain.PeerComparisonResult{
		ViewType:       viewType,
		PeerGroupID:    peerGroupID,
		Statistics:     Statistics(values),
		OwnAverage:     ownAverage,
		PercentileRank: PercentileRank(values, ownAverage),
		Items:          ordered,
	}, nil
}
