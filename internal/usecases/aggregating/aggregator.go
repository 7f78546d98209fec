// Package aggregating agrupa registros de tarifas por dimensão e acumula os
// totais monetários de cada grupo
package aggregating

import (
	"sort"

	"github.com/lexrates/rate-insights-api/internal/domain"
)

// GroupByDimension particiona os registros pela dimensão informada: cada
// registro pertence a exatamente um grupo e nenhum registro é descartado.
// Todos os registros devem estar na mesma moeda; a conversão é um passo
// anterior (ver internal/currency). Os grupos retornam ordenados pelo impacto
// absoluto decrescente, com desempate pela ordem de chegada.
func GroupByDimension(records []*domain.RateRecord, dimension domain.Dimension) ([]*domain.AggregationGroup, error) {
	if !dimension.Valid() {
		return nil, domain.NewValidationError("dimension", "dimensão de agrupamento desconhecida: "+string(dimension))
	}

	groups := make([]*domain.AggregationGroup, 0)
	index := make(map[string]*domain.AggregationGroup)

	// A moeda do primeiro registro é a referência, mesmo quando vazia: um
	// registro sem moeda misturado com registros em moeda explícita também
	// é um conjunto misto.
	currency := ""
	for i, record := range records {
		if i == 0 {
			currency = record.Currency
		} else if record.Currency != currency {
			return nil, domain.NewValidationError("currency", "registros em moedas diferentes não podem ser agregados: converta antes de agrupar")
		}

		key, label := record.DimensionKey(dimension)
		if label == "" {
			label = key
		}

		group, ok := index[key]
		if !ok {
			group = &domain.AggregationGroup{
				Dimension: dimension,
				Key:       key,
				Label:     label,
				Currency:  record.Currency,
			}
			index[key] = group
			groups = append(groups, group)
		}

		group.Records = append(group.Records, record)
		group.CurrentTotal += record.CurrentAmount
		group.ProposedTotal += record.ProposedAmount
		group.Adjustment += record.FeeAdjustment
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].AbsoluteImpact() > groups[j].AbsoluteImpact()
	})

	return groups, nil
}
