package domain

import "math"

// AggregationGroup é um valor de dimensão (por exemplo, um escritório) com os
// registros atribuídos a ele e os totais derivados. Criado por chamada de
// agregação e descartado após o resultado ser produzido; não há estado
// persistido entre requisições.
type AggregationGroup struct {
	Dimension Dimension     `json:"dimension"`
	Key       string        `json:"key"`
	Label     string        `json:"label,omitempty"`
	Currency  string        `json:"currency"`
	Records   []*RateRecord `json:"-"`

	CurrentTotal  float64 `json:"current_total"`
	ProposedTotal float64 `json:"proposed_total"`
	// Adjustment é a soma dos abatimentos de fee arrangement dos registros do
	// grupo, usada pela visão NET_IMPACT
	Adjustment float64 `json:"adjustment,omitempty"`
}

// Impact retorna o impacto monetário com sinal do grupo
func (g *AggregationGroup) Impact() float64 {
	return g.ProposedTotal - g.CurrentTotal
}

// NetImpact retorna o impacto líquido após abater os ajustes de fee arrangement
func (g *AggregationGroup) NetImpact() float64 {
	return g.Impact() - g.Adjustment
}

// AbsoluteImpact retorna a magnitude do impacto, usada pela ordenação canônica
func (g *AggregationGroup) AbsoluteImpact() float64 {
	return math.Abs(g.Impact())
}

// RecordCount retorna o número de registros atribuídos ao grupo
func (g *AggregationGroup) RecordCount() int {
	return len(g.Records)
}
