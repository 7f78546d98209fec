package domain

// ImpactViewType define a visão de análise de impacto solicitada
type ImpactViewType string

const (
	ImpactViewTotal      ImpactViewType = "TOTAL"
	ImpactViewNetImpact  ImpactViewType = "NET_IMPACT"
	ImpactViewPercentage ImpactViewType = "PERCENTAGE"
	ImpactViewMultiYear  ImpactViewType = "MULTI_YEAR"
)

// Valid verifica se a visão de impacto é suportada
func (v ImpactViewType) Valid() bool {
	switch v {
	case ImpactViewTotal, ImpactViewNetImpact, ImpactViewPercentage, ImpactViewMultiYear:
		return true
	}
	return false
}

// ImpactItem é a contribuição de um grupo de agregação para o impacto total.
// PercentageChange é expressa em pontos percentuais (5.0 = 5%).
type ImpactItem struct {
	Key              string  `json:"key"`
	Label            string  `json:"label,omitempty"`
	CurrentTotal     float64 `json:"current_total"`
	ProposedTotal    float64 `json:"proposed_total"`
	Impact           float64 `json:"impact"`
	NetImpact        float64 `json:"net_impact"`
	PercentageChange float64 `json:"percentage_change"`
	RecordCount      int     `json:"record_count"`
}

// ProjectionPoint é um ano projetado da visão MULTI_YEAR. A projeção aplica a
// variação percentual calculada de forma composta a partir do ano base; é
// puramente ilustrativa, não uma garantia.
type ProjectionPoint struct {
	Year           int     `json:"year"`
	ProjectedTotal float64 `json:"projected_total"`
}

// ImpactResult é o resultado completo de uma análise de impacto. Uma lista de
// grupos vazia produz um resultado zerado com itens vazios: ausência de dados
// é um estado de negócio válido, não uma exceção.
type ImpactResult struct {
	ViewType         ImpactViewType `json:"view_type"`
	Currency         string         `json:"currency,omitempty"`
	TotalCurrent     float64        `json:"total_current"`
	TotalProposed    float64        `json:"total_proposed"`
	TotalImpact      float64        `json:"total_impact"`
	TotalNetImpact   float64        `json:"total_net_impact"`
	// Em pontos percentuais (5.0 = 5%), como nos itens
	PercentageChange float64 `json:"percentage_change"`
	Items            []*ImpactItem  `json:"items"`
	HighestImpact    *ImpactItem    `json:"highest_impact,omitempty"`
	LowestImpact     *ImpactItem    `json:"lowest_impact,omitempty"`

	PeerComparison *PeerComparisonResult `json:"peer_comparison,omitempty"`
	Projection     []*ProjectionPoint    `json:"projection,omitempty"`
}
