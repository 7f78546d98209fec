package domain

import "time"

// PeerViewType define a visão de comparação com o grupo de pares
type PeerViewType string

const (
	PeerViewAverage    PeerViewType = "AVERAGE"
	PeerViewRange      PeerViewType = "RANGE"
	PeerViewPercentile PeerViewType = "PERCENTILE"
)

// Valid verifica se a visão de comparação é suportada
func (v PeerViewType) Valid() bool {
	switch v {
	case PeerViewAverage, PeerViewRange, PeerViewPercentile:
		return true
	}
	return false
}

// PeerStatistics é o resumo estatístico da distribuição do grupo de pares.
// Os quartis são nil quando o grupo tem menos de 2 membros: o percentil é
// estatisticamente indefinido nesse caso e o nil deve ser propagado como tal,
// nunca substituído por zero.
type PeerStatistics struct {
	Average      float64  `json:"average"`
	Min          float64  `json:"min"`
	Max          float64  `json:"max"`
	Percentile25 *float64 `json:"percentile_25"`
	Percentile50 *float64 `json:"percentile_50"`
	Percentile75 *float64 `json:"percentile_75"`
	MemberCount  int      `json:"member_count"`
}

// PeerComparisonItem é a posição de uma entidade do grupo de pares
type PeerComparisonItem struct {
	EntityID   string  `json:"entity_id"`
	EntityName string  `json:"entity_name,omitempty"`
	Average    float64 `json:"average"`
}

// PeerTrendPair compara a variação anual do chamador com a do grupo de pares
type PeerTrendPair struct {
	Year      int     `json:"year"`
	OwnValue  float64 `json:"own_value"`
	PeerValue float64 `json:"peer_value"`
}

// PeerComparisonResult posiciona a organização chamadora dentro da
// distribuição do grupo de pares. PercentileRank é nil quando o grupo tem
// menos de 2 membros (indefinido, não zero).
type PeerComparisonResult struct {
	ViewType       PeerViewType          `json:"view_type"`
	PeerGroupID    string                `json:"peer_group_id"`
	Statistics     *PeerStatistics       `json:"statistics"`
	OwnAverage     float64               `json:"own_average"`
	PercentileRank *float64              `json:"percentile_rank"`
	Items          []*PeerComparisonItem `json:"items"`
	Trend          []*PeerTrendPair      `json:"trend,omitempty"`
}

// PeerGroup é um conjunto configurado de organizações comparáveis
type PeerGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PeerMember é uma organização pertencente a um grupo de pares
type PeerMember struct {
	GroupID    string `json:"group_id"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name,omitempty"`
}

// PeerBenchmark é o agregado pré-calculado de um membro do grupo de pares,
// atualizado pelo agendador de sincronização de benchmarks
type PeerBenchmark struct {
	GroupID       string    `json:"group_id"`
	EntityID      string    `json:"entity_id"`
	EntityName    string    `json:"entity_name,omitempty"`
	EffectiveYear int       `json:"effective_year"`
	AverageAmount float64   `json:"average_amount"`
	RecordCount   int       `json:"record_count"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}
