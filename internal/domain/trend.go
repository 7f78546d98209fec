package domain

// SeriesPoint é um ponto de entrada (ano, valor) de uma série histórica
type SeriesPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// TrendPoint é um ponto derivado da série, com a variação percentual em
// relação ao ano anterior. O primeiro ponto da série tem variação zero.
//
// Convenção de unidades: PercentChange é expressa em pontos percentuais
// (5.0 = 5%), como os dashboards exibem variação ano a ano. Taxas compostas
// (CAGR, InflationRate, DifferenceFromInflation) são frações (0.05 = 5%).
type TrendPoint struct {
	Year          int     `json:"year"`
	Value         float64 `json:"value"`
	PercentChange float64 `json:"percent_change"`
}

// TrendSeries é uma série nomeada de pontos ordenados cronologicamente com o
// CAGR calculado, expresso como fração (0.05 = 5% a.a.). CAGR é zero para
// séries degeneradas (menos de 2 pontos, intervalo de anos nulo ou valor
// inicial não positivo): um dashboard precisa renderizar algo mesmo com dados
// esparsos.
type TrendSeries struct {
	Name   string        `json:"name"`
	Points []*TrendPoint `json:"points"`
	CAGR   float64       `json:"cagr"`
}

// TrendResult é o resultado da derivação de tendências históricas
type TrendResult struct {
	Series      []*TrendSeries `json:"series"`
	OverallCAGR float64        `json:"overall_cagr"`

	// InflationRate é a taxa de referência plana fornecida pelo chamador,
	// como fração (0.03 = 3% a.a.); nunca é calculada internamente.
	// DifferenceFromInflation = OverallCAGR − InflationRate, também fração.
	InflationRate           *float64     `json:"inflation_rate,omitempty"`
	InflationSeries         *TrendSeries `json:"inflation_series,omitempty"`
	DifferenceFromInflation *float64     `json:"difference_from_inflation,omitempty"`
}
