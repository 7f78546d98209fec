// Package trending deriva séries de tendência ano a ano e taxas de
// crescimento compostas a partir de séries históricas de tarifas
package trending

import (
	"fmt"
	"math"
	"sort"

	"github.com/lexrates/rate-insights-api/internal/domain"
)

// SeriesInput é uma série histórica nomeada a ser derivada
type SeriesInput struct {
	Name   string
	Points []*domain.SeriesPoint
}

// ComputeCAGR calcula a taxa de crescimento anual composta entre dois valores
// separados por um intervalo de anos. Entradas degeneradas (intervalo nulo ou
// valor inicial não positivo) retornam zero em vez de erro.
func ComputeCAGR(startValue, endValue float64, years int) float64 {
	if years <= 0 || startValue <= 0 {
		return 0
	}

	return math.Pow(endValue/startValue, 1/float64(years)) - 1
}

// ComputeSeries ordena os pontos cronologicamente e deriva a variação
// percentual ano a ano e o CAGR da série. Anos duplicados são um erro do
// chamador: não há regra de desempate defensável para dois valores no mesmo
// ano.
func ComputeSeries(name string, points []*domain.SeriesPoint) (*domain.TrendSeries, error) {
	ordered := make([]*domain.SeriesPoint, len(points))
	copy(ordered, points)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Year < ordered[j].Year
	})

	seen := make(map[int]bool, len(ordered))
	derived := make([]*domain.TrendPoint, 0, len(ordered))
	for i, point := range ordered {
		if seen[point.Year] {
			return nil, domain.NewValidationError("points", fmt.Sprintf("ano duplicado na série: %d", point.Year))
		}
		seen[point.Year] = true

		trendPoint := &domain.TrendPoint{Year: point.Year, Value: point.Value}
		if i > 0 {
			previous := ordered[i-1].Value
			if previous != 0 {
				trendPoint.PercentChange = (point.Value - previous) / previous * 100
			}
		}
		derived = append(derived, trendPoint)
	}

	series := &domain.TrendSeries{Name: name, Points: derived}
	if len(derived) >= 2 {
		first := derived[0]
		last := derived[len(derived)-1]
		series.CAGR = ComputeCAGR(first.Value, last.Value, last.Year-first.Year)
	}

	return series, nil
}

// ComputeTrend deriva todas as séries informadas e o CAGR geral, calculado
// sobre a soma anual de todas as séries. Quando uma taxa de inflação de
// referência é fornecida, uma série composta é gerada a partir do primeiro ano
// para comparação visual, e a diferença entre o CAGR geral e a taxa é
// reportada.
func ComputeTrend(inputs []*SeriesInput, inflationRate *float64) (*domain.TrendResult, error) {
	result := &domain.TrendResult{
		Series: make([]*domain.TrendSeries, 0, len(inputs)),
	}

	yearTotals := make(map[int]float64)
	for _, input := range inputs {
		series, err := ComputeSeries(input.Name, input.Points)
		if err != nil {
			return nil, err
		}
		result.Series = append(result.Series, series)

		for _, point := range series.Points {
			yearTotals[point.Year] += point.Value
		}
	}

	overall := make([]*domain.SeriesPoint, 0, len(yearTotals))
	for year, total := range yearTotals {
		overall = append(overall, &domain.SeriesPoint{Year: year, Value: total})
	}
	overallSeries, err := ComputeSeries("overall", overall)
	if err != nil {
		return nil, err
	}
	result.OverallCAGR = overallSeries.CAGR

	if inflationRate != nil {
		result.InflationRate = inflationRate
		result.InflationSeries = inflationReference(overallSeries.Points, *inflationRate)

		difference := result.OverallCAGR - *inflationRate
		result.DifferenceFromInflation = &difference
	}

	return result, nil
}

// inflationReference gera a série composta que o valor inicial teria seguido
// caso crescesse exatamente na taxa de inflação informada
func inflationReference(points []*domain.TrendPoint, rate float64) *domain.TrendSeries {
	if len(points) == 0 {
		return &domain.TrendSeries{Name: "inflation", Points: []*domain.TrendPoint{}, CAGR: rate}
	}

	start := points[0]
	derived := make([]*domain.TrendPoint, 0, len(points))
	for _, point := range points {
		value := start.Value * math.Pow(1+rate, float64(point.Year-start.Year))
		trendPoint := &domain.TrendPoint{Year: point.Year, Value: value}
		if point.Year > start.Year {
			trendPoint.PercentChange = rate * 100
		}
		derived = append(derived, trendPoint)
	}

	return &domain.TrendSeries{Name: "inflation", Points: derived, CAGR: rate}
}
