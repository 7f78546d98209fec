package reporting

import (
	"sort"

	"github.com/lexrates/rate-insights-api/internal/domain"
)

// metricValue extrai de um item de impacto o valor da métrica pedida
func metricValue(item *domain.ImpactItem, metric string) float64 {
	switch metric {
	case domain.MetricCurrentTotal:
		return item.CurrentTotal
	case domain.MetricProposedTotal:
		return item.ProposedTotal
	case domain.MetricTotalImpact:
		return item.Impact
	case domain.MetricNetImpact:
		return item.NetImpact
	case domain.MetricPercentageChange:
		return item.PercentageChange
	}
	return 0
}

// sortItems reordena os itens conforme a configuração do relatório. Sem
// configuração, a ordem canônica do resultado (impacto absoluto decrescente)
// é mantida.
func sortItems(items []*domain.ImpactItem, reportSort *domain.ReportSort) []*domain.ImpactItem {
	ordered := make([]*domain.ImpactItem, len(items))
	copy(ordered, items)

	if reportSort == nil || reportSort.Field == "" {
		return ordered
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		left := metricValue(ordered[i], reportSort.Field)
		right := metricValue(ordered[j], reportSort.Field)
		if reportSort.Descending {
			return left > right
		}
		return left < right
	})

	return ordered
}

// buildChartData projeta o resultado computado na especificação de gráfico do
// relatório: um rótulo por item e uma série por métrica selecionada. A métrica
// de CAGR é escalar por série de tendência e não entra no gráfico de itens.
func buildChartData(report *domain.CustomReport, data *domain.ReportData) *domain.ChartData {
	chart := &domain.ChartData{
		Visualization: report.Visualization,
		Labels:        make([]string, 0),
		Series:        make([]*domain.ChartSeries, 0),
	}

	if data.Impact == nil {
		return chart
	}

	items := sortItems(data.Impact.Items, report.Sort)

	for _, item := range items {
		label := item.Label
		if label == "" {
			label = item.Key
		}
		chart.Labels = append(chart.Labels, label)
	}

	for _, metric := range report.Metrics {
		if metric == domain.MetricCAGR {
			continue
		}

		series := &domain.ChartSeries{
			Name:   metric,
			Values: make([]float64, 0, len(items)),
		}
		for _, item := range items {
			series.Values = append(series.Values, metricValue(item, metric))
		}
		chart.Series = append(chart.Series, series)
	}

	return chart
}
