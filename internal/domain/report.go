package domain

import "time"

// VisualizationType define o tipo de gráfico escolhido para um relatório
type VisualizationType string

const (
	VisualizationBar   VisualizationType = "BAR"
	VisualizationLine  VisualizationType = "LINE"
	VisualizationPie   VisualizationType = "PIE"
	VisualizationTable VisualizationType = "TABLE"
)

// Valid verifica se o tipo de visualização é suportado
func (v VisualizationType) Valid() bool {
	switch v {
	case VisualizationBar, VisualizationLine, VisualizationPie, VisualizationTable:
		return true
	}
	return false
}

// ExportFormat define o formato de exportação de um relatório
type ExportFormat string

const (
	ExportFormatCSV   ExportFormat = "CSV"
	ExportFormatExcel ExportFormat = "EXCEL"
	ExportFormatPDF   ExportFormat = "PDF"
)

// Métricas selecionáveis em um relatório customizado
const (
	MetricCurrentTotal     = "current_total"
	MetricProposedTotal    = "proposed_total"
	MetricTotalImpact      = "total_impact"
	MetricNetImpact        = "net_impact"
	MetricPercentageChange = "percentage_change"
	MetricCAGR             = "cagr"
)

// ReportMetrics lista as métricas suportadas
var ReportMetrics = []string{
	MetricCurrentTotal,
	MetricProposedTotal,
	MetricTotalImpact,
	MetricNetImpact,
	MetricPercentageChange,
	MetricCAGR,
}

// ValidMetric verifica se o nome de métrica é suportado
func ValidMetric(name string) bool {
	for _, metric := range ReportMetrics {
		if metric == name {
			return true
		}
	}
	return false
}

// ReportSort é a configuração de ordenação dos itens do relatório
type ReportSort struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ChartSeries é uma série de valores alinhada aos rótulos do gráfico
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// ChartData é a especificação de gráfico derivada do resultado computado
type ChartData struct {
	Visualization VisualizationType `json:"visualization"`
	Labels        []string          `json:"labels"`
	Series        []*ChartSeries    `json:"series"`
}

// ReportData agrupa os resultados computados selecionados pelas métricas do
// relatório
type ReportData struct {
	Impact *ImpactResult `json:"impact,omitempty"`
	Trend  *TrendResult  `json:"trend,omitempty"`
}

// ReportPayload é o par {data, chartData} entregue à camada de apresentação
type ReportPayload struct {
	Data      *ReportData `json:"data"`
	ChartData *ChartData  `json:"chart_data"`
}

// CustomReport é um relatório customizado criado pelo usuário. Criado no
// primeiro save, alterado em edições e removido explicitamente; o
// compartilhamento adiciona leitores sem mudar o dono.
type CustomReport struct {
	ID            string            `json:"id"`
	OwnerID       string            `json:"owner_id"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	Filters       *FilterParameters `json:"filters"`
	Visualization VisualizationType `json:"visualization"`
	Dimensions    []Dimension       `json:"dimensions"`
	Metrics       []string          `json:"metrics"`
	Sort          *ReportSort       `json:"sort,omitempty"`
	SharedWith    []string          `json:"shared_with,omitempty"`
	LastResult    *ReportPayload    `json:"last_result,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
