package exporting

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload() *domain.ReportPayload {
	return &domain.ReportPayload{
		Data: &domain.ReportData{},
		ChartData: &domain.ChartData{
			Visualization: domain.VisualizationTable,
			Labels:        []string{"Firma A", "Firma B"},
			Series: []*domain.ChartSeries{
				{Name: domain.MetricTotalImpact, Values: []float64{50, -20}},
			},
		},
	}
}

func report() *domain.CustomReport {
	return &domain.CustomReport{
		ID:   "RPT001",
		Name: "Impacto por firma",
	}
}

func TestExportReport(t *testing.T) {
	t.Run("Payload vazio é rejeitado", func(t *testing.T) {
		_, err := ExportReport(report(), nil, domain.ExportFormatCSV)

		assert.ErrorIs(t, err, ErrEmptyPayload)
	})

	t.Run("Formato desconhecido é rejeitado", func(t *testing.T) {
		_, err := ExportReport(report(), payload(), domain.ExportFormat("XML"))

		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("CSV com cabeçalho e uma linha por rótulo", func(t *testing.T) {
		export, err := ExportReport(report(), payload(), domain.ExportFormatCSV)

		require.NoError(t, err)
		assert.Equal(t, "RPT001.csv", export.FileName)
		assert.Equal(t, "text/csv", export.ContentType)

		records, err := csv.NewReader(bytes.NewReader(export.Content)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, []string{"label", domain.MetricTotalImpact}, records[0])
		assert.Equal(t, []string{"Firma A", "50.00"}, records[1])
		assert.Equal(t, []string{"Firma B", "-20.00"}, records[2])
	})

	t.Run("Excel produz um arquivo xlsx não vazio", func(t *testing.T) {
		export, err := ExportReport(report(), payload(), domain.ExportFormatExcel)

		require.NoError(t, err)
		assert.Equal(t, "RPT001.xlsx", export.FileName)
		assert.NotEmpty(t, export.Content)
		// Arquivos xlsx são contêineres zip
		assert.Equal(t, []byte{'P', 'K'}, export.Content[:2])
	})

	t.Run("PDF produz um documento não vazio", func(t *testing.T) {
		export, err := ExportReport(report(), payload(), domain.ExportFormatPDF)

		require.NoError(t, err)
		assert.Equal(t, "RPT001.pdf", export.FileName)
		assert.Equal(t, "application/pdf", export.ContentType)
		assert.Equal(t, []byte("%PDF"), export.Content[:4])
	})
}
