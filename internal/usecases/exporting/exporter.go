// Package exporting serializa o resultado composto de um relatório nos
// formatos de download suportados
package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/tealeg/xlsx/v2"
)

// Erros específicos para o contexto de exportação
var (
	ErrUnsupportedFormat = errors.New("formato de exportação não suportado")
	ErrEmptyPayload      = errors.New("relatório sem resultado composto para exportar")
)

// Export é o artefato pronto para download
type Export struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportReport serializa o payload composto do relatório no formato pedido.
// A tabela exportada é a mesma projetada no gráfico: um rótulo por linha e
// uma coluna por métrica.
func ExportReport(report *domain.CustomReport, payload *domain.ReportPayload, format domain.ExportFormat) (*Export, error) {
	if payload == nil || payload.ChartData == nil {
		return nil, ErrEmptyPayload
	}

	headers, rows := tabulate(payload.ChartData)

	switch format {
	case domain.ExportFormatCSV:
		return exportCSV(report, headers, rows)
	case domain.ExportFormatExcel:
		return exportExcel(report, headers, rows)
	case domain.ExportFormatPDF:
		return exportPDF(report, headers, rows)
	}

	return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", format)
}

// tabulate projeta o gráfico em linhas: rótulo seguido do valor de cada série
func tabulate(chart *domain.ChartData) ([]string, [][]string) {
	headers := make([]string, 0, len(chart.Series)+1)
	headers = append(headers, "label")
	for _, series := range chart.Series {
		headers = append(headers, series.Name)
	}

	rows := make([][]string, 0, len(chart.Labels))
	for i, label := range chart.Labels {
		row := make([]string, 0, len(chart.Series)+1)
		row = append(row, label)
		for _, series := range chart.Series {
			value := 0.0
			if i < len(series.Values) {
				value = series.Values[i]
			}
			row = append(row, strconv.FormatFloat(value, 'f', 2, 64))
		}
		rows = append(rows, row)
	}

	return headers, rows
}

func exportCSV(report *domain.CustomReport, headers []string, rows [][]string) (*Export, error) {
	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)

	if err := writer.Write(headers); err != nil {
		return nil, errors.Wrap(err, "falha ao escrever cabeçalho CSV")
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, errors.Wrap(err, "falha ao escrever linha CSV")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "falha ao finalizar CSV")
	}

	return &Export{
		FileName:    fileName(report, "csv"),
		ContentType: "text/csv",
		Content:     buffer.Bytes(),
	}, nil
}

func exportExcel(report *domain.CustomReport, headers []string, rows [][]string) (*Export, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Report")
	if err != nil {
		return nil, errors.Wrap(err, "falha ao criar planilha")
	}

	headerRow := sheet.AddRow()
	for _, header := range headers {
		headerRow.AddCell().Value = header
	}

	for _, row := range rows {
		sheetRow := sheet.AddRow()
		for _, value := range row {
			sheetRow.AddCell().Value = value
		}
	}

	buffer := &bytes.Buffer{}
	if err := file.Write(buffer); err != nil {
		return nil, errors.Wrap(err, "falha ao gravar planilha")
	}

	return &Export{
		FileName:    fileName(report, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     buffer.Bytes(),
	}, nil
}

func exportPDF(report *domain.CustomReport, headers []string, rows [][]string) (*Export, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, report.Name, "", 1, "L", false, 0, "")

	columnWidth := 190.0 / float64(len(headers))

	pdf.SetFont("Helvetica", "B", 10)
	for _, header := range headers {
		pdf.CellFormat(columnWidth, 8, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for _, value := range row {
			pdf.CellFormat(columnWidth, 7, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buffer := &bytes.Buffer{}
	if err := pdf.Output(buffer); err != nil {
		return nil, errors.Wrap(err, "falha ao gravar PDF")
	}

	return &Export{
		FileName:    fileName(report, "pdf"),
		ContentType: "application/pdf",
		Content:     buffer.Bytes(),
	}, nil
}

func fileName(report *domain.CustomReport, extension string) string {
	name := report.ID
	if name == "" {
		name = "report"
	}
	return fmt.Sprintf("%s.%s", name, extension)
}
