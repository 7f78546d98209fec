package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/lexrates/rate-insights-api/internal/usecases/exporting"
	"github.com/lexrates/rate-insights-api/internal/usecases/reporting"
	"github.com/lexrates/rate-insights-api/pkg/apiErrors"
	"github.com/lexrates/rate-insights-api/pkg/log"
	"github.com/pkg/errors"
)

// requesterHeader identifica o usuário chamador. A autenticação fica no
// gateway; a API só precisa da identidade para controle de acesso aos
// relatórios.
const requesterHeader = "X-User-ID"

type shareRequest struct {
	GranteeIDs []string `json:"grantee_ids"`
}

func requesterID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(requesterHeader))
}

// CreateReport cria um relatório customizado para o usuário chamador
func CreateReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("reports: creating custom report")

		requester := requesterID(r)
		if requester == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identidade do solicitante ausente", nil)
			return
		}

		report := &domain.CustomReport{}
		if err := json.NewDecoder(r.Body).Decode(report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		report.OwnerID = requester

		created, err := service.CreateReport(report)
		if err != nil {
			writeReportError(w, logger, err, "Erro ao criar relatório")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
		}
	}
}

// UpdateReport edita um relatório existente do usuário chamador
func UpdateReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("report_id", id).Info("reports: updating custom report")

		report := &domain.CustomReport{}
		if err := json.NewDecoder(r.Body).Decode(report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		report.ID = id

		updated, err := service.UpdateReport(report, requesterID(r))
		if err != nil {
			writeReportError(w, logger, err, "Erro ao atualizar relatório")
			return
		}

		writeJSON(w, logger, updated)
	}
}

// DeleteReport remove um relatório do usuário chamador
func DeleteReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("report_id", id).Info("reports: deleting custom report")

		if err := service.DeleteReport(id, requesterID(r)); err != nil {
			writeReportError(w, logger, err, "Erro ao remover relatório")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetReport retorna um relatório acessível pelo usuário chamador
func GetReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("report_id", id).Info("reports: fetching custom report")

		report, err := service.GetReport(id, requesterID(r))
		if err != nil {
			writeReportError(w, logger, err, "Erro ao buscar relatório")
			return
		}

		writeJSON(w, logger, report)
	}
}

// ListReports lista os relatórios do usuário chamador, incluindo os
// compartilhados com ele
func ListReports(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("reports: listing custom reports")

		requester := requesterID(r)
		if requester == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identidade do solicitante ausente", nil)
			return
		}

		reports, err := service.ListReports(requester)
		if err != nil {
			writeReportError(w, logger, err, "Erro ao listar relatórios")
			return
		}

		writeJSON(w, logger, reports)
	}
}

// ShareReport adiciona leitores a um relatório do usuário chamador
func ShareReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("report_id", id).Info("reports: sharing custom report")

		req := &shareRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.ShareReport(id, requesterID(r), req.GranteeIDs); err != nil {
			writeReportError(w, logger, err, "Erro ao compartilhar relatório")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ComposeReport recalcula e retorna o resultado completo do relatório
func ComposeReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("report_id", id).Info("reports: composing custom report")

		payload, err := service.ComposeReport(id, requesterID(r))
		if err != nil {
			writeReportError(w, logger, err, "Erro ao compor relatório")
			return
		}

		writeJSON(w, logger, payload)
	}
}

// PreviewReport compõe o resultado de uma definição de relatório ainda não
// salva
func PreviewReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("reports: previewing custom report")

		requester := requesterID(r)
		if requester == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identidade do solicitante ausente", nil)
			return
		}

		report := &domain.CustomReport{}
		if err := json.NewDecoder(r.Body).Decode(report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		report.OwnerID = requester

		payload, err := service.PreviewReport(report)
		if err != nil {
			writeReportError(w, logger, err, "Erro ao pré-visualizar relatório")
			return
		}

		writeJSON(w, logger, payload)
	}
}

// ExportReport compõe o relatório e o entrega no formato de download pedido
// via query string (?format=CSV|EXCEL|PDF)
func ExportReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		format := domain.ExportFormat(strings.ToUpper(r.URL.Query().Get("format")))
		if format == "" {
			format = domain.ExportFormatCSV
		}

		logger.WithFields(log.Fields{
			"report_id":     id,
			"report_format": string(format),
		}).Info("reports: exporting custom report")

		requester := requesterID(r)

		report, err := service.GetReport(id, requester)
		if err != nil {
			writeReportError(w, logger, err, "Erro ao buscar relatório para exportação")
			return
		}

		payload, err := service.ComposeReport(id, requester)
		if err != nil {
			writeReportError(w, logger, err, "Erro ao compor relatório para exportação")
			return
		}

		export, err := exporting.ExportReport(report, payload, format)
		if err != nil {
			if errors.Is(err, exporting.ErrUnsupportedFormat) {
				apiErrors.WriteError(w, apiErrors.ErrUnsupportedExport, err.Error(), nil)
				return
			}
			logger.WithError(err).Error("reports: failed to export report")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar relatório", nil)
			return
		}

		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
		if _, err := w.Write(export.Content); err != nil {
			logger.WithError(err).Error("reports: failed to write exported file")
		}
	}
}

func writeReportError(w http.ResponseWriter, logger log.Logger, err error, message string) {
	switch {
	case domain.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, reporting.ErrReportNotFound):
		apiErrors.WriteError(w, apiErrors.ErrReportNotFound, err.Error(), nil)
	case errors.Is(err, reporting.ErrReportNotAccessible), errors.Is(err, reporting.ErrNotOwner):
		apiErrors.WriteError(w, apiErrors.ErrReportNotAccessible, err.Error(), nil)
	default:
		logger.WithError(err).Error(message)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
	}
}
