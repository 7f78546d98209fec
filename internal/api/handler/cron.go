package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lexrates/rate-insights-api/internal/scheduler"
	"github.com/lexrates/rate-insights-api/pkg/apiErrors"
	"github.com/lexrates/rate-insights-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypePeerBenchmarks = "peer-benchmarks"
	CronJobTypeReportRefresh  = "report-refresh"
	CronJobTypeAll            = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	PeerBenchmarkSyncService *scheduler.PeerBenchmarkSyncService
	ReportRefreshSyncService *scheduler.ReportRefreshSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logger.WithField("cron_type", cronType).Info("cron: manual trigger requested")

		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypePeerBenchmarks:
			if services.PeerBenchmarkSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de benchmarks não disponível", nil)
				return
			}
			services.PeerBenchmarkSyncService.TriggerManualSync()

		case CronJobTypeReportRefresh:
			if services.ReportRefreshSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recomputação de relatórios não disponível", nil)
				return
			}
			services.ReportRefreshSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.PeerBenchmarkSyncService != nil {
				services.PeerBenchmarkSyncService.TriggerManualSync()
			}
			if services.ReportRefreshSyncService != nil {
				services.ReportRefreshSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido: "+cronType, nil)
			return
		}

		writeJSON(w, logger, map[string]string{"status": "triggered", "type": cronType})
	}
}

// GetCronStatus retorna o status de todos os agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("cron: status requested")

		status := map[string]any{}
		if services.PeerBenchmarkSyncService != nil {
			status[CronJobTypePeerBenchmarks] = services.PeerBenchmarkSyncService.GetStatus()
		}
		if services.ReportRefreshSyncService != nil {
			status[CronJobTypeReportRefresh] = services.ReportRefreshSyncService.GetStatus()
		}

		writeJSON(w, logger, status)
	}
}
