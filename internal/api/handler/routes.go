package handler

import (
	"net/http"

	"github.com/lexrates/rate-insights-api/internal/api/handler/router"
	"github.com/lexrates/rate-insights-api/internal/usecases/analyzing"
	"github.com/lexrates/rate-insights-api/internal/usecases/comparing"
	"github.com/lexrates/rate-insights-api/internal/usecases/reporting"
	"github.com/lexrates/rate-insights-api/internal/usecases/trending"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Analytics(
	analyzer analyzing.Analyzer,
	comparer comparing.Comparer,
	trender trending.Trender,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/impact",
			Method:  http.MethodPost,
			Handler: AnalyzeImpact(analyzer),
		},
		{
			Path:    "/v1/analytics/peer-comparison",
			Method:  http.MethodPost,
			Handler: ComparePeers(comparer),
		},
		{
			Path:    "/v1/analytics/trends",
			Method:  http.MethodPost,
			Handler: CalculateTrends(trender),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodGet,
			Handler: ListReports(service),
		},
		{
			Path:    "/v1/reports",
			Method:  http.MethodPost,
			Handler: CreateReport(service),
		},
		{
			Path:    "/v1/reports/preview",
			Method:  http.MethodPost,
			Handler: PreviewReport(service),
		},
		{
			Path:    "/v1/reports/:id",
			Method:  http.MethodGet,
			Handler: GetReport(service),
		},
		{
			Path:    "/v1/reports/:id",
			Method:  http.MethodPut,
			Handler: UpdateReport(service),
		},
		{
			Path:    "/v1/reports/:id",
			Method:  http.MethodDelete,
			Handler: DeleteReport(service),
		},
		{
			Path:    "/v1/reports/:id/share",
			Method:  http.MethodPost,
			Handler: ShareReport(service),
		},
		{
			Path:    "/v1/reports/:id/compose",
			Method:  http.MethodPost,
			Handler: ComposeReport(service),
		},
		{
			Path:    "/v1/reports/:id/export",
			Method:  http.MethodGet,
			Handler: ExportReport(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
