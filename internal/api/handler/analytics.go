package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/lexrates/rate-insights-api/internal/usecases/analyzing"
	"github.com/lexrates/rate-insights-api/internal/usecases/comparing"
	"github.com/lexrates/rate-insights-api/internal/usecases/trending"
	"github.com/lexrates/rate-insights-api/pkg/apiErrors"
	"github.com/lexrates/rate-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type impactRequest struct {
	Filters         *domain.FilterParameters `json:"filters"`
	Dimension       domain.Dimension         `json:"dimension"`
	ViewType        domain.ImpactViewType    `json:"view_type"`
	IncludePeers    bool                     `json:"include_peers"`
	PeerViewType    domain.PeerViewType      `json:"peer_view_type"`
	BaseYear        int                      `json:"base_year"`
	ProjectionYears int                      `json:"projection_years"`
}

type peerComparisonRequest struct {
	Filters  *domain.FilterParameters `json:"filters"`
	ViewType domain.PeerViewType      `json:"view_type"`
}

type trendsRequest struct {
	Filters       *domain.FilterParameters `json:"filters"`
	Dimension     *domain.Dimension        `json:"dimension"`
	InflationRate *float64                 `json:"inflation_rate"`
}

// AnalyzeImpact calcula a análise de impacto financeiro para os filtros e a
// dimensão informados
func AnalyzeImpact(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("analytics: computing impact analysis")

		req := &impactRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		result, err := service.AnalyzeImpact(&analyzing.ImpactRequest{
			Filters:         req.Filters,
			Dimension:       req.Dimension,
			ViewType:        req.ViewType,
			IncludePeers:    req.IncludePeers,
			PeerViewType:    req.PeerViewType,
			BaseYear:        req.BaseYear,
			ProjectionYears: req.ProjectionYears,
		})
		if err != nil {
			writeAnalyticsError(w, logger, err, "Erro ao calcular análise de impacto")
			return
		}

		writeJSON(w, logger, result)
	}
}

// ComparePeers posiciona a organização chamadora dentro do seu grupo de pares
func ComparePeers(service comparing.Comparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("analytics: computing peer comparison")

		req := &peerComparisonRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		result, err := service.ComparePeers(req.Filters, req.ViewType)
		if err != nil {
			writeAnalyticsError(w, logger, err, "Erro ao calcular comparação com pares")
			return
		}

		writeJSON(w, logger, result)
	}
}

// CalculateTrends deriva as séries de tendência histórica de tarifas
func CalculateTrends(service trending.Trender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("analytics: computing rate trends")

		req := &trendsRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		result, err := service.CalculateTrends(req.Filters, req.Dimension, req.InflationRate)
		if err != nil {
			writeAnalyticsError(w, logger, err, "Erro ao calcular tendências")
			return
		}

		writeJSON(w, logger, result)
	}
}

func writeAnalyticsError(w http.ResponseWriter, logger log.Logger, err error, message string) {
	if domain.IsValidationError(err) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
		return
	}

	logger.WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrUpstreamFetch, message, nil)
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("failed to encode response")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}
