package analyzing

import (
	"github.com/lexrates/rate-insights-api/infrastructure/repository"
	"github.com/lexrates/rate-insights-api/internal/config"
	"github.com/lexrates/rate-insights-api/internal/currency"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/lexrates/rate-insights-api/internal/usecases/aggregating"
	"github.com/lexrates/rate-insights-api/internal/usecases/comparing"
	"github.com/lexrates/rate-insights-api/internal/usecases/filtering"
	"github.com/pkg/errors"
)

// ImpactRequest descreve uma análise de impacto completa: filtros, dimensão
// de agrupamento, visão e comparação opcional com o grupo de pares
type ImpactRequest struct {
	Filters         *domain.FilterParameters
	Dimension       domain.Dimension
	ViewType        domain.ImpactViewType
	IncludePeers    bool
	PeerViewType    domain.PeerViewType
	BaseYear        int
	ProjectionYears int
}

// Analyzer executa o pipeline de análise de impacto: normalização, busca,
// conversão de moeda, agregação e cálculo
type Analyzer interface {
	AnalyzeImpact(request *ImpactRequest) (*domain.ImpactResult, error)
}

type Service struct {
	cfg                  *config.Config
	rateRecordRepository repository.RateRecordRepository
	converter            *currency.Converter
	comparer             comparing.Comparer
}

func NewService(
	cfg *config.Config,
	rateRecordRepository repository.RateRecordRepository,
	converter *currency.Converter,
	comparer comparing.Comparer,
) Analyzer {
	return &Service{
		cfg:                  cfg,
		rateRecordRepository: rateRecordRepository,
		converter:            converter,
		comparer:             comparer,
	}
}

func (s *Service) AnalyzeImpact(request *ImpactRequest) (*domain.ImpactResult, error) {
	if request == nil {
		return nil, domain.NewValidationError("request", "requisição de análise não pode ser vazia")
	}

	normalized, err := filtering.Normalize(request.Filters, s.cfg.Analytics.DefaultCurrency)
	if err != nil {
		return nil, err
	}

	records, err := s.rateRecordRepository.ListByFilter(normalized)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao buscar registros de tarifas")
	}

	records, err = s.converter.ConvertRecords(records, normalized.Currency)
	if err != nil {
		return nil, err
	}

	groups, err := aggregating.GroupByDimension(records, request.Dimension)
	if err != nil {
		return nil, err
	}

	projectionYears := request.ProjectionYears
	if projectionYears <= 0 {
		projectionYears = s.cfg.Analytics.ProjectionYears
	}

	result, err := ComputeImpact(groups, AnalysisOptions{
		ViewType:        request.ViewType,
		BaseYear:        request.BaseYear,
		ProjectionYears: projectionYears,
	})
	if err != nil {
		return nil, err
	}

	if result.Currency == "" {
		result.Currency = normalized.Currency
	}

	if request.IncludePeers && normalized.PeerGroupID != nil {
		peerViewType := request.PeerViewType
		if peerViewType == "" {
			peerViewType = domain.PeerViewAverage
		}

		comparison, err := s.comparer.ComparePeers(normalized, peerViewType)
		if err != nil {
			return nil, err
		}
		result.PeerComparison = comparison
	}

	return result, nil
}
