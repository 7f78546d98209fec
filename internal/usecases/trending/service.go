package trending

import (
	"sort"

	"github.com/lexrates/rate-insights-api/infrastructure/repository"
	"github.com/lexrates/rate-insights-api/internal/config"
	"github.com/lexrates/rate-insights-api/internal/currency"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/lexrates/rate-insights-api/internal/usecases/filtering"
	"github.com/pkg/errors"
)

// Trender calcula tendências históricas de tarifas a partir dos registros
// persistidos
type Trender interface {
	CalculateTrends(filters *domain.FilterParameters, dimension *domain.Dimension, inflationRate *float64) (*domain.TrendResult, error)
}

type Service struct {
	cfg                  *config.Config
	rateRecordRepository repository.RateRecordRepository
	converter            *currency.Converter
}

func NewService(
	cfg *config.Config,
	rateRecordRepository repository.RateRecordRepository,
	converter *currency.Converter,
) Trender {
	return &Service{
		cfg:                  cfg,
		rateRecordRepository: rateRecordRepository,
		converter:            converter,
	}
}

// CalculateTrends monta as séries anuais de tarifa média proposta e deriva as
// tendências. Sem dimensão, uma única série geral é produzida; com dimensão,
// uma série por valor da dimensão.
func (s *Service) CalculateTrends(filters *domain.FilterParameters, dimension *domain.Dimension, inflationRate *float64) (*domain.TrendResult, error) {
	normalized, err := filtering.Normalize(filters, s.cfg.Analytics.DefaultCurrency)
	if err != nil {
		return nil, err
	}

	if dimension != nil && !dimension.Valid() {
		return nil, domain.NewValidationError("dimension", "dimensão de agrupamento desconhecida: "+string(*dimension))
	}

	records, err := s.rateRecordRepository.ListByFilter(normalized)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao buscar registros de tarifas")
	}

	records, err = s.converter.ConvertRecords(records, normalized.Currency)
	if err != nil {
		return nil, err
	}

	return ComputeTrend(buildSeries(records, dimension), inflationRate)
}

// buildSeries converte os registros em séries (ano, tarifa média proposta)
func buildSeries(records []*domain.RateRecord, dimension *domain.Dimension) []*SeriesInput {
	type yearly struct {
		sum   float64
		count int
	}

	order := make([]string, 0)
	names := make(map[string]string)
	byKey := make(map[string]map[int]*yearly)

	for _, record := range records {
		key, label := "overall", "overall"
		if dimension != nil {
			key, label = record.DimensionKey(*dimension)
			if label == "" {
				label = key
			}
		}

		years, ok := byKey[key]
		if !ok {
			years = make(map[int]*yearly)
			byKey[key] = years
			names[key] = label
			order = append(order, key)
		}

		entry, ok := years[record.EffectiveYear]
		if !ok {
			entry = &yearly{}
			years[record.EffectiveYear] = entry
		}
		entry.sum += record.ProposedAmount
		entry.count++
	}

	inputs := make([]*SeriesInput, 0, len(order))
	for _, key := range order {
		years := byKey[key]

		sortedYears := make([]int, 0, len(years))
		for year := range years {
			sortedYears = append(sortedYears, year)
		}
		sort.Ints(sortedYears)

		points := make([]*domain.SeriesPoint, 0, len(sortedYears))
		for _, year := range sortedYears {
			entry := years[year]
			points = append(points, &domain.SeriesPoint{
				Year:  year,
				Value: entry.sum / float64(entry.count),
			})
		}

		inputs = append(inputs, &SeriesInput{Name: names[key], Points: points})
	}

	return inputs
}
