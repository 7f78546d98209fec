package comparing

import (
	"sort"

	"github.com/lexrates/rate-insights-api/infrastructure/repository"
	"github.com/lexrates/rate-insights-api/internal/config"
	"github.com/lexrates/rate-insights-api/internal/currency"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/lexrates/rate-insights-api/internal/usecases/filtering"
	"github.com/pkg/errors"
)

// Comparer compara as tarifas da organização chamadora com as do seu grupo de
// pares, usando os benchmarks pré-calculados pelo agendador de sincronização
type Comparer interface {
	ComparePeers(filters *domain.FilterParameters, viewType domain.PeerViewType) (*domain.PeerComparisonResult, error)
}

type Service struct {
	cfg                  *config.Config
	rateRecordRepository repository.RateRecordRepository
	peerGroupRepository  repository.PeerGroupRepository
	converter            *currency.Converter
}

func NewService(
	cfg *config.Config,
	rateRecordRepository repository.RateRecordRepository,
	peerGroupRepository repository.PeerGroupRepository,
	converter *currency.Converter,
) Comparer {
	return &Service{
		cfg:                  cfg,
		rateRecordRepository: rateRecordRepository,
		peerGroupRepository:  peerGroupRepository,
		converter:            converter,
	}
}

func (s *Service) ComparePeers(filters *domain.FilterParameters, viewType domain.PeerViewType) (*domain.PeerComparisonResult, error) {
	normalized, err := filtering.Normalize(filters, s.cfg.Analytics.DefaultCurrency)
	if err != nil {
		return nil, err
	}

	if normalized.PeerGroupID == nil {
		return nil, domain.NewValidationError("peer_group_id", "a comparação exige um grupo de pares")
	}
	peerGroupID := *normalized.PeerGroupID

	records, err := s.rateRecordRepository.ListByFilter(normalized)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao buscar registros de tarifas")
	}

	records, err = s.converter.ConvertRecords(records, normalized.Currency)
	if err != nil {
		return nil, err
	}

	benchmarks, err := s.peerGroupRepository.GetBenchmarks(peerGroupID)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao buscar benchmarks do grupo de pares")
	}

	result, err := ComputeComparison(viewType, peerGroupID, ownAverage(records), entityAverages(benchmarks))
	if err != nil {
		return nil, err
	}

	result.Trend = buildTrend(records, benchmarks)

	return result, nil
}

// ownAverage retorna a média das tarifas propostas da organização chamadora
func ownAverage(records []*domain.RateRecord) float64 {
	if len(records) == 0 {
		return 0
	}

	sum := 0.0
	for _, record := range records {
		sum += record.ProposedAmount
	}

	return sum / float64(len(records))
}

// entityAverages reduz os benchmarks anuais a uma média por entidade,
// ponderada pelo número de registros de cada ano
func entityAverages(benchmarks []*domain.PeerBenchmark) []*domain.PeerComparisonItem {
	type accumulator struct {
		name  string
		sum   float64
		count int
	}

	order := make([]string, 0)
	index := make(map[string]*accumulator)

	for _, benchmark := range benchmarks {
		acc, ok := index[benchmark.EntityID]
		if !ok {
			acc = &accumulator{name: benchmark.EntityName}
			index[benchmark.EntityID] = acc
			order = append(order, benchmark.EntityID)
		}
		acc.sum += benchmark.AverageAmount * float64(benchmark.RecordCount)
		acc.count += benchmark.RecordCount
	}

	items := make([]*domain.PeerComparisonItem, 0, len(order))
	for _, entityID := range order {
		acc := index[entityID]
		if acc.count == 0 {
			continue
		}
		items = append(items, &domain.PeerComparisonItem{
			EntityID:   entityID,
			EntityName: acc.name,
			Average:    acc.sum / float64(acc.count),
		})
	}

	return items
}

// buildTrend pareia a média anual da organização chamadora com a média anual
// do grupo de pares, ano a ano
func buildTrend(records []*domain.RateRecord, benchmarks []*domain.PeerBenchmark) []*domain.PeerTrendPair {
	type yearly struct {
		sum   float64
		count int
	}

	own := make(map[int]*yearly)
	for _, record := range records {
		entry, ok := own[record.EffectiveYear]
		if !ok {
			entry = &yearly{}
			own[record.EffectiveYear] = entry
		}
		entry.sum += record.ProposedAmount
		entry.count++
	}

	peers := make(map[int]*yearly)
	for _, benchmark := range benchmarks {
		entry, ok := peers[benchmark.EffectiveYear]
		if !ok {
			entry = &yearly{}
			peers[benchmark.EffectiveYear] = entry
		}
		entry.sum += benchmark.AverageAmount * float64(benchmark.RecordCount)
		entry.count += benchmark.RecordCount
	}

	years := make([]int, 0, len(own)+len(peers))
	seen := make(map[int]bool)
	for year := range own {
		if !seen[year] {
			seen[year] = true
			years = append(years, year)
		}
	}
	for year := range peers {
		if !seen[year] {
			seen[year] = true
			years = append(years, year)
		}
	}
	sort.Ints(years)

	trend := make([]*domain.PeerTrendPair, 0, len(years))
	for _, year := range years {
		pair := &domain.PeerTrendPair{Year: year}
		if entry, ok := own[year]; ok && entry.count > 0 {
			pair.OwnValue = entry.sum / float64(entry.count)
		}
		if entry, ok := peers[year]; ok && entry.count > 0 {
			pair.PeerValue = entry.sum / float64(entry.count)
		}
		trend = append(trend, pair)
	}

	return trend
}
