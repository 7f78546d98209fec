package comparing

import (
	"testing"

	"github.com/lexrates/rate-insights-api/infrastructure/repository/mocks"
	"github.com/lexrates/rate-insights-api/internal/config"
	"github.com/lexrates/rate-insights-api/internal/currency"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatistics(t *testing.T) {
	t.Run("Distribuição vazia produz resumo zerado sem quartis", func(t *testing.T) {
		stats := Statistics(nil)

		assert.Equal(t, 0, stats.MemberCount)
		assert.Nil(t, stats.Percentile50)
	})

	t.Run("Um único membro não tem quartis", func(t *testing.T) {
		stats := Statistics([]float64{500})

		assert.Equal(t, 500.0, stats.Average)
		assert.Equal(t, 500.0, stats.Min)
		assert.Equal(t, 500.0, stats.Max)
		assert.Nil(t, stats.Percentile25)
		assert.Nil(t, stats.Percentile50)
		assert.Nil(t, stats.Percentile75)
	})

	t.Run("Quartis interpolados da distribuição ordenada", func(t *testing.T) {
		stats := Statistics([]float64{400, 100, 300, 200})

		assert.Equal(t, 250.0, stats.Average)
		assert.Equal(t, 100.0, stats.Min)
		assert.Equal(t, 400.0, stats.Max)
		require.NotNil(t, stats.Percentile50)
		assert.InDelta(t, 175.0, *stats.Percentile25, 1e-9)
		assert.InDelta(t, 250.0, *stats.Percentile50, 1e-9)
		assert.InDelta(t, 325.0, *stats.Percentile75, 1e-9)
	})
}

func TestPercentileRank(t *testing.T) {
	t.Run("Menos de 2 pares retorna nil, nunca zero", func(t *testing.T) {
		assert.Nil(t, PercentileRank(nil, 100))
		assert.Nil(t, PercentileRank([]float64{100}, 100))
	})

	t.Run("Fração dos pares menores ou iguais ao valor", func(t *testing.T) {
		rank := PercentileRank([]float64{100, 200, 300, 400}, 250)

		require.NotNil(t, rank)
		assert.InDelta(t, 50.0, *rank, 1e-9)
	})

	t.Run("Valor abaixo de todos os pares fica em zero", func(t *testing.T) {
		rank := PercentileRank([]float64{100, 200}, 50)

		require.NotNil(t, rank)
		assert.Equal(t, 0.0, *rank)
	})

	t.Run("Valor acima de todos os pares fica em 100", func(t *testing.T) {
		rank := PercentileRank([]float64{100, 200}, 500)

		require.NotNil(t, rank)
		assert.Equal(t, 100.0, *rank)
	})
}

func TestComputeComparison(t *testing.T) {
	t.Run("Visão desconhecida é rejeitada", func(t *testing.T) {
		_, err := ComputeComparison(domain.PeerViewType("MEDIAN"), "PG1", 100, nil)

		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Itens ordenados pela média decrescente e posição contra os pares", func(t *testing.T) {
		items := []*domain.PeerComparisonItem{
			{EntityID: "E1", Average: 300},
			{EntityID: "E2", Average: 500},
			{EntityID: "E3", Average: 400},
		}

		result, err := ComputeComparison(domain.PeerViewPercentile, "PG1", 450, items)

		require.NoError(t, err)
		assert.Equal(t, "E2", result.Items[0].EntityID)
		assert.Equal(t, "E3", result.Items[1].EntityID)
		assert.Equal(t, "E1", result.Items[2].EntityID)
		assert.Equal(t, 450.0, result.OwnAverage)
		require.NotNil(t, result.PercentileRank)
		assert.InDelta(t, 66.666666, *result.PercentileRank, 1e-4)
	})
}

func TestService_ComparePeers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	cfg.Analytics.DefaultCurrency = "USD"

	mockRecordRepo := mocks.NewMockRateRecordRepository(ctrl)
	mockPeerRepo := mocks.NewMockPeerGroupRepository(ctrl)
	mockCurrencyRepo := mocks.NewMockCurrencyRateRepository(ctrl)

	service := NewService(cfg, mockRecordRepo, mockPeerRepo, currency.NewConverter(mockCurrencyRepo))

	t.Run("Grupo de pares ausente é rejeitado", func(t *testing.T) {
		_, err := service.ComparePeers(&domain.FilterParameters{}, domain.PeerViewAverage)

		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Médias ponderadas por entidade e tendência ano a ano", func(t *testing.T) {
		peerGroupID := "PG1"
		filters := &domain.FilterParameters{PeerGroupID: &peerGroupID}

		mockRecordRepo.EXPECT().
			ListByFilter(gomock.Any()).
			Return([]*domain.RateRecord{
				{Currency: "USD", ProposedAmount: 400, EffectiveYear: 2025},
				{Currency: "USD", ProposedAmount: 600, EffectiveYear: 2026},
			}, nil)

		mockPeerRepo.EXPECT().
			GetBenchmarks(peerGroupID).
			Return([]*domain.PeerBenchmark{
				{GroupID: peerGroupID, EntityID: "E1", EffectiveYear: 2025, AverageAmount: 300, RecordCount: 1},
				{GroupID: peerGroupID, EntityID: "E1", EffectiveYear: 2026, AverageAmount: 500, RecordCount: 3},
				{GroupID: peerGroupID, EntityID: "E2", EffectiveYear: 2026, AverageAmount: 700, RecordCount: 2},
			}, nil)

		result, err := service.ComparePeers(filters, domain.PeerViewAverage)

		require.NoError(t, err)
		assert.Equal(t, 500.0, result.OwnAverage)
		require.Len(t, result.Items, 2)

		// E1: (300*1 + 500*3) / 4 = 450; E2: 700
		assert.Equal(t, "E2", result.Items[0].EntityID)
		assert.Equal(t, 700.0, result.Items[0].Average)
		assert.Equal(t, "E1", result.Items[1].EntityID)
		assert.Equal(t, 450.0, result.Items[1].Average)

		require.Len(t, result.Trend, 2)
		assert.Equal(t, 2025, result.Trend[0].Year)
		assert.Equal(t, 400.0, result.Trend[0].OwnValue)
		assert.Equal(t, 300.0, result.Trend[0].PeerValue)
		assert.Equal(t, 2026, result.Trend[1].Year)
		assert.Equal(t, 600.0, result.Trend[1].OwnValue)
		// Pares em 2026: (500*3 + 700*2) / 5 = 580
		assert.Equal(t, 580.0, result.Trend[1].PeerValue)
	})
}
