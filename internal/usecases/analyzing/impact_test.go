package analyzing

import (
	"testing"
	"time"

	"github.com/lexrates/rate-insights-api/infrastructure/repository/mocks"
	"github.com/lexrates/rate-insights-api/internal/config"
	"github.com/lexrates/rate-insights-api/internal/currency"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func group(key string, current, proposed, adjustment float64, count int) *domain.AggregationGroup {
	g := &domain.AggregationGroup{
		Dimension:     domain.DimensionFirm,
		Key:           key,
		Label:         key,
		Currency:      "USD",
		CurrentTotal:  current,
		ProposedTotal: proposed,
		Adjustment:    adjustment,
	}
	g.Records = make([]*domain.RateRecord, count)
	return g
}

func TestComputeImpact(t *testing.T) {
	t.Run("Visão desconhecida é rejeitada", func(t *testing.T) {
		_, err := ComputeImpact(nil, AnalysisOptions{ViewType: domain.ImpactViewType("YEARLY")})

		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Sem grupos produz resultado zerado com itens vazios", func(t *testing.T) {
		result, err := ComputeImpact(nil, AnalysisOptions{ViewType: domain.ImpactViewTotal})

		require.NoError(t, err)
		assert.NotNil(t, result.Items)
		assert.Empty(t, result.Items)
		assert.Equal(t, 0.0, result.TotalImpact)
		assert.Nil(t, result.HighestImpact)
		assert.Nil(t, result.LowestImpact)
	})

	t.Run("Totais, percentual e extremos com sinal", func(t *testing.T) {
		groups := []*domain.AggregationGroup{
			group("F1", 1000, 1100, 0, 2), // impacto +100
			group("F2", 2000, 1850, 0, 3), // impacto -150
			group("F3", 500, 550, 0, 1),   // impacto +50
		}

		result, err := ComputeImpact(groups, AnalysisOptions{ViewType: domain.ImpactViewTotal})

		require.NoError(t, err)
		assert.Equal(t, 3500.0, result.TotalCurrent)
		assert.Equal(t, 3500.0, result.TotalProposed)
		assert.Equal(t, 0.0, result.TotalImpact)
		assert.Equal(t, 0.0, result.PercentageChange)

		require.NotNil(t, result.HighestImpact)
		require.NotNil(t, result.LowestImpact)
		assert.Equal(t, "F1", result.HighestImpact.Key)
		assert.Equal(t, "F2", result.LowestImpact.Key)
	})

	t.Run("Empate nos extremos preserva o primeiro grupo", func(t *testing.T) {
		groups := []*domain.AggregationGroup{
			group("F1", 100, 150, 0, 1),
			group("F2", 200, 250, 0, 1),
		}

		result, err := ComputeImpact(groups, AnalysisOptions{ViewType: domain.ImpactViewTotal})

		require.NoError(t, err)
		assert.Equal(t, "F1", result.HighestImpact.Key)
		assert.Equal(t, "F1", result.LowestImpact.Key)
	})

	t.Run("Total atual zero produz percentual zero", func(t *testing.T) {
		groups := []*domain.AggregationGroup{
			group("F1", 0, 500, 0, 1),
		}

		result, err := ComputeImpact(groups, AnalysisOptions{ViewType: domain.ImpactViewPercentage})

		require.NoError(t, err)
		assert.Equal(t, 0.0, result.PercentageChange)
		assert.Equal(t, 0.0, result.Items[0].PercentageChange)
	})

	t.Run("Impacto líquido abate os ajustes de fee arrangement", func(t *testing.T) {
		groups := []*domain.AggregationGroup{
			group("F1", 1000, 1200, 50, 2),
		}

		result, err := ComputeImpact(groups, AnalysisOptions{ViewType: domain.ImpactViewNetImpact})

		require.NoError(t, err)
		assert.Equal(t, 200.0, result.TotalImpact)
		assert.Equal(t, 150.0, result.TotalNetImpact)
	})

	t.Run("Projeção plurianual compõe a variação percentual", func(t *testing.T) {
		groups := []*domain.AggregationGroup{
			group("F1", 1000, 1100, 0, 1), // +10%
		}

		result, err := ComputeImpact(groups, AnalysisOptions{
			ViewType:        domain.ImpactViewMultiYear,
			BaseYear:        2026,
			ProjectionYears: 3,
		})

		require.NoError(t, err)
		require.Len(t, result.Projection, 3)
		assert.Equal(t, 2027, result.Projection[0].Year)
		assert.InDelta(t, 1210.0, result.Projection[0].ProjectedTotal, 1e-9)
		assert.InDelta(t, 1331.0, result.Projection[1].ProjectedTotal, 1e-9)
		assert.InDelta(t, 1464.1, result.Projection[2].ProjectedTotal, 1e-9)
	})

	t.Run("Visão que não é plurianual não projeta", func(t *testing.T) {
		groups := []*domain.AggregationGroup{
			group("F1", 1000, 1100, 0, 1),
		}

		result, err := ComputeImpact(groups, AnalysisOptions{
			ViewType:        domain.ImpactViewTotal,
			ProjectionYears: 3,
		})

		require.NoError(t, err)
		assert.Nil(t, result.Projection)
	})
}

type stubComparer struct {
	result *domain.PeerComparisonResult
	called bool
}

func (s *stubComparer) ComparePeers(_ *domain.FilterParameters, _ domain.PeerViewType) (*domain.PeerComparisonResult, error) {
	s.called = true
	return s.result, nil
}

func TestService_AnalyzeImpact(t *testing.T) {
	nowFunc = func() time.Time {
		return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	defer func() { nowFunc = time.Now }()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	cfg.Analytics.DefaultCurrency = "USD"
	cfg.Analytics.ProjectionYears = 3

	mockRecordRepo := mocks.NewMockRateRecordRepository(ctrl)
	mockCurrencyRepo := mocks.NewMockCurrencyRateRepository(ctrl)

	t.Run("Pipeline completo com conversão de moeda", func(t *testing.T) {
		comparer := &stubComparer{}
		service := NewService(cfg, mockRecordRepo, currency.NewConverter(mockCurrencyRepo), comparer)

		mockRecordRepo.EXPECT().
			ListByFilter(gomock.Any()).
			Return([]*domain.RateRecord{
				{FirmID: "F1", FirmName: "Firma A", Currency: "USD", CurrentAmount: 100, ProposedAmount: 110},
				{FirmID: "F2", FirmName: "Firma B", Currency: "EUR", CurrentAmount: 100, ProposedAmount: 120},
			}, nil)

		// 1 USD = 0.5 EUR: os valores em EUR dobram ao converter
		mockCurrencyRepo.EXPECT().
			GetRateTable("USD").
			Return(map[string]float64{"USD": 1, "EUR": 0.5}, nil)

		result, err := service.AnalyzeImpact(&ImpactRequest{
			Filters:   nil,
			Dimension: domain.DimensionFirm,
			ViewType:  domain.ImpactViewTotal,
		})

		require.NoError(t, err)
		assert.Equal(t, "USD", result.Currency)
		assert.Equal(t, 300.0, result.TotalCurrent)
		assert.Equal(t, 350.0, result.TotalProposed)
		assert.Equal(t, 50.0, result.TotalImpact)
		assert.False(t, comparer.called)
	})

	t.Run("Ano base da requisição ancora a projeção plurianual", func(t *testing.T) {
		comparer := &stubComparer{}
		service := NewService(cfg, mockRecordRepo, currency.NewConverter(mockCurrencyRepo), comparer)

		mockRecordRepo.EXPECT().
			ListByFilter(gomock.Any()).
			Return([]*domain.RateRecord{
				{FirmID: "F1", Currency: "USD", CurrentAmount: 1000, ProposedAmount: 1100},
			}, nil)

		result, err := service.AnalyzeImpact(&ImpactRequest{
			Dimension:       domain.DimensionFirm,
			ViewType:        domain.ImpactViewMultiYear,
			BaseYear:        2023,
			ProjectionYears: 2,
		})

		require.NoError(t, err)
		require.Len(t, result.Projection, 2)
		assert.Equal(t, 2024, result.Projection[0].Year)
		assert.Equal(t, 2025, result.Projection[1].Year)
	})

	t.Run("Sem ano base a projeção parte do ano corrente", func(t *testing.T) {
		comparer := &stubComparer{}
		service := NewService(cfg, mockRecordRepo, currency.NewConverter(mockCurrencyRepo), comparer)

		mockRecordRepo.EXPECT().
			ListByFilter(gomock.Any()).
			Return([]*domain.RateRecord{
				{FirmID: "F1", Currency: "USD", CurrentAmount: 1000, ProposedAmount: 1100},
			}, nil)

		result, err := service.AnalyzeImpact(&ImpactRequest{
			Dimension:       domain.DimensionFirm,
			ViewType:        domain.ImpactViewMultiYear,
			ProjectionYears: 1,
		})

		require.NoError(t, err)
		require.Len(t, result.Projection, 1)
		assert.Equal(t, 2027, result.Projection[0].Year)
	})

	t.Run("Comparação com pares acionada quando solicitada", func(t *testing.T) {
		comparer := &stubComparer{result: &domain.PeerComparisonResult{PeerGroupID: "PG1"}}
		service := NewService(cfg, mockRecordRepo, currency.NewConverter(mockCurrencyRepo), comparer)

		mockRecordRepo.EXPECT().
			ListByFilter(gomock.Any()).
			Return([]*domain.RateRecord{
				{FirmID: "F1", Currency: "USD", CurrentAmount: 100, ProposedAmount: 110},
			}, nil)

		peerGroupID := "PG1"
		result, err := service.AnalyzeImpact(&ImpactRequest{
			Filters:      &domain.FilterParameters{PeerGroupID: &peerGroupID},
			Dimension:    domain.DimensionFirm,
			ViewType:     domain.ImpactViewTotal,
			IncludePeers: true,
		})

		require.NoError(t, err)
		assert.True(t, comparer.called)
		require.NotNil(t, result.PeerComparison)
		assert.Equal(t, "PG1", result.PeerComparison.PeerGroupID)
	})
}
