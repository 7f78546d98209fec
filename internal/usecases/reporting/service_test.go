package reporting

import (
	"testing"

	"github.com/lexrates/rate-insights-api/infrastructure/repository/mocks"
	"github.com/lexrates/rate-insights-api/internal/config"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/lexrates/rate-insights-api/internal/usecases/analyzing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubAnalyzer struct {
	result *domain.ImpactResult
	called int
}

func (s *stubAnalyzer) AnalyzeImpact(_ *analyzing.ImpactRequest) (*domain.ImpactResult, error) {
	s.called++
	return s.result, nil
}

type stubTrender struct {
	result *domain.TrendResult
	called int
}

func (s *stubTrender) CalculateTrends(_ *domain.FilterParameters, _ *domain.Dimension, _ *float64) (*domain.TrendResult, error) {
	s.called++
	return s.result, nil
}

func validReport() *domain.CustomReport {
	return &domain.CustomReport{
		OwnerID:       "U1",
		Name:          "Impacto por firma",
		Visualization: domain.VisualizationBar,
		Dimensions:    []domain.Dimension{domain.DimensionFirm},
		Metrics:       []string{domain.MetricTotalImpact},
	}
}

func impactResult() *domain.ImpactResult {
	return &domain.ImpactResult{
		ViewType: domain.ImpactViewTotal,
		Items: []*domain.ImpactItem{
			{Key: "F1", Label: "Firma A", CurrentTotal: 100, ProposedTotal: 150, Impact: 50},
			{Key: "F2", Label: "Firma B", CurrentTotal: 200, ProposedTotal: 180, Impact: -20},
		},
	}
}

func TestService_CreateReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomReportRepository(ctrl)
	service := NewService(&config.Config{}, mockRepo, &stubAnalyzer{}, &stubTrender{})

	t.Run("Relatório sem dimensões é rejeitado", func(t *testing.T) {
		report := validReport()
		report.Dimensions = nil

		_, err := service.CreateReport(report)

		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Relatório sem métricas é rejeitado", func(t *testing.T) {
		report := validReport()
		report.Metrics = nil

		_, err := service.CreateReport(report)

		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Métrica desconhecida é rejeitada", func(t *testing.T) {
		report := validReport()
		report.Metrics = []string{"median_rate"}

		_, err := service.CreateReport(report)

		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Identificador gerado quando ausente", func(t *testing.T) {
		report := validReport()

		mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

		created, err := service.CreateReport(report)

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})
}

func TestService_UpdateReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomReportRepository(ctrl)
	service := NewService(&config.Config{}, mockRepo, &stubAnalyzer{}, &stubTrender{})

	t.Run("Relatório inexistente retorna erro de não encontrado", func(t *testing.T) {
		report := validReport()
		report.ID = "RPT001"

		mockRepo.EXPECT().GetByID("RPT001").Return(nil, nil)

		_, err := service.UpdateReport(report, "U1")

		assert.ErrorIs(t, err, ErrReportNotFound)
	})

	t.Run("Apenas o dono pode editar", func(t *testing.T) {
		report := validReport()
		report.ID = "RPT001"

		existing := validReport()
		existing.ID = "RPT001"

		mockRepo.EXPECT().GetByID("RPT001").Return(existing, nil)

		_, err := service.UpdateReport(report, "U2")

		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("Edição preserva dono e leitores", func(t *testing.T) {
		report := validReport()
		report.ID = "RPT001"
		report.OwnerID = "U9" // tentativa de troca de dono deve ser ignorada

		existing := validReport()
		existing.ID = "RPT001"
		existing.SharedWith = []string{"U3"}

		mockRepo.EXPECT().GetByID("RPT001").Return(existing, nil)
		mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

		updated, err := service.UpdateReport(report, "U1")

		require.NoError(t, err)
		assert.Equal(t, "U1", updated.OwnerID)
		assert.Equal(t, []string{"U3"}, updated.SharedWith)
	})
}

func TestService_AccessControl(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomReportRepository(ctrl)
	service := NewService(&config.Config{}, mockRepo, &stubAnalyzer{}, &stubTrender{})

	t.Run("Leitor compartilhado pode ler", func(t *testing.T) {
		existing := validReport()
		existing.ID = "RPT001"
		existing.SharedWith = []string{"U2"}

		mockRepo.EXPECT().GetByID("RPT001").Return(existing, nil)

		report, err := service.GetReport("RPT001", "U2")

		require.NoError(t, err)
		assert.Equal(t, "RPT001", report.ID)
	})

	t.Run("Usuário sem acesso é rejeitado", func(t *testing.T) {
		existing := validReport()
		existing.ID = "RPT001"

		mockRepo.EXPECT().GetByID("RPT001").Return(existing, nil)

		_, err := service.GetReport("RPT001", "U5")

		assert.ErrorIs(t, err, ErrReportNotAccessible)
	})

	t.Run("Compartilhar exige ser o dono", func(t *testing.T) {
		existing := validReport()
		existing.ID = "RPT001"

		mockRepo.EXPECT().GetByID("RPT001").Return(existing, nil)

		err := service.ShareReport("RPT001", "U2", []string{"U3"})

		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("Compartilhar sem destinatários é rejeitado", func(t *testing.T) {
		err := service.ShareReport("RPT001", "U1", nil)

		assert.True(t, domain.IsValidationError(err))
	})
}

func TestService_ComposeReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomReportRepository(ctrl)

	t.Run("Composição recalcula, persiste e monta o gráfico", func(t *testing.T) {
		analyzer := &stubAnalyzer{result: impactResult()}
		trender := &stubTrender{}
		service := NewService(&config.Config{}, mockRepo, analyzer, trender)

		existing := validReport()
		existing.ID = "RPT001"

		mockRepo.EXPECT().GetByID("RPT001").Return(existing, nil)
		mockRepo.EXPECT().UpdateLastResult("RPT001", gomock.Any()).Return(nil)

		payload, err := service.ComposeReport("RPT001", "U1")

		require.NoError(t, err)
		assert.Equal(t, 1, analyzer.called)
		assert.Equal(t, 0, trender.called)

		require.NotNil(t, payload.ChartData)
		assert.Equal(t, domain.VisualizationBar, payload.ChartData.Visualization)
		assert.Equal(t, []string{"Firma A", "Firma B"}, payload.ChartData.Labels)
		require.Len(t, payload.ChartData.Series, 1)
		assert.Equal(t, domain.MetricTotalImpact, payload.ChartData.Series[0].Name)
		assert.Equal(t, []float64{50, -20}, payload.ChartData.Series[0].Values)
	})

	t.Run("Métrica de CAGR aciona o cálculo de tendências", func(t *testing.T) {
		analyzer := &stubAnalyzer{result: impactResult()}
		trender := &stubTrender{result: &domain.TrendResult{OverallCAGR: 0.08}}
		service := NewService(&config.Config{}, mockRepo, analyzer, trender)

		existing := validReport()
		existing.ID = "RPT002"
		existing.Metrics = []string{domain.MetricTotalImpact, domain.MetricCAGR}

		mockRepo.EXPECT().GetByID("RPT002").Return(existing, nil)
		mockRepo.EXPECT().UpdateLastResult("RPT002", gomock.Any()).Return(nil)

		payload, err := service.ComposeReport("RPT002", "U1")

		require.NoError(t, err)
		assert.Equal(t, 1, trender.called)
		require.NotNil(t, payload.Data.Trend)
		assert.Equal(t, 0.08, payload.Data.Trend.OverallCAGR)
		// O CAGR é escalar e não vira série do gráfico de itens
		require.Len(t, payload.ChartData.Series, 1)
	})

	t.Run("Ordenação do relatório reordena rótulos e séries", func(t *testing.T) {
		analyzer := &stubAnalyzer{result: impactResult()}
		service := NewService(&config.Config{}, mockRepo, analyzer, &stubTrender{})

		existing := validReport()
		existing.ID = "RPT003"
		existing.Sort = &domain.ReportSort{Field: domain.MetricTotalImpact, Descending: false}

		mockRepo.EXPECT().GetByID("RPT003").Return(existing, nil)
		mockRepo.EXPECT().UpdateLastResult("RPT003", gomock.Any()).Return(nil)

		payload, err := service.ComposeReport("RPT003", "U1")

		require.NoError(t, err)
		assert.Equal(t, []string{"Firma B", "Firma A"}, payload.ChartData.Labels)
		assert.Equal(t, []float64{-20, 50}, payload.ChartData.Series[0].Values)
	})

	t.Run("Pré-visualização não persiste nada", func(t *testing.T) {
		analyzer := &stubAnalyzer{result: impactResult()}
		service := NewService(&config.Config{}, mockRepo, analyzer, &stubTrender{})

		payload, err := service.PreviewReport(validReport())

		require.NoError(t, err)
		assert.NotNil(t, payload.ChartData)
	})

	t.Run("Composições repetidas das mesmas entradas são idênticas", func(t *testing.T) {
		analyzer := &stubAnalyzer{result: impactResult()}
		service := NewService(&config.Config{}, mockRepo, analyzer, &stubTrender{})

		existing := validReport()
		existing.ID = "RPT004"
		existing.Metrics = []string{domain.MetricTotalImpact, domain.MetricNetImpact}

		mockRepo.EXPECT().GetByID("RPT004").Return(existing, nil).Times(2)
		mockRepo.EXPECT().UpdateLastResult("RPT004", gomock.Any()).Return(nil).Times(2)

		first, err := service.ComposeReport("RPT004", "U1")
		require.NoError(t, err)

		second, err := service.ComposeReport("RPT004", "U1")
		require.NoError(t, err)

		assert.Equal(t, 2, analyzer.called)
		assert.Equal(t, first, second)
	})
}
