package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/lexrates/rate-insights-api/internal/usecases/analyzing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	received *analyzing.ImpactRequest
	result   *domain.ImpactResult
}

func (s *stubAnalyzer) AnalyzeImpact(request *analyzing.ImpactRequest) (*domain.ImpactResult, error) {
	s.received = request
	return s.result, nil
}

func TestAnalyzeImpact(t *testing.T) {
	t.Run("Corpo inválido retorna erro de formato", func(t *testing.T) {
		analyzer := &stubAnalyzer{}
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/v1/analytics/impact", strings.NewReader("{"))

		AnalyzeImpact(analyzer).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Nil(t, analyzer.received)
	})

	t.Run("Todos os campos da requisição chegam ao analisador", func(t *testing.T) {
		analyzer := &stubAnalyzer{result: &domain.ImpactResult{ViewType: domain.ImpactViewMultiYear}}
		recorder := httptest.NewRecorder()

		body := `{
			"dimension": "FIRM",
			"view_type": "MULTI_YEAR",
			"include_peers": true,
			"peer_view_type": "AVERAGE",
			"base_year": 2024,
			"projection_years": 5
		}`
		request := httptest.NewRequest(http.MethodPost, "/v1/analytics/impact", strings.NewReader(body))

		AnalyzeImpact(analyzer).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, analyzer.received)
		assert.Equal(t, domain.DimensionFirm, analyzer.received.Dimension)
		assert.Equal(t, domain.ImpactViewMultiYear, analyzer.received.ViewType)
		assert.True(t, analyzer.received.IncludePeers)
		assert.Equal(t, domain.PeerViewAverage, analyzer.received.PeerViewType)
		assert.Equal(t, 2024, analyzer.received.BaseYear)
		assert.Equal(t, 5, analyzer.received.ProjectionYears)
	})
}
