package aggregating

import (
	"testing"

	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(firmID, firmName, currency string, current, proposed float64) *domain.RateRecord {
	return &domain.RateRecord{
		FirmID:         firmID,
		FirmName:       firmName,
		Currency:       currency,
		CurrentAmount:  current,
		ProposedAmount: proposed,
	}
}

func TestGroupByDimension(t *testing.T) {
	t.Run("Dimensão desconhecida é rejeitada", func(t *testing.T) {
		_, err := GroupByDimension(nil, domain.Dimension("REGION"))

		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Moedas misturadas são rejeitadas", func(t *testing.T) {
		records := []*domain.RateRecord{
			record("F1", "Firma A", "USD", 100, 110),
			record("F2", "Firma B", "EUR", 100, 120),
		}

		_, err := GroupByDimension(records, domain.DimensionFirm)

		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Registro sem moeda misturado com moeda explícita é rejeitado", func(t *testing.T) {
		records := []*domain.RateRecord{
			record("F1", "Firma A", "", 100, 110),
			record("F2", "Firma B", "USD", 100, 120),
		}

		_, err := GroupByDimension(records, domain.DimensionFirm)

		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Sem registros retorna lista vazia", func(t *testing.T) {
		groups, err := GroupByDimension(nil, domain.DimensionFirm)

		require.NoError(t, err)
		assert.Empty(t, groups)
	})

	t.Run("Cada registro pertence a exatamente um grupo", func(t *testing.T) {
		records := []*domain.RateRecord{
			record("F1", "Firma A", "USD", 100, 110),
			record("F2", "Firma B", "USD", 200, 260),
			record("F1", "Firma A", "USD", 300, 330),
		}

		groups, err := GroupByDimension(records, domain.DimensionFirm)

		require.NoError(t, err)
		require.Len(t, groups, 2)

		total := 0
		for _, group := range groups {
			total += group.RecordCount()
		}
		assert.Equal(t, len(records), total)
	})

	t.Run("Totais acumulados por grupo", func(t *testing.T) {
		records := []*domain.RateRecord{
			record("F1", "Firma A", "USD", 100, 110),
			record("F1", "Firma A", "USD", 300, 330),
		}

		groups, err := GroupByDimension(records, domain.DimensionFirm)

		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, 400.0, groups[0].CurrentTotal)
		assert.Equal(t, 440.0, groups[0].ProposedTotal)
		assert.Equal(t, 40.0, groups[0].Impact())
		assert.Equal(t, "Firma A", groups[0].Label)
	})

	t.Run("Grupos ordenados pelo impacto absoluto decrescente", func(t *testing.T) {
		records := []*domain.RateRecord{
			record("F1", "Firma A", "USD", 100, 110), // impacto +10
			record("F2", "Firma B", "USD", 200, 140), // impacto -60
			record("F3", "Firma C", "USD", 100, 130), // impacto +30
		}

		groups, err := GroupByDimension(records, domain.DimensionFirm)

		require.NoError(t, err)
		require.Len(t, groups, 3)
		assert.Equal(t, "F2", groups[0].Key)
		assert.Equal(t, "F3", groups[1].Key)
		assert.Equal(t, "F1", groups[2].Key)
	})

	t.Run("Empate no impacto preserva a ordem de chegada", func(t *testing.T) {
		records := []*domain.RateRecord{
			record("F1", "Firma A", "USD", 100, 120),
			record("F2", "Firma B", "USD", 200, 220),
		}

		groups, err := GroupByDimension(records, domain.DimensionFirm)

		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, "F1", groups[0].Key)
		assert.Equal(t, "F2", groups[1].Key)
	})

	t.Run("Rótulo ausente usa a própria chave", func(t *testing.T) {
		records := []*domain.RateRecord{
			record("F1", "", "USD", 100, 110),
		}

		groups, err := GroupByDimension(records, domain.DimensionFirm)

		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "F1", groups[0].Label)
	})
}
