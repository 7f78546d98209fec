// Package currency implementa o passo explícito de conversão de moedas que
// antecede a agregação. Depois dele, todos os registros estão na mesma moeda.
package currency

import (
	"github.com/lexrates/rate-insights-api/infrastructure/repository"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/pkg/errors"
)

// Convert converte um valor da moeda de origem para a moeda base da tabela.
// A tabela é indexada pela moeda de origem (1 base = rate origem).
func Convert(amount float64, from string, base string, table map[string]float64) (float64, error) {
	if from == base {
		return amount, nil
	}

	rate, ok := table[from]
	if !ok || rate == 0 {
		return 0, domain.NewValidationError("currency", "taxa de conversão indisponível para a moeda "+from)
	}

	return amount / rate, nil
}

// Converter converte registros de tarifas para uma moeda alvo usando a tabela
// de câmbio persistida
type Converter struct {
	currencyRateRepository repository.CurrencyRateRepository
}

func NewConverter(currencyRateRepository repository.CurrencyRateRepository) *Converter {
	return &Converter{
		currencyRateRepository: currencyRateRepository,
	}
}

// ConvertRecords retorna uma cópia dos registros com todos os valores
// monetários expressos na moeda alvo. Os registros de entrada não são
// modificados. Quando todos os registros já estão na moeda alvo, a tabela de
// câmbio não é consultada.
func (c *Converter) ConvertRecords(records []*domain.RateRecord, target string) ([]*domain.RateRecord, error) {
	needsConversion := false
	for _, record := range records {
		if record.Currency != "" && record.Currency != target {
			needsConversion = true
			break
		}
	}

	if !needsConversion {
		return records, nil
	}

	table, err := c.currencyRateRepository.GetRateTable(target)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao buscar tabela de câmbio")
	}

	converted := make([]*domain.RateRecord, 0, len(records))
	for _, record := range records {
		if record.Currency == "" || record.Currency == target {
			converted = append(converted, record)
			continue
		}

		copied := *record
		if copied.CurrentAmount, err = Convert(record.CurrentAmount, record.Currency, target, table); err != nil {
			return nil, err
		}
		if copied.ProposedAmount, err = Convert(record.ProposedAmount, record.Currency, target, table); err != nil {
			return nil, err
		}
		if copied.FeeAdjustment, err = Convert(record.FeeAdjustment, record.Currency, target, table); err != nil {
			return nil, err
		}
		copied.Currency = target

		converted = append(converted, &copied)
	}

	return converted, nil
}
