package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lexrates/rate-insights-api/infrastructure/database/postgres"
)

const (
	currencyRatesTable = "currency_rates fx"
)

// CurrencyRateRepository dá acesso à tabela de câmbio usada pelo passo
// explícito de conversão de moedas anterior à agregação
type CurrencyRateRepository interface {
	// GetRateTable retorna as taxas de conversão a partir da moeda base
	// informada, indexadas pela moeda de destino (1 base = rate destino)
	GetRateTable(base string) (map[string]float64, error)
}

type currencyRateRepository struct {
	conn *postgres.Connection
}

func NewCurrencyRateRepository(conn *postgres.Connection) CurrencyRateRepository {
	return &currencyRateRepository{
		conn: conn,
	}
}

func (r *currencyRateRepository) GetRateTable(base string) (map[string]float64, error) {
	query, args, err := squirrel.
		Select("fx.quote_currency, fx.rate").
		From(currencyRatesTable).
		Where(squirrel.Eq{"fx.base_currency": base}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	table := make(map[string]float64)
	for rows.Next() {
		var quote string
		var rate float64
		if err := rows.Scan(&quote, &rate); err != nil {
			return nil, fmt.Errorf("erro ao escanear taxa de câmbio: %w", err)
		}
		table[quote] = rate
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	// A moeda base converte para ela mesma com taxa 1
	table[base] = 1

	return table, nil
}
