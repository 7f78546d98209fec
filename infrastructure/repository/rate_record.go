// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lexrates/rate-insights-api/infrastructure/database/postgres"
	"github.com/lexrates/rate-insights-api/internal/domain"
)

const (
	rateRecordsTable = "rate_records rr"

	rateRecordColumns = `rr.id, rr.client_id, rr.firm_id, rr.firm_name, rr.attorney_id,
		rr.attorney_name, rr.staff_class, rr.practice_area, rr.office_id, rr.geography_id,
		rr.currency, rr.current_amount, rr.proposed_amount, rr.fee_adjustment,
		rr.effective_year, rr.billed_hours, rr.status, rr.type`
)

// RateRecordRepository é a origem de registros de tarifas do pipeline de
// análise. Falhas de busca são propagadas sem retry: a decisão de repetir é
// do chamador.
type RateRecordRepository interface {
	ListByFilter(filters *domain.FilterParameters) ([]*domain.RateRecord, error)
}

type rateRecordRepository struct {
	conn *postgres.Connection
}

func NewRateRecordRepository(conn *postgres.Connection) RateRecordRepository {
	return &rateRecordRepository{
		conn: conn,
	}
}

// ListByFilter busca os registros de tarifas que satisfazem os parâmetros de
// filtro normalizados. Campos de dimensão não informados não restringem a
// consulta.
func (r *rateRecordRepository) ListByFilter(filters *domain.FilterParameters) ([]*domain.RateRecord, error) {
	builder := squirrel.
		Select(rateRecordColumns).
		From(rateRecordsTable).
		OrderBy("rr.effective_year ASC, rr.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = applyFilters(builder, filters)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.RateRecord, 0)
	for rows.Next() {
		record, err := scanRateRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de tarifa: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// applyFilters traduz os parâmetros normalizados para restrições SQL
func applyFilters(builder squirrel.SelectBuilder, filters *domain.FilterParameters) squirrel.SelectBuilder {
	if filters == nil {
		return builder
	}

	if filters.ClientID != nil {
		builder = builder.Where(squirrel.Eq{"rr.client_id": *filters.ClientID})
	}
	if filters.FirmID != nil {
		builder = builder.Where(squirrel.Eq{"rr.firm_id": *filters.FirmID})
	}
	if filters.AttorneyID != nil {
		builder = builder.Where(squirrel.Eq{"rr.attorney_id": *filters.AttorneyID})
	}
	if filters.StaffClass != nil {
		builder = builder.Where(squirrel.Eq{"rr.staff_class": *filters.StaffClass})
	}
	if filters.PracticeArea != nil {
		builder = builder.Where(squirrel.Eq{"rr.practice_area": *filters.PracticeArea})
	}
	if filters.OfficeID != nil {
		builder = builder.Where(squirrel.Eq{"rr.office_id": *filters.OfficeID})
	}
	if filters.GeographyID != nil {
		builder = builder.Where(squirrel.Eq{"rr.geography_id": *filters.GeographyID})
	}
	if filters.RateStatus != nil {
		builder = builder.Where(squirrel.Eq{"rr.status": string(*filters.RateStatus)})
	}
	if filters.RateType != nil {
		builder = builder.Where(squirrel.Eq{"rr.type": string(*filters.RateType)})
	}

	// O intervalo de datas restringe pelo ano efetivo do registro
	if startYear, endYear := filters.YearRange(); startYear != 0 {
		builder = builder.
			Where(squirrel.GtOrEq{"rr.effective_year": startYear}).
			Where(squirrel.LtOrEq{"rr.effective_year": endYear})
	}

	return builder
}

func scanRateRecord(rows *sql.Rows) (*domain.RateRecord, error) {
	record := &domain.RateRecord{}
	var status, rateType sql.NullString

	err := rows.Scan(
		&record.ID,
		&record.ClientID,
		&record.FirmID,
		&record.FirmName,
		&record.AttorneyID,
		&record.AttorneyName,
		&record.StaffClass,
		&record.PracticeArea,
		&record.OfficeID,
		&record.GeographyID,
		&record.Currency,
		&record.CurrentAmount,
		&record.ProposedAmount,
		&record.FeeAdjustment,
		&record.EffectiveYear,
		&record.BilledHours,
		&status,
		&rateType,
	)
	if err != nil {
		return nil, err
	}

	if status.Valid {
		record.Status = domain.RateStatus(status.String)
	}
	if rateType.Valid {
		record.Type = domain.RateType(rateType.String)
	}

	return record, nil
}
