package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lexrates/rate-insights-api/infrastructure/database/postgres"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/lib/pq"
)

const (
	customReportsTable = "custom_reports cr"

	customReportColumns = `cr.id, cr.owner_id, cr.name, cr.description, cr.filters,
		cr.visualization, cr.dimensions, cr.metrics, cr.sort, cr.shared_with,
		cr.last_result, cr.created_at, cr.updated_at`
)

// CustomReportRepository persiste os relatórios customizados dos usuários
type CustomReportRepository interface {
	Create(report *domain.CustomReport) error
	Update(report *domain.CustomReport) error
	Delete(id string) error
	GetByID(id string) (*domain.CustomReport, error)
	ListByOwner(ownerID string) ([]*domain.CustomReport, error)
	ListAll() ([]*domain.CustomReport, error)
	AddShares(id string, granteeIDs []string) error
	UpdateLastResult(id string, payload *domain.ReportPayload) error
}

type customReportRepository struct {
	conn *postgres.Connection
}

func NewCustomReportRepository(conn *postgres.Connection) CustomReportRepository {
	return &customReportRepository{
		conn: conn,
	}
}

func (r *customReportRepository) Create(report *domain.CustomReport) error {
	filtersJSON, dimensionsJSON, metricsJSON, sortJSON, lastResultJSON, err := marshalReportFields(report)
	if err != nil {
		return err
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("custom_reports").
		Columns("id", "owner_id", "name", "description", "filters", "visualization",
			"dimensions", "metrics", "sort", "shared_with", "last_result").
		Values(
			report.ID,
			report.OwnerID,
			report.Name,
			report.Description,
			filtersJSON,
			string(report.Visualization),
			dimensionsJSON,
			metricsJSON,
			sortJSON,
			pq.Array(report.SharedWith),
			lastResultJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *customReportRepository) Update(report *domain.CustomReport) error {
	filtersJSON, dimensionsJSON, metricsJSON, sortJSON, lastResultJSON, err := marshalReportFields(report)
	if err != nil {
		return err
	}

	query, args, err := squirrel.StatementBuilder.
		Update("custom_reports").
		Set("name", report.Name).
		Set("description", report.Description).
		Set("filters", filtersJSON).
		Set("visualization", string(report.Visualization)).
		Set("dimensions", dimensionsJSON).
		Set("metrics", metricsJSON).
		Set("sort", sortJSON).
		Set("last_result", lastResultJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": report.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("relatório não encontrado: %s", report.ID)
	}

	return nil
}

func (r *customReportRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("custom_reports").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *customReportRepository) GetByID(id string) (*domain.CustomReport, error) {
	query, args, err := squirrel.
		Select(customReportColumns).
		From(customReportsTable).
		Where(squirrel.Eq{"cr.id": id}).
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

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
		}
		return nil, nil
	}

	report, err := scanCustomReport(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
	}

	return report, nil
}

func (r *customReportRepository) ListByOwner(ownerID string) ([]*domain.CustomReport, error) {
	// Inclui os relatórios do dono e os compartilhados com ele
	return r.list(squirrel.Or{
		squirrel.Eq{"cr.owner_id": ownerID},
		squirrel.Expr("? = ANY(cr.shared_with)", ownerID),
	})
}

func (r *customReportRepository) ListAll() ([]*domain.CustomReport, error) {
	return r.list(nil)
}

func (r *customReportRepository) list(where squirrel.Sqlizer) ([]*domain.CustomReport, error) {
	builder := squirrel.
		Select(customReportColumns).
		From(customReportsTable).
		OrderBy("cr.updated_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.CustomReport, 0)
	for rows.Next() {
		report, err := scanCustomReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

// AddShares adiciona leitores ao relatório sem alterar o dono
func (r *customReportRepository) AddShares(id string, granteeIDs []string) error {
	query, args, err := squirrel.StatementBuilder.
		Update("custom_reports").
		Set("shared_with", squirrel.Expr(
			"(SELECT ARRAY(SELECT DISTINCT unnest(shared_with || ?)))", pq.Array(granteeIDs),
		)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("relatório não encontrado: %s", id)
	}

	return nil
}

func (r *customReportRepository) UpdateLastResult(id string, payload *domain.ReportPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar resultado do relatório para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Update("custom_reports").
		Set("last_result", payloadJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func marshalReportFields(report *domain.CustomReport) (filters, dimensions, metrics, sort, lastResult []byte, err error) {
	if report.Filters != nil {
		filters, err = json.Marshal(report.Filters)
		if err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("erro ao serializar filtros para JSON: %w", err)
		}
	}

	dimensions, err = json.Marshal(report.Dimensions)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("erro ao serializar dimensões para JSON: %w", err)
	}

	metrics, err = json.Marshal(report.Metrics)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	if report.Sort != nil {
		sort, err = json.Marshal(report.Sort)
		if err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("erro ao serializar ordenação para JSON: %w", err)
		}
	}

	if report.LastResult != nil {
		lastResult, err = json.Marshal(report.LastResult)
		if err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("erro ao serializar resultado para JSON: %w", err)
		}
	}

	return filters, dimensions, metrics, sort, lastResult, nil
}

func scanCustomReport(rows *sql.Rows) (*domain.CustomReport, error) {
	report := &domain.CustomReport{}
	var visualization string
	var filtersJSON, dimensionsJSON, metricsJSON, sortJSON, lastResultJSON []byte

	err := rows.Scan(
		&report.ID,
		&report.OwnerID,
		&report.Name,
		&report.Description,
		&filtersJSON,
		&visualization,
		&dimensionsJSON,
		&metricsJSON,
		&sortJSON,
		pq.Array(&report.SharedWith),
		&lastResultJSON,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	report.Visualization = domain.VisualizationType(visualization)

	if filtersJSON != nil {
		filters := &domain.FilterParameters{}
		if err := json.Unmarshal(filtersJSON, filters); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de filtros: %w", err)
		}
		report.Filters = filters
	}

	if dimensionsJSON != nil {
		if err := json.Unmarshal(dimensionsJSON, &report.Dimensions); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de dimensões: %w", err)
		}
	}

	if metricsJSON != nil {
		if err := json.Unmarshal(metricsJSON, &report.Metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
	}

	if sortJSON != nil {
		sort := &domain.ReportSort{}
		if err := json.Unmarshal(sortJSON, sort); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de ordenação: %w", err)
		}
		report.Sort = sort
	}

	if lastResultJSON != nil {
		payload := &domain.ReportPayload{}
		if err := json.Unmarshal(lastResultJSON, payload); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de resultado: %w", err)
		}
		report.LastResult = payload
	}

	return report, nil
}
