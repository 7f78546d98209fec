package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lexrates/rate-insights-api/infrastructure/database/postgres"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/lib/pq"
)

const (
	peerGroupsTable     = "peer_groups pg"
	peerMembersTable    = "peer_group_members pm"
	peerBenchmarksTable = "peer_benchmarks pb"
)

// PeerGroupRepository dá acesso aos grupos de pares configurados e aos
// benchmarks pré-calculados pelo agendador de sincronização
type PeerGroupRepository interface {
	ListGroups() ([]*domain.PeerGroup, error)
	GetMembers(groupID string) ([]*domain.PeerMember, error)
	GetBenchmarks(groupID string) ([]*domain.PeerBenchmark, error)
	SaveOrUpdateBenchmarks(benchmarks []*domain.PeerBenchmark) error
}

type peerGroupRepository struct {
	conn *postgres.Connection
}

func NewPeerGroupRepository(conn *postgres.Connection) PeerGroupRepository {
	return &peerGroupRepository{
		conn: conn,
	}
}

func (r *peerGroupRepository) ListGroups() ([]*domain.PeerGroup, error) {
	query, args, err := squirrel.
		Select("pg.id, pg.name").
		From(peerGroupsTable).
		OrderBy("pg.name ASC").
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

	groups := make([]*domain.PeerGroup, 0)
	for rows.Next() {
		group := &domain.PeerGroup{}
		if err := rows.Scan(&group.ID, &group.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear grupo de pares: %w", err)
		}
		groups = append(groups, group)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return groups, nil
}

func (r *peerGroupRepository) GetMembers(groupID string) ([]*domain.PeerMember, error) {
	query, args, err := squirrel.
		Select("pm.group_id, pm.entity_id, pm.entity_name").
		From(peerMembersTable).
		Where(squirrel.Eq{"pm.group_id": groupID}).
		OrderBy("pm.entity_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	members := make([]*domain.PeerMember, 0)
	for rows.Next() {
		member := &domain.PeerMember{}
		if err := rows.Scan(&member.GroupID, &member.EntityID, &member.EntityName); err != nil {
			return nil, fmt.Errorf("erro ao escanear membro do grupo de pares: %w", err)
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return members, nil
}

func (r *peerGroupRepository) GetBenchmarks(groupID string) ([]*domain.PeerBenchmark, error) {
	query, args, err := squirrel.
		Select("pb.group_id, pb.entity_id, pb.entity_name, pb.effective_year, pb.average_amount, pb.record_count, pb.updated_at").
		From(peerBenchmarksTable).
		Where(squirrel.Eq{"pb.group_id": groupID}).
		OrderBy("pb.effective_year ASC, pb.entity_id ASC").
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

	benchmarks := make([]*domain.PeerBenchmark, 0)
	for rows.Next() {
		benchmark := &domain.PeerBenchmark{}
		err := rows.Scan(
			&benchmark.GroupID,
			&benchmark.EntityID,
			&benchmark.EntityName,
			&benchmark.EffectiveYear,
			&benchmark.AverageAmount,
			&benchmark.RecordCount,
			&benchmark.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear benchmark: %w", err)
		}
		benchmarks = append(benchmarks, benchmark)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return benchmarks, nil
}

// SaveOrUpdateBenchmarks grava os benchmarks recalculados em lote (upsert)
func (r *peerGroupRepository) SaveOrUpdateBenchmarks(benchmarks []*domain.PeerBenchmark) error {
	if len(benchmarks) == 0 {
		return nil
	}

	// Construir query de inserção em lote
	query := squirrel.StatementBuilder.
		Insert("peer_benchmarks").
		Columns("group_id", "entity_id", "entity_name", "effective_year", "average_amount", "record_count")

	// Adicionar os valores de cada benchmark
	for _, benchmark := range benchmarks {
		query = query.Values(
			benchmark.GroupID,
			benchmark.EntityID,
			benchmark.EntityName,
			benchmark.EffectiveYear,
			benchmark.AverageAmount,
			benchmark.RecordCount,
		)
	}

	// Configurar comportamento de conflito (upsert)
	query = query.Suffix(`
		ON CONFLICT (group_id, entity_id, effective_year) DO UPDATE SET
			entity_name = EXCLUDED.entity_name,
			average_amount = EXCLUDED.average_amount,
			record_count = EXCLUDED.record_count,
			updated_at = NOW()
	`).PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
