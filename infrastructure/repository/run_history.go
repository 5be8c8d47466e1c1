package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/attribution-sync/infrastructure/database"
	"github.com/vfg2006/attribution-sync/internal/domain"
)

const (
	runHistoryTable   = "run_history"
	defaultHistoryMax = 50
)

var runHistoryColumns = []string{
	"id",
	"run_id",
	"client",
	"mode",
	"policy",
	"begin_date",
	"end_date",
	"success",
	"error",
	"rows_pulled",
	"rows_pushed",
	"rows_updated",
	"rows_inserted",
	"output_file",
	"started_at",
	"finished_at",
}

type RunHistoryRepository interface {
	Save(ctx context.Context, result *domain.ClientResult) error
	ListRecent(ctx context.Context, limit int) ([]domain.ClientResult, error)
	ListByClient(ctx context.Context, client string, limit int) ([]domain.ClientResult, error)
}

type runHistoryRepository struct {
	conn database.Conn
}

func NewRunHistoryRepository(conn database.Conn) RunHistoryRepository {
	return &runHistoryRepository{
		conn: conn,
	}
}

// Save grava o resultado de um cliente e preenche o ID gerado
func (r *runHistoryRepository) Save(ctx context.Context, result *domain.ClientResult) error {
	query, args, err := squirrel.
		Insert(runHistoryTable).
		Columns(runHistoryColumns[1:]...).
		Values(
			result.RunID,
			result.Client,
			string(result.Mode),
			string(result.Policy),
			result.Begin,
			result.End,
			result.Success,
			result.Error,
			result.RowsPulled,
			result.RowsPushed,
			result.RowsUpdated,
			result.RowsInserted,
			result.OutputFile,
			result.StartedAt.UTC(),
			result.FinishedAt.UTC(),
		).
		Suffix("RETURNING id").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&result.ID); err != nil {
		return fmt.Errorf("erro ao salvar o histórico de %s: %w", result.Client, err)
	}

	return nil
}

func (r *runHistoryRepository) ListRecent(ctx context.Context, limit int) ([]domain.ClientResult, error) {
	return r.list(ctx, nil, limit)
}

func (r *runHistoryRepository) ListByClient(ctx context.Context, client string, limit int) ([]domain.ClientResult, error) {
	return r.list(ctx, squirrel.Eq{"client": client}, limit)
}

func (r *runHistoryRepository) list(ctx context.Context, where squirrel.Sqlizer, limit int) ([]domain.ClientResult, error) {
	if limit <= 0 {
		limit = defaultHistoryMax
	}

	builder := squirrel.
		Select(runHistoryColumns...).
		From(runHistoryTable).
		OrderBy("started_at DESC", "id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(r.conn.Placeholder())
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	results := make([]domain.ClientResult, 0)
	for rows.Next() {
		item, err := scanClientResult(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear o histórico: %w", err)
		}
		results = append(results, *item)
	}

	return results, rows.Err()
}

func scanClientResult(rows *sql.Rows) (*domain.ClientResult, error) {
	var (
		item   domain.ClientResult
		mode   string
		policy string
	)

	err := rows.Scan(
		&item.ID,
		&item.RunID,
		&item.Client,
		&mode,
		&policy,
		&item.Begin,
		&item.End,
		&item.Success,
		&item.Error,
		&item.RowsPulled,
		&item.RowsPushed,
		&item.RowsUpdated,
		&item.RowsInserted,
		&item.OutputFile,
		&item.StartedAt,
		&item.FinishedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Mode = domain.RunMode(mode)
	item.Policy = domain.PushPolicy(policy)

	return &item, nil
}
