package events

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

// Repository хранит обработанные события из очередей.
// Используется консьюмером для идемпотентной обработки повторных доставок
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// MarkProcessed отмечает событие как обработанное.
// Возвращает false, если событие уже было обработано ранее
func (r *Repository) MarkProcessed(ctx context.Context, eventID, routingKey string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("processed_events").
		Columns("event_id", "routing_key").
		Values(eventID, routingKey).
		Suffix("ON CONFLICT (event_id) DO NOTHING").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: MarkProcessed - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: MarkProcessed - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: MarkProcessed - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// IsProcessed проверяет, было ли событие обработано
func (r *Repository) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("processed_events").
		Where(squirrel.Eq{"event_id": eventID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsProcessed - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsProcessed - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}
