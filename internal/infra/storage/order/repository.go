package order

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с заказами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

const orderColumns = `id, user_id, executor_id, base_service_id, service_variant_id,
	starts_at, duration_minutes, status, service_name, total_price, bonus, notes,
	created_at, updated_at`

// Create создает новый заказ вместе со связями на выбранные опции
// Вызывается внутри сериализуемой транзакции usecase создания заказа:
// проверка доступности слота и вставка должны коммититься атомарно
func (r *Repository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("orders").
		Columns(
			"user_id",
			"executor_id",
			"base_service_id",
			"service_variant_id",
			"starts_at",
			"duration_minutes",
			"status",
			"service_name",
			"total_price",
			"bonus",
			"notes",
		).
		Values(
			o.UserID,
			o.ExecutorID,
			o.BaseServiceID,
			o.ServiceVariantID,
			o.StartsAt,
			o.DurationMinutes,
			o.Status,
			o.ServiceName,
			o.TotalPrice,
			o.Bonus,
			o.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	if len(o.OptionIDs) > 0 {
		insertOptions := psqlbuilder.Insert("order_options").
			Columns("order_id", "option_id")
		for _, optionID := range o.OptionIDs {
			insertOptions = insertOptions.Values(o.ID, optionID)
		}

		query, args, err := insertOptions.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build insert options query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert options: %v", ErrExecQuery, err)
		}
	}

	return o, nil
}

// GetByID получает заказ по ID вместе со списком опций
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	o, err := r.scanOrder(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	if err := r.loadOptionIDs(ctx, executor, o); err != nil {
		return nil, err
	}

	return o, nil
}

// GetByUser получает заказы, где пользователь является клиентом
// или назначенным исполнителем, сначала новые
func (r *Repository) GetByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns).
		From("orders").
		Where(squirrel.Or{
			squirrel.Eq{"user_id": userID},
			squirrel.Eq{"executor_id": userID},
		}).
		OrderBy("starts_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

// GetBusyInWindow получает заказы, занимающие время в окне [from, to)
// Возвращаются только заказы со статусом вне {completed, canceled} -
// именно они образуют занятые интервалы резолвера.
// Внутри транзакции выборка блокируется (FOR UPDATE), чтобы конкурентное
// создание заказа на тот же слот упёрлось в блокировку
func (r *Repository) GetBusyInWindow(ctx context.Context, filter domain.OrdersFilter) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns).
		From("orders").
		OrderBy("starts_at ASC")

	if filter.WindowStart != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"starts_at": *filter.WindowStart})
	}
	if filter.WindowEnd != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"starts_at": *filter.WindowEnd})
	}

	if filter.OnlyBusy {
		freeStatuses := make([]string, len(domain.FreeStatuses))
		for i, s := range domain.FreeStatuses {
			freeStatuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": freeStatuses})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusyInWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusyInWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

// UpdateStatus обновляет статус заказа
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// Assign назначает исполнителя на заказ в статусе todo
// Условие в WHERE защищает от гонки двух исполнителей: побеждает
// первый закоммитившийся, второй получает ErrAlreadyAccepted
func (r *Repository) Assign(ctx context.Context, id int64, executorID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("executor_id", executorID).
		Set("status", domain.StatusProcessed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":          id,
			"status":      domain.StatusTodo,
			"executor_id": nil,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Assign - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Assign - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Assign - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAlreadyAccepted
	}

	return nil
}

// scanOrder сканирует одну строку заказа
func (r *Repository) scanOrder(row *sql.Row) (*domain.Order, error) {
	var o domain.Order
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.ExecutorID,
		&o.BaseServiceID,
		&o.ServiceVariantID,
		&o.StartsAt,
		&o.DurationMinutes,
		&o.Status,
		&o.ServiceName,
		&o.TotalPrice,
		&o.Bonus,
		&o.Notes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanOrder - scan order: %v", ErrScanRow, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return &o, nil
}

// scanOrders сканирует результаты запроса в слайс заказов
func (r *Repository) scanOrders(rows *sql.Rows) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0)

	for rows.Next() {
		var o domain.Order
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.ExecutorID,
			&o.BaseServiceID,
			&o.ServiceVariantID,
			&o.StartsAt,
			&o.DurationMinutes,
			&o.Status,
			&o.ServiceName,
			&o.TotalPrice,
			&o.Bonus,
			&o.Notes,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanOrders - scan row: %v", ErrScanRow, err)
		}

		o.CreatedAt = createdAt.Time
		o.UpdatedAt = updatedAt.Time

		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOrders - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}

// loadOptionIDs загружает список ID опций заказа
func (r *Repository) loadOptionIDs(ctx context.Context, executor DBExecutor, o *domain.Order) error {
	query, args, err := psqlbuilder.Select("array_agg(option_id ORDER BY option_id)").
		From("order_options").
		Where(squirrel.Eq{"order_id": o.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadOptionIDs - build select query: %v", ErrBuildQuery, err)
	}

	var optionIDs pq.Int64Array
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&optionIDs); err != nil {
		return fmt.Errorf("%w: loadOptionIDs - scan options: %v", ErrScanRow, err)
	}

	o.OptionIDs = []int64(optionIDs)
	return nil
}
