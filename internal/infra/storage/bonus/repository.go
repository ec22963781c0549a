package bonus

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий бонусного счета
// Счет ведется журналом операций: баланс = сумма значений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бонусов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// SumByUser возвращает текущий баланс пользователя
func (r *Repository) SumByUser(ctx context.Context, userID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(value), 0)").
		From("bonus_operations").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumByUser - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: SumByUser - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// Create создает операцию по бонусному счету
// Списание и возврат выполняются в транзакции заказа, чтобы журнал
// и заказы не разошлись
func (r *Repository) Create(ctx context.Context, op *domain.BonusOperation) (*domain.BonusOperation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bonus_operations").
		Columns("user_id", "order_id", "value").
		Values(op.UserID, op.OrderID, op.Value).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&op.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	op.CreatedAt = createdAt.Time
	return op, nil
}
