package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг (варианты и опции)
// Каталог для резолвера доступности является read-only источником
// длительностей и цен
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetVariant получает вариант услуги по ID
func (r *Repository) GetVariant(ctx context.Context, id int64) (*domain.ServiceVariant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"base_service_id",
		"name",
		"duration_minutes",
		"price",
	).
		From("service_variants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetVariant - build select query: %v", ErrBuildQuery, err)
	}

	var variant domain.ServiceVariant
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&variant.ID,
		&variant.BaseServiceID,
		&variant.Name,
		&variant.DurationMinutes,
		&variant.Price,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVariantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetVariant - scan variant: %v", ErrScanRow, err)
	}

	return &variant, nil
}

// GetOptions получает опции по ID в рамках одной базовой услуги
// Опции, не принадлежащие базовой услуге варианта, молча отбрасываются -
// к заказу могут быть прикреплены только опции его услуги
func (r *Repository) GetOptions(ctx context.Context, baseServiceID int64, optionIDs []int64) ([]*domain.ServiceOption, error) {
	if len(optionIDs) == 0 {
		return []*domain.ServiceOption{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"base_service_id",
		"name",
		"duration_minutes",
		"price",
	).
		From("service_options").
		Where(squirrel.Eq{
			"base_service_id": baseServiceID,
			"id":              optionIDs,
		}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOptions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	options := make([]*domain.ServiceOption, 0, len(optionIDs))

	for rows.Next() {
		var option domain.ServiceOption
		err := rows.Scan(
			&option.ID,
			&option.BaseServiceID,
			&option.Name,
			&option.DurationMinutes,
			&option.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetOptions - scan row: %v", ErrScanRow, err)
		}
		options = append(options, &option)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOptions - rows error: %v", ErrScanRow, err)
	}

	return options, nil
}
