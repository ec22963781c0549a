package schedule

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий еженедельных шаблонов расписания исполнителей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeekByExecutor получает недельный шаблон исполнителя
// Возвращает дни в порядке понедельник..воскресенье; дни без строки
// шаблона отсутствуют в результате
func (r *Repository) GetWeekByExecutor(ctx context.Context, executorID int64) ([]*domain.ScheduleDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"sd.id",
		"sd.executor_id",
		"sd.day_of_week",
		"sd.is_day_off",
		"tm.time",
	).
		From("schedule_days sd").
		LeftJoin("time_markers tm ON tm.schedule_day_id = sd.id").
		Where(squirrel.Eq{"sd.executor_id": executorID}).
		OrderBy("sd.id ASC", "tm.time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekByExecutor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekByExecutor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	daysByID := make(map[int64]*domain.ScheduleDay)
	order := make([]int64, 0, domain.WeekDaysCount)

	for rows.Next() {
		var (
			dayID      int64
			execID     int64
			dayOfWeek  domain.DayOfWeek
			isDayOff   bool
			markerTime types.TimeString
		)

		if err := rows.Scan(&dayID, &execID, &dayOfWeek, &isDayOff, &markerTime); err != nil {
			return nil, fmt.Errorf("%w: GetWeekByExecutor - scan row: %v", ErrScanRow, err)
		}

		day, ok := daysByID[dayID]
		if !ok {
			day = &domain.ScheduleDay{
				ID:         dayID,
				ExecutorID: execID,
				DayOfWeek:  dayOfWeek,
				IsDayOff:   isDayOff,
				Markers:    make([]types.TimeString, 0),
			}
			daysByID[dayID] = day
			order = append(order, dayID)
		}

		// LEFT JOIN отдает NULL для дней без маркеров
		if !markerTime.IsZero() {
			day.Markers = append(day.Markers, markerTime)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeekByExecutor - rows error: %v", ErrScanRow, err)
	}

	days := make([]*domain.ScheduleDay, 0, len(order))
	for _, id := range order {
		days = append(days, daysByID[id])
	}

	return sortDays(days), nil
}

// GetQualifiedForDay получает квалифицированных исполнителей с их маркерами
// на один день недели. Исполнитель квалифицирован, если:
// - у него есть заявка со статусом APPROVED, сертифицирующая вариант
// - в шаблоне есть строка этого дня недели с is_day_off = FALSE
// Исполнители без строки дня, с выходным или без маркеров не возвращаются
// Маркеры отсортированы по возрастанию времени
func (r *Repository) GetQualifiedForDay(ctx context.Context, variantID int64, day domain.DayOfWeek) ([]domain.ExecutorDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"sd.executor_id",
		"tm.time",
	).
		From("schedule_days sd").
		Join("applications a ON a.user_id = sd.executor_id").
		Join("application_variants av ON av.application_id = a.id").
		Join("time_markers tm ON tm.schedule_day_id = sd.id").
		Where(squirrel.Eq{
			"a.status":       domain.ApplicationApproved,
			"av.variant_id":  variantID,
			"sd.day_of_week": day,
			"sd.is_day_off":  false,
		}).
		OrderBy("sd.executor_id ASC", "tm.time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetQualifiedForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetQualifiedForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	executors := make([]domain.ExecutorDay, 0)

	for rows.Next() {
		var (
			execID int64
			marker types.TimeString
		)

		if err := rows.Scan(&execID, &marker); err != nil {
			return nil, fmt.Errorf("%w: GetQualifiedForDay - scan row: %v", ErrScanRow, err)
		}

		if len(executors) == 0 || executors[len(executors)-1].ExecutorID != execID {
			executors = append(executors, domain.ExecutorDay{ExecutorID: execID})
		}
		last := &executors[len(executors)-1]
		last.Markers = append(last.Markers, marker)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetQualifiedForDay - rows error: %v", ErrScanRow, err)
	}

	return executors, nil
}

// GetQualifiedWeeks получает полные недельные шаблоны всех исполнителей,
// сертифицированных на вариант. Используется резолвером дат: один запрос
// на весь горизонт вместо запроса на каждый день
func (r *Repository) GetQualifiedWeeks(ctx context.Context, variantID int64) ([]*domain.ExecutorWeek, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"sd.executor_id",
		"sd.id",
		"sd.day_of_week",
		"sd.is_day_off",
		"tm.time",
	).
		From("schedule_days sd").
		Join("applications a ON a.user_id = sd.executor_id").
		Join("application_variants av ON av.application_id = a.id").
		LeftJoin("time_markers tm ON tm.schedule_day_id = sd.id").
		Where(squirrel.Eq{
			"a.status":      domain.ApplicationApproved,
			"av.variant_id": variantID,
		}).
		OrderBy("sd.executor_id ASC", "sd.id ASC", "tm.time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetQualifiedWeeks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetQualifiedWeeks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	weeksByExecutor := make(map[int64]*domain.ExecutorWeek)
	order := make([]int64, 0)

	for rows.Next() {
		var (
			execID     int64
			dayID      int64
			dayOfWeek  domain.DayOfWeek
			isDayOff   bool
			markerTime types.TimeString
		)

		if err := rows.Scan(&execID, &dayID, &dayOfWeek, &isDayOff, &markerTime); err != nil {
			return nil, fmt.Errorf("%w: GetQualifiedWeeks - scan row: %v", ErrScanRow, err)
		}

		week, ok := weeksByExecutor[execID]
		if !ok {
			week = &domain.ExecutorWeek{
				ExecutorID: execID,
				Days:       make(map[domain.DayOfWeek]*domain.ScheduleDay, domain.WeekDaysCount),
			}
			weeksByExecutor[execID] = week
			order = append(order, execID)
		}

		day, ok := week.Days[dayOfWeek]
		if !ok {
			day = &domain.ScheduleDay{
				ID:         dayID,
				ExecutorID: execID,
				DayOfWeek:  dayOfWeek,
				IsDayOff:   isDayOff,
				Markers:    make([]types.TimeString, 0),
			}
			week.Days[dayOfWeek] = day
		}

		if !markerTime.IsZero() {
			day.Markers = append(day.Markers, markerTime)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetQualifiedWeeks - rows error: %v", ErrScanRow, err)
	}

	weeks := make([]*domain.ExecutorWeek, 0, len(order))
	for _, id := range order {
		weeks = append(weeks, weeksByExecutor[id])
	}

	return weeks, nil
}

// ReplaceWeek полностью заменяет недельный шаблон исполнителя
// Старые дни и маркеры удаляются, новые создаются одним набором.
// Вызывается только внутри транзакции (полузаменённый шаблон не должен
// быть виден конкурентному чтению резолвера)
func (r *Repository) ReplaceWeek(ctx context.Context, executorID int64, days []*domain.ScheduleDay) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Удаляем старые маркеры всех дней исполнителя
	deleteMarkers, args, err := psqlbuilder.Delete("time_markers").
		Where(squirrel.Expr(
			"schedule_day_id IN (SELECT id FROM schedule_days WHERE executor_id = ?)",
			executorID,
		)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build delete markers query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteMarkers, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - delete markers: %v", ErrExecQuery, err)
	}

	// Удаляем старые дни
	deleteDays, args, err := psqlbuilder.Delete("schedule_days").
		Where(squirrel.Eq{"executor_id": executorID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build delete days query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteDays, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - delete days: %v", ErrExecQuery, err)
	}

	// Создаем новые дни и маркеры
	for _, day := range days {
		insertDay, args, err := psqlbuilder.Insert("schedule_days").
			Columns("executor_id", "day_of_week", "is_day_off").
			Values(executorID, day.DayOfWeek, day.IsDayOff).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceWeek - build insert day query: %v", ErrBuildQuery, err)
		}

		var dayID int64
		if err := executor.QueryRowContext(ctx, insertDay, args...).Scan(&dayID); err != nil {
			return fmt.Errorf("%w: ReplaceWeek - insert day %s: %v", ErrExecQuery, day.DayOfWeek, err)
		}

		if day.IsDayOff || len(day.Markers) == 0 {
			continue
		}

		insertMarkers := psqlbuilder.Insert("time_markers").
			Columns("schedule_day_id", "time")
		for _, marker := range day.Markers {
			insertMarkers = insertMarkers.Values(dayID, marker)
		}

		query, args, err := insertMarkers.ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceWeek - build insert markers query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: ReplaceWeek - insert markers for %s: %v", ErrExecQuery, day.DayOfWeek, err)
		}
	}

	return nil
}

// sortDays упорядочивает дни по порядку недели (понедельник первый)
func sortDays(days []*domain.ScheduleDay) []*domain.ScheduleDay {
	index := make(map[domain.DayOfWeek]*domain.ScheduleDay, len(days))
	for _, day := range days {
		index[day.DayOfWeek] = day
	}

	sorted := make([]*domain.ScheduleDay, 0, len(days))
	for _, dow := range domain.WeekDays {
		if day, ok := index[dow]; ok {
			sorted = append(sorted, day)
		}
	}

	return sorted
}
