package car

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

// pgFKViolation код ошибки PostgreSQL "foreign_key_violation"
const pgFKViolation = "23503"

var carColumns = []string{
	"id",
	"name",
	"brand",
	"model",
	"seats",
	"daily_rate",
	"image_url",
	"image_path",
	"available",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с автопарком
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый автомобиль
func (r *Repository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cars").
		Columns(
			"name",
			"brand",
			"model",
			"seats",
			"daily_rate",
			"image_url",
			"image_path",
			"available",
		).
		Values(
			car.Name,
			car.Brand,
			car.Model,
			car.Seats,
			car.DailyRate,
			car.ImageURL,
			car.ImagePath,
			car.Available,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&car.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	car.CreatedAt = createdAt.Time
	car.UpdatedAt = updatedAt.Time

	return car, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"id": id})

	// В транзакции блокируем строку: проверка available и её изменение
	// должны быть сериализованы
	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	car, err := scanCar(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan car: %v", ErrScanRow, err)
	}

	return car, nil
}

// List получает автомобили по фильтру каталога в порядке хранения
// Текстовый фильтр ищет подстроку в названии, модели и марке без учета регистра;
// фильтр по местам поддерживает сентинел "8 и больше"
func (r *Repository) List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(carColumns...).
		From("cars").
		OrderBy("id ASC")

	if filter.SearchTerm != "" {
		pattern := "%" + filter.SearchTerm + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"model": pattern},
			squirrel.ILike{"brand": pattern},
		})
	}

	if filter.Seats != nil {
		if *filter.Seats == domain.SeatsEightPlus {
			selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"seats": domain.SeatsEightPlus})
		} else {
			selectBuilder = selectBuilder.Where(squirrel.Eq{"seats": *filter.Seats})
		}
	}

	switch filter.Availability {
	case domain.AvailabilityAvailable:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"available": true})
	case domain.AvailabilityBooked:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"available": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cars := make([]*domain.Car, 0)
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return cars, nil
}

// Update обновляет данные автомобиля
func (r *Repository) Update(ctx context.Context, car *domain.Car) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cars").
		Set("name", car.Name).
		Set("brand", car.Brand).
		Set("model", car.Model).
		Set("seats", car.Seats).
		Set("daily_rate", car.DailyRate).
		Set("image_url", car.ImageURL).
		Set("image_path", car.ImagePath).
		Set("available", car.Available).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": car.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// SetAvailability безусловно выставляет флаг available
// Используется при отмене бронирования (машина снова доступна)
func (r *Repository) SetAvailability(ctx context.Context, id int64, available bool) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cars").
		Set("available", available).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// MarkUnavailable атомарно занимает автомобиль: available=false
// только если он сейчас доступен. Ноль затронутых строк означает,
// что машину успел занять конкурентный платеж
func (r *Repository) MarkUnavailable(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cars").
		Set("available", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "available": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkUnavailable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkUnavailable - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkUnavailable - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCarNotAvailable
	}

	return nil
}

// Delete удаляет автомобиль
// Возвращает ErrCarInUse, если на автомобиль ссылаются бронирования
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgFKViolation {
			return ErrCarInUse
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// CountAll возвращает общее количество автомобилей
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	return r.count(ctx, squirrel.Eq{})
}

// CountAvailable возвращает количество доступных автомобилей
func (r *Repository) CountAvailable(ctx context.Context) (int64, error) {
	return r.count(ctx, squirrel.Eq{"available": true})
}

func (r *Repository) count(ctx context.Context, pred squirrel.Eq) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("cars")
	if len(pred) > 0 {
		selectBuilder = selectBuilder.Where(pred)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: count - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: count - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCar(row rowScanner) (*domain.Car, error) {
	var car domain.Car
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&car.ID,
		&car.Name,
		&car.Brand,
		&car.Model,
		&car.Seats,
		&car.DailyRate,
		&car.ImageURL,
		&car.ImagePath,
		&car.Available,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	car.CreatedAt = createdAt.Time
	car.UpdatedAt = updatedAt.Time

	return &car, nil
}
