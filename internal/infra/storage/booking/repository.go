package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

var bookingColumns = []string{
	"id",
	"customer_id",
	"car_id",
	"pickup_date",
	"return_date",
	"total_cost",
	"payment_method",
	"payment_status",
	"created_at",
	"updated_at",
}

// BookingDetails бронирование с денормализованными данными клиента и автомобиля
// Используется в админских списках и отчетах
type BookingDetails struct {
	domain.Booking
	CustomerUsername string
	CarName          string
	CarModel         string
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_id",
			"car_id",
			"pickup_date",
			"return_date",
			"total_cost",
			"payment_method",
			"payment_status",
		).
		Values(
			booking.CustomerID,
			booking.CarID,
			booking.PickupDate,
			booking.ReturnDate,
			booking.TotalCost,
			booking.PaymentMethod,
			booking.PaymentStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// В транзакции блокирует строку (FOR UPDATE) для шага оплаты
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.CarID,
		&booking.PickupDate,
		&booking.ReturnDate,
		&booking.TotalCost,
		&booking.PaymentMethod,
		&booking.PaymentStatus,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// GetByCustomerID получает бронирования клиента, сначала новые
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64) ([]*BookingDetails, error) {
	return r.listDetailed(ctx, squirrel.Eq{"b.customer_id": customerID}, 0, "GetByCustomerID")
}

// ListAll получает все бронирования, сначала новые
// limit = 0 означает без ограничения
func (r *Repository) ListAll(ctx context.Context, limit uint64) ([]*BookingDetails, error) {
	return r.listDetailed(ctx, nil, limit, "ListAll")
}

// UpdatePayment записывает результат шага оплаты
func (r *Repository) UpdatePayment(ctx context.Context, id int64, method domain.PaymentMethod, status domain.PaymentStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_method", method).
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePayment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePayment - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePayment - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete физически удаляет бронирование: отмена не оставляет строки.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountAll возвращает общее количество бронирований
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("bookings").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountAll - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountAll - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// TotalsByCustomer возвращает количество бронирований клиента и его суммарные траты
func (r *Repository) TotalsByCustomer(ctx context.Context, customerID int64) (int64, float64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)", "COALESCE(SUM(total_cost), 0)").
		From("bookings").
		Where(squirrel.Eq{"customer_id": customerID}).
		ToSql()

	if err != nil {
		return 0, 0, fmt.Errorf("%w: TotalsByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	var spent float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count, &spent); err != nil {
		return 0, 0, fmt.Errorf("%w: TotalsByCustomer - scan totals: %v", ErrScanRow, err)
	}

	return count, spent, nil
}

func (r *Repository) listDetailed(ctx context.Context, pred interface{}, limit uint64, op string) ([]*BookingDetails, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"b.id",
		"b.customer_id",
		"b.car_id",
		"b.pickup_date",
		"b.return_date",
		"b.total_cost",
		"b.payment_method",
		"b.payment_status",
		"b.created_at",
		"b.updated_at",
		"u.username",
		"c.name",
		"c.model",
	).
		From("bookings b").
		Join("users u ON u.id = b.customer_id").
		Join("cars c ON c.id = b.car_id").
		OrderBy("b.id DESC")

	if pred != nil {
		selectBuilder = selectBuilder.Where(pred)
	}
	if limit > 0 {
		selectBuilder = selectBuilder.Limit(limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*BookingDetails, 0)
	for rows.Next() {
		var b BookingDetails
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.CustomerID,
			&b.CarID,
			&b.PickupDate,
			&b.ReturnDate,
			&b.TotalCost,
			&b.PaymentMethod,
			&b.PaymentStatus,
			&createdAt,
			&updatedAt,
			&b.CustomerUsername,
			&b.CarName,
			&b.CarModel,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}
