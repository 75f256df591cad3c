package user

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

// pgUniqueViolation код ошибки PostgreSQL "unique_violation"
const pgUniqueViolation = "23505"

var userColumns = []string{
	"id",
	"full_name",
	"email",
	"phone_number",
	"address",
	"nic_number",
	"username",
	"password_hash",
	"role",
	"created_at",
}

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пользователя
// Нарушения уникальности маппятся в ErrUsernameTaken / ErrEmailTaken
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns(
			"full_name",
			"email",
			"phone_number",
			"address",
			"nic_number",
			"username",
			"password_hash",
			"role",
		).
		Values(
			user.FullName,
			user.Email,
			user.PhoneNumber,
			user.Address,
			user.NICNumber,
			user.Username,
			user.PasswordHash,
			user.Role,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&createdAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgUniqueViolation {
			switch pqErr.Constraint {
			case "users_username_key":
				return nil, ErrUsernameTaken
			case "users_email_key":
				return nil, ErrEmailTaken
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	user.CreatedAt = createdAt.Time

	return user, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getByPredicate(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByUsername получает пользователя по точному (с учетом регистра) username
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getByPredicate(ctx, squirrel.Eq{"username": username}, "GetByUsername")
}

// GetByEmail получает пользователя по точному (с учетом регистра) email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getByPredicate(ctx, squirrel.Eq{"email": email}, "GetByEmail")
}

// CountCustomers возвращает количество пользователей с ролью Customer
func (r *Repository) CountCustomers(ctx context.Context) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("users").
		Where(squirrel.Eq{"role": domain.RoleCustomer}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountCustomers - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountCustomers - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// CustomerStats сводка по клиенту для отчетности
type CustomerStats struct {
	UserID        int64
	Username      string
	FullName      string
	TotalBookings int64
	TotalSpent    float64
}

// ListCustomerStats возвращает всех клиентов с количеством бронирований
// и суммарными тратами, по алфавиту полного имени
func (r *Repository) ListCustomerStats(ctx context.Context) ([]*CustomerStats, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"u.id",
		"u.username",
		"u.full_name",
		"COUNT(b.id)",
		"COALESCE(SUM(b.total_cost), 0)",
	).
		From("users u").
		LeftJoin("bookings b ON b.customer_id = u.id").
		Where(squirrel.Eq{"u.role": domain.RoleCustomer}).
		GroupBy("u.id", "u.username", "u.full_name").
		OrderBy("u.full_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCustomerStats - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCustomerStats - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stats := make([]*CustomerStats, 0)
	for rows.Next() {
		var s CustomerStats
		if err := rows.Scan(&s.UserID, &s.Username, &s.FullName, &s.TotalBookings, &s.TotalSpent); err != nil {
			return nil, fmt.Errorf("%w: ListCustomerStats - scan row: %v", ErrScanRow, err)
		}
		stats = append(stats, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCustomerStats - rows error: %v", ErrScanRow, err)
	}

	return stats, nil
}

func (r *Repository) getByPredicate(ctx context.Context, pred squirrel.Eq, op string) (*domain.User, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(pred).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var user domain.User
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PhoneNumber,
		&user.Address,
		&user.NICNumber,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}

	user.CreatedAt = createdAt.Time

	return &user, nil
}
