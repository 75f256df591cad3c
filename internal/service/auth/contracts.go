package auth

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// BookingStats интерфейс сводки бронирований для профиля
type BookingStats interface {
	TotalsByCustomer(ctx context.Context, customerID int64) (int64, float64, error)
}

// PasswordHasher интерфейс хеширования паролей
type PasswordHasher interface {
	Hash(password []byte) ([]byte, error)
	Compare(hash, password []byte) error
}

// TokenIssuer интерфейс выпуска access-токенов
type TokenIssuer interface {
	Issue(userID int64, role string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
