package get_profile

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/auth"
)

type AuthService interface {
	GetProfile(ctx context.Context, userID int64) (*auth.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
