package register

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/auth"
)

type AuthService interface {
	Register(ctx context.Context, req *auth.RegisterRequest) (*auth.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
