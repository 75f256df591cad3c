package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	userRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/user"
)

// Service сервис регистрации и аутентификации
type Service struct {
	users  UserRepository
	stats  BookingStats
	hasher PasswordHasher
	tokens TokenIssuer
	logger Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(users UserRepository, stats BookingStats, hasher PasswordHasher, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		users:  users,
		stats:  stats,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Register регистрирует нового клиента и сразу выдает токен
// Дубликаты username/email отклоняются по точному совпадению хранимого значения
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	s.logger.Info("Register: username=%s", req.Username)

	ve := validateRegister(req)

	// Проверки дубликатов: точное, регистрозависимое совпадение
	if req.Username != "" {
		if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
			ve.Add("username", "username already exists")
		} else if !errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Error("Register: username lookup failed: %v", err)
			return nil, fmt.Errorf("%w: Register - username lookup: %v", ErrInternal, err)
		}
	}
	if req.Email != "" {
		if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
			ve.Add("email", "email already exists")
		} else if !errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Error("Register: email lookup failed: %v", err)
			return nil, fmt.Errorf("%w: Register - email lookup: %v", ErrInternal, err)
		}
	}

	if ve.HasErrors() {
		s.logger.Warn("Register: validation failed for username=%s: %v", req.Username, ve)
		return nil, ve
	}

	hash, err := s.hasher.Hash([]byte(req.Password))
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		NICNumber:    req.NICNumber,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		// Гонка с параллельной регистрацией: уникальные индексы ловят остаток
		switch {
		case errors.Is(err, userRepo.ErrUsernameTaken):
			ve.Add("username", "username already exists")
			return nil, ve
		case errors.Is(err, userRepo.ErrEmailTaken):
			ve.Add("email", "email already exists")
			return nil, ve
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := s.tokens.Issue(created.ID, string(created.Role))
	if err != nil {
		s.logger.Error("Register: failed to issue token for user=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Register - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created user id=%d username=%s", created.ID, created.Username)
	return &AuthResponse{Token: token, User: FromDomainUser(created)}, nil
}

// Login проверяет учетные данные и выдает токен
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	s.logger.Info("Login: username=%s", req.Username)

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown username=%s", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := s.hasher.Compare([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for username=%s", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("Login: failed to issue token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d authenticated", user.ID)
	return &AuthResponse{Token: token, User: FromDomainUser(user)}, nil
}

// GetProfile возвращает профиль пользователя со сводкой его бронирований
func (s *Service) GetProfile(ctx context.Context, userID int64) (*ProfileResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	count, spent, err := s.stats.TotalsByCustomer(ctx, userID)
	if err != nil {
		s.logger.Error("GetProfile: booking totals failed for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - booking totals: %v", ErrInternal, err)
	}

	return &ProfileResponse{
		User:          FromDomainUser(user),
		TotalBookings: count,
		TotalSpent:    spent,
	}, nil
}

func validateRegister(req *RegisterRequest) *domain.ValidationError {
	ve := domain.NewValidationError()

	if strings.TrimSpace(req.FullName) == "" {
		ve.Add("fullName", "full name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		ve.Add("email", "email is required")
	} else if !strings.Contains(req.Email, "@") {
		ve.Add("email", "email is not valid")
	}
	if strings.TrimSpace(req.Username) == "" {
		ve.Add("username", "username is required")
	}
	if len(req.Password) < 6 {
		ve.Add("password", "password must be at least 6 characters")
	}

	return ve
}
