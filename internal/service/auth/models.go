package auth

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RegisterRequest запрос на регистрацию нового клиента
type RegisterRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	NICNumber   string `json:"nicNumber"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse профиль пользователя (без credential-полей)
type UserResponse struct {
	ID          int64  `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	NICNumber   string `json:"nicNumber"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

// AuthResponse ответ на регистрацию или вход: токен + профиль
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileResponse профиль пользователя со сводкой бронирований
type ProfileResponse struct {
	User          UserResponse `json:"user"`
	TotalBookings int64        `json:"totalBookings"`
	TotalSpent    float64      `json:"totalSpent"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		NICNumber:   u.NICNumber,
		Username:    u.Username,
		Role:        string(u.Role),
	}
}
