package domain

import "time"

// Role represents the role of a user in the system
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleCustomer Role = "Customer"
)

// User represents a registered account
type User struct {
	ID          int64
	FullName    string
	Email       string
	PhoneNumber string
	Address     string
	NICNumber   string
	Username    string

	// PasswordHash bcrypt hash of the credential, never the clear text
	PasswordHash string

	Role      Role
	CreatedAt time.Time
}

// IsAdmin returns true if the user has the Admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Identity авторизованный субъект запроса
// Каждая операция принимает его явным параметром вместо чтения ambient-состояния
type Identity struct {
	UserID int64
	Role   Role
}

// IsAdmin returns true if the caller has the Admin role
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IsCustomer returns true if the caller has the Customer role
func (i Identity) IsCustomer() bool {
	return i.Role == RoleCustomer
}
