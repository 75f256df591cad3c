package auth

import "golang.org/x/crypto/bcrypt"

// BcryptHasher реализация PasswordHasher поверх bcrypt
// Пароли хранятся только в виде соленого одностороннего хеша
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher создает хешер с указанной стоимостью
// cost <= 0 означает bcrypt.DefaultCost
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash хеширует пароль
func (h *BcryptHasher) Hash(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, h.cost)
}

// Compare сверяет хеш с паролем
func (h *BcryptHasher) Compare(hash, password []byte) error {
	return bcrypt.CompareHashAndPassword(hash, password)
}
