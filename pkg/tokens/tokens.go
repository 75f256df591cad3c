package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken возвращается, когда токен не прошел валидацию
	ErrInvalidToken = errors.New("tokens: invalid token")

	// ErrTokenExpired возвращается, когда срок действия токена истек
	ErrTokenExpired = errors.New("tokens: token expired")
)

// Claims полезная нагрузка access-токена
type Claims struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет подписанные JWT access-токены
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager создает менеджер токенов с HMAC-подписью
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue выпускает подписанный токен для пользователя
func (m *Manager) Issue(userID int64, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("tokens: failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse валидирует подпись и срок действия токена, возвращает claims
func (m *Manager) Parse(signed string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		signed,
		&Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return m.secret, nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
