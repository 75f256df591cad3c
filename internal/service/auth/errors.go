package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре логин/пароль
	// Не раскрывает, что именно не совпало
	ErrInvalidCredentials = errors.New("auth: invalid username or password")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
