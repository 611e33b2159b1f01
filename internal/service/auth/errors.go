package auth

import "errors"

var (
	// ErrInvalidCredentials неверное имя пользователя или пароль
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrUnauthorized сессия отсутствует или истекла
	ErrUnauthorized = errors.New("auth: unauthorized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
