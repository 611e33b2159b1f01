package openinghours

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной таблице часов работы
	ErrInvalidInput = errors.New("openinghours: invalid input data")

	// ErrUnavailable хранилище недоступно и нет последней известной копии
	ErrUnavailable = errors.New("openinghours: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("openinghours: internal error")
)
