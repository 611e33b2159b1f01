package normalize_time

import "errors"

var (
	// ErrInvalidInput возвращается, когда не указана дата
	ErrInvalidInput = errors.New("normalize_time: invalid input data")

	// ErrInvalidTime возвращается, когда время не распознано
	ErrInvalidTime = errors.New("normalize_time: invalid time")

	// ErrUnavailable хранилище недоступно, запрос можно повторить
	ErrUnavailable = errors.New("normalize_time: storage unavailable, retry")
)
