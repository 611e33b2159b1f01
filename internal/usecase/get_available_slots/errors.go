package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrUnavailable хранилище недоступно, запрос можно повторить
	ErrUnavailable = errors.New("get_available_slots: storage unavailable, retry")
)
