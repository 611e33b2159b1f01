package validate_admission

import "errors"

var (
	// ErrUnavailable хранилище недоступно, запрос можно повторить
	ErrUnavailable = errors.New("validate_admission: storage unavailable, retry")
)
