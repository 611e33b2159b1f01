package catalog

import "errors"

var (
	// ErrNotFound возвращается, когда элемент справочника не найден
	ErrNotFound = errors.New("catalog: item not found")

	// ErrInUse возвращается при удалении элемента, на который ссылаются записи или питомцы
	ErrInUse = errors.New("catalog: item is in use")

	// ErrDuplicate возвращается при нарушении уникальности
	ErrDuplicate = errors.New("catalog: item already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
