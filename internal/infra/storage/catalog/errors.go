package catalog

import "errors"

var (
	// ErrNotFound возвращается, когда элемент справочника не найден
	ErrNotFound = errors.New("catalog.repository: item not found")

	// ErrInUse возвращается при удалении элемента, на который ссылаются другие записи
	ErrInUse = errors.New("catalog.repository: item is referenced")

	// ErrDuplicate возвращается при нарушении уникальности (например, имя породы)
	ErrDuplicate = errors.New("catalog.repository: duplicate item")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
