package pet

import "errors"

var (
	// ErrPetNotFound возвращается, когда питомец не найден
	ErrPetNotFound = errors.New("pet.repository: pet not found")

	// ErrReferenceNotFound возвращается, когда владелец или порода не существуют
	ErrReferenceNotFound = errors.New("pet.repository: owner or breed not found")

	// ErrPetInUse возвращается при удалении питомца, на которого ссылаются записи
	ErrPetInUse = errors.New("pet.repository: pet is referenced")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pet.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pet.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pet.repository: failed to scan row")
)
