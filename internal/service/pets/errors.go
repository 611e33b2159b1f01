package pets

import "errors"

var (
	// ErrPetNotFound возвращается, когда питомец не найден
	ErrPetNotFound = errors.New("pets: pet not found")

	// ErrOwnerNotFound возвращается, когда владелец или порода не существуют
	ErrOwnerNotFound = errors.New("pets: owner or breed not found")

	// ErrPetInUse возвращается при удалении питомца с записями
	ErrPetInUse = errors.New("pets: pet has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pets: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pets: internal error")
)
