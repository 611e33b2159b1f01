package create_booking

import "errors"

var (
	// ErrPetNotFound возвращается, когда питомец не найден
	ErrPetNotFound = errors.New("create_booking: pet not found")

	// ErrPetNotOwned возвращается, когда питомец принадлежит другому клиенту
	ErrPetNotOwned = errors.New("create_booking: pet belongs to another customer")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrReferenceNotFound возвращается, когда клиент, питомец или услуга исчезли к моменту вставки
	ErrReferenceNotFound = errors.New("create_booking: referenced entity not found")

	// ErrSlotConflict возвращается, когда слот занят параллельной записью
	ErrSlotConflict = errors.New("create_booking: slot was taken concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUnavailable хранилище недоступно, запрос можно повторить
	ErrUnavailable = errors.New("create_booking: storage unavailable, retry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
