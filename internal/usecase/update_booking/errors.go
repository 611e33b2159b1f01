package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrPetNotFound возвращается, когда питомец не найден
	ErrPetNotFound = errors.New("update_booking: pet not found")

	// ErrPetNotOwned возвращается, когда питомец принадлежит другому клиенту
	ErrPetNotOwned = errors.New("update_booking: pet belongs to another customer")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("update_booking: service not found")

	// ErrReferenceNotFound возвращается, когда клиент, питомец или услуга не существуют
	ErrReferenceNotFound = errors.New("update_booking: referenced entity not found")

	// ErrSlotConflict возвращается, когда слот занят параллельной записью
	ErrSlotConflict = errors.New("update_booking: slot was taken concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrUnavailable хранилище недоступно, запрос можно повторить
	ErrUnavailable = errors.New("update_booking: storage unavailable, retry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
