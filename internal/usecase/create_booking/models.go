package create_booking

import (
	"time"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID int64     // ID клиента
	PetID      *int64    // ID питомца (опционально)
	ServiceID  *int64    // ID услуги из каталога (опционально)
	Service    string    // Название услуги свободным текстом, если услуги нет в каталоге
	Date       time.Time // Дата записи (без времени)
	Time       string    // Время в свободной форме, нормализуется при допуске
	Prize      string    // Мимо
	Status     *string   // Начальный статус; по умолчанию "agendado"
	Notes      string    // Заметки
}
