package create_reservation

import (
	"time"

	"github.com/m04kA/GH-ReservationService/pkg/types"
)

// Source определяет, кто создает бронирование
type Source string

const (
	// SourceGuest публичная форма: бронь создается в статусе pending,
	// действует минимальный запас времени, гостю уходит письмо
	SourceGuest Source = "guest"
	// SourceStaff ручная бронь из админки: сразу confirmed, без ограничений
	// по времени и без писем
	SourceStaff Source = "staff"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date            time.Time        // Дата бронирования (без времени)
	Time            types.TimeString // Время начала (например, "18:30")
	Name            string           // Имя гостя
	Email           string           // Email гостя
	Phone           *string          // Телефон (опционально)
	Guests          int              // Количество гостей
	SpecialRequests *string          // Пожелания (опционально)
	Source          Source           // guest или staff
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	Date            time.Time        // Дата бронирования
	Time            types.TimeString // Время начала
	Name            string           // Имя гостя
	Email           string           // Email гостя
	Phone           *string          // Телефон
	Guests          int              // Количество гостей
	SpecialRequests *string          // Пожелания
	Status          string           // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
