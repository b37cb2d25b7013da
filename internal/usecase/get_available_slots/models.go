package get_available_slots

import (
	"time"

	"github.com/m04kA/GH-ReservationService/pkg/types"
)

// Mode определяет, от чьего имени запрашиваются слоты
type Mode string

const (
	// ModeGuest публичный запрос: действует минимальный запас времени до брони
	ModeGuest Mode = "guest"
	// ModeStaff запрос из админки: персонал может бронировать на любое время дня
	ModeStaff Mode = "staff"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
	Mode Mode      // guest или staff
}

// Response модель ответа со списком слотов на дату
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Список слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность бронирования в минутах
	Available       bool             // Есть ли свободные столы
	TablesRemaining int              // Количество свободных столов
	TotalTables     int              // Общее количество столов
}
