package get_admin_slots

import (
	"time"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/GH-ReservationService/internal/usecase/get_available_slots"
)

// AdminSlotsResponse HTTP response model
// Админке достаточно флага занятости: счётчики столов в календаре не нужны
type AdminSlotsResponse struct {
	Date  string      `json:"date"`
	Slots []AdminSlot `json:"slots"`
}

// AdminSlot модель временного слота для ручной брони
type AdminSlot struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AdminSlotsResponse {
	slots := make([]AdminSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AdminSlot{
			StartTime: slot.StartTime.String(),
			Available: slot.Available,
		}
	}

	return &AdminSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Режим staff: минимальный запас времени до брони не применяется
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date: date,
		Mode: getAvailableSlots.ModeStaff,
	}, nil
}
