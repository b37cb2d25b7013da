package get_reservations

import (
	"net/url"
	"time"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	"github.com/m04kA/GH-ReservationService/internal/service/reservations/models"
)

// ToServiceRequest создает запрос сервиса из query параметров.
// Оба фильтра опциональны: без даты возвращаются все бронирования.
func ToServiceRequest(query url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}
