package create_admin_reservation

import (
	"time"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	createReservation "github.com/m04kA/GH-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/GH-ReservationService/pkg/types"
)

// CreateAdminReservationRequest HTTP request model
// Ручная бронь из админки: сразу confirmed, письма не отправляются
type CreateAdminReservationRequest struct {
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	Guests          int     `json:"guests"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CreateAdminReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Date:            date,
		Time:            types.TimeString(r.Time),
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
		Source:          createReservation.SourceStaff,
	}, nil
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	Guests          int     `json:"guests"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	Status          string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.Time.String(),
		Name:            resp.Name,
		Email:           resp.Email,
		Phone:           resp.Phone,
		Guests:          resp.Guests,
		SpecialRequests: resp.SpecialRequests,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}
