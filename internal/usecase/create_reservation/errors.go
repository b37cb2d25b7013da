package create_reservation

import "errors"

var (
	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrRestaurantClosed возвращается, когда ресторан закрыт в указанный день
	ErrRestaurantClosed = errors.New("create_reservation: restaurant is closed on this date")

	// ErrOutsideOpeningHours возвращается, когда время вне рабочего окна дня
	ErrOutsideOpeningHours = errors.New("create_reservation: time is outside opening hours")

	// ErrSlotNotAvailable возвращается, когда все столы на это время заняты
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrTooLateToBook возвращается, когда гость нарушает минимальный запас времени до брони
	ErrTooLateToBook = errors.New("create_reservation: too late to book this slot")

	// ErrTooManyGuests возвращается, когда гостей больше, чем вмещает стол
	ErrTooManyGuests = errors.New("create_reservation: too many guests for one table")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
