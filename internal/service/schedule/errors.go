package schedule

import "errors"

var (
	// ErrDayNotFound возвращается, когда день недели не найден
	ErrDayNotFound = errors.New("weekday not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
