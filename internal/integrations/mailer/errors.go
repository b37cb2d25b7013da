package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе почтового API
	ErrInvalidResponse = errors.New("mailer client: invalid response")

	// ErrUnknownKind возвращается при неизвестном виде письма
	ErrUnknownKind = errors.New("mailer client: unknown email kind")
)
