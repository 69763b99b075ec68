package payments

import "errors"

var (
	// ErrSessionNotCreated возвращается, когда шлюз отказал в создании checkout-сессии
	ErrSessionNotCreated = errors.New("payments client: failed to create checkout session")

	// ErrInvalidAmount возвращается при некорректной сумме платежа
	ErrInvalidAmount = errors.New("payments client: invalid payment amount")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")
)
