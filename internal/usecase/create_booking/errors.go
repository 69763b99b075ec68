package create_booking

import "errors"

var (
	// ErrInvalidSelection возвращается при некорректном или неполном выборе
	// (поврежденный снимок, пустые даты, неверное число дат для типа пропуска)
	ErrInvalidSelection = errors.New("create_booking: invalid selection")

	// ErrCGVNotAccepted возвращается, когда условия обслуживания не приняты
	ErrCGVNotAccepted = errors.New("create_booking: terms of service not accepted")

	// ErrDateNotBookable возвращается, когда дата выбора уже недоступна:
	// прошла, попала под отсечку 18:00, выходной или праздник
	ErrDateNotBookable = errors.New("create_booking: selection contains a date that is no longer bookable")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrResourceFull возвращается, когда на один из выбранных дней
	// не хватает свободных мест ресурса
	ErrResourceFull = errors.New("create_booking: resource has no free seats on a selected day")

	// ErrPaymentUnavailable возвращается, когда платежный шлюз не смог
	// создать checkout-сессию
	ErrPaymentUnavailable = errors.New("create_booking: payment gateway is unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
