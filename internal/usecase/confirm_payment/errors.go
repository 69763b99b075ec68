package confirm_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда токен не соответствует
	// ни одному бронированию
	ErrBookingNotFound = errors.New("confirm_payment: booking not found")

	// ErrAlreadyResolved возвращается при повторном callback для бронирования,
	// уже выведенного из ожидания оплаты
	ErrAlreadyResolved = errors.New("confirm_payment: booking is no longer awaiting payment")

	// ErrSnapshotGone возвращается, когда снимок выбора уже забран:
	// восстановление выбора одноразовое
	ErrSnapshotGone = errors.New("confirm_payment: selection snapshot already consumed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
