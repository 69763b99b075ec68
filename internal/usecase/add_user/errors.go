package add_user

import "errors"

var (
	// ErrQuotaExceeded возвращается, когда активные пользователи компании
	// уже занимают все места по активным контрактам, в том числе когда
	// активных контрактов нет совсем
	ErrQuotaExceeded = errors.New("add_user: company seat quota exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_user: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_user: internal error")
)
