package assign_seat

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("assign_seat: user not found")

	// ErrContractNotFound возвращается, когда контракт не найден
	ErrContractNotFound = errors.New("assign_seat: contract not found")

	// ErrCrossCompanyAssignment возвращается при попытке закрепить пользователя
	// за контрактом чужой компании. Никогда не применяется частично.
	ErrCrossCompanyAssignment = errors.New("assign_seat: contract belongs to another company")

	// ErrContractFull возвращается, когда все места контракта заняты
	ErrContractFull = errors.New("assign_seat: contract has no seat headroom")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_seat: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_seat: internal error")
)
