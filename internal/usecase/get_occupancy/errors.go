package get_occupancy

import "errors"

var (
	// ErrInvalidWindow возвращается при неизвестном окне отчета
	ErrInvalidWindow = errors.New("get_occupancy: invalid occupancy window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_occupancy: internal error")
)
