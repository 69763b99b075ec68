package quote_pass

import "errors"

var (
	// ErrInvalidSelection возвращается при некорректном снимке выбора
	ErrInvalidSelection = errors.New("quote_pass: invalid selection")
)
