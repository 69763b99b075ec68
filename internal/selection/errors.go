package selection

import "errors"

var (
	// ErrInvalidPassType возвращается при неизвестном типе пропуска
	ErrInvalidPassType = errors.New("selection: invalid pass type")

	// ErrWrongMode возвращается, когда переход не соответствует режиму выбора
	// (toggle только для day, anchor только для week/month)
	ErrWrongMode = errors.New("selection: transition not allowed in this pass mode")

	// ErrDateInPast возвращается для даты раньше минимальной даты бронирования
	// (сегодня до 18:00, иначе завтра)
	ErrDateInPast = errors.New("selection: date is before the minimum bookable date")

	// ErrDateNotBookable возвращается для выходного или праздничного дня
	ErrDateNotBookable = errors.New("selection: date is a weekend or a public holiday")

	// ErrSeatsOutOfRange возвращается при выходе количества мест за границы [1, 6]
	ErrSeatsOutOfRange = errors.New("selection: seats count out of allowed range")

	// ErrNothingSelected возвращается при попытке отправить пустой выбор
	ErrNothingSelected = errors.New("selection: no dates selected")

	// ErrCGVNotAccepted возвращается, когда условия обслуживания не приняты
	ErrCGVNotAccepted = errors.New("selection: terms of service not accepted")

	// ErrSiteRequired возвращается, когда площадка не выбрана
	ErrSiteRequired = errors.New("selection: site is not chosen")

	// ErrInvalidSnapshot возвращается при восстановлении из поврежденного снимка
	ErrInvalidSnapshot = errors.New("selection: invalid snapshot")
)
