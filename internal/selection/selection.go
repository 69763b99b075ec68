// Package selection реализует состояние выбора пропуска в процессе
// бронирования: тип пропуска, даты, количество мест, принятие условий.
//
// Состояние - явный сериализуемый value object, все переходы - чистые
// функции над ним. Любое отклонение оставляет состояние неизменным.
package selection

import (
	"sort"
	"time"

	"github.com/m04kA/CWS-PassService/internal/calendar"
	"github.com/m04kA/CWS-PassService/internal/domain"
)

// Selection незавершенный выбор пользователя в диалоге бронирования.
// Живет от открытия диалога до успешной отправки; переживает редирект
// на платежный шлюз только через Snapshot/FromSnapshot.
type Selection struct {
	PassType    domain.PassType
	Seats       int
	Dates       []time.Time // нормализованы до дня, отсортированы по возрастанию
	CGVAccepted bool
	SiteID      *int64
}

// New создает пустой выбор для указанного типа пропуска
func New(passType domain.PassType) (*Selection, error) {
	if !passType.IsValid() {
		return nil, ErrInvalidPassType
	}
	return &Selection{
		PassType: passType,
		Seats:    domain.MinSeats,
		Dates:    []time.Time{},
	}, nil
}

// MinBookableDate возвращает минимальную дату, доступную для бронирования:
// сегодня, если текущее время раньше часа отсечки (18:00 локального времени),
// иначе завтра. Поведение отсечки фиксировано - см. DESIGN.md.
func MinBookableDate(now time.Time) time.Time {
	day := calendar.Normalize(now)
	if now.Hour() >= domain.SameDayCutoffHour {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// SwitchPassType переключает тип пропуска.
// Выбранные даты всегда сбрасываются - переноса между режимами нет.
func (s *Selection) SwitchPassType(passType domain.PassType) error {
	if !passType.IsValid() {
		return ErrInvalidPassType
	}
	s.PassType = passType
	s.Dates = []time.Time{}
	return nil
}

// ToggleDate добавляет дату, если ее нет, и убирает, если есть.
// Доступно только в режиме day; даты остаются отсортированными.
func (s *Selection) ToggleDate(date time.Time, now time.Time, holidays calendar.HolidaySet) error {
	if s.PassType != domain.PassTypeDay {
		return ErrWrongMode
	}

	day := calendar.Normalize(date)

	// Снятие уже выбранной даты разрешено всегда
	for i, d := range s.Dates {
		if d.Equal(day) {
			s.Dates = append(s.Dates[:i], s.Dates[i+1:]...)
			return nil
		}
	}

	if err := validateBookableDate(day, now, holidays); err != nil {
		return err
	}

	s.Dates = append(s.Dates, day)
	sort.Slice(s.Dates, func(i, j int) bool { return s.Dates[i].Before(s.Dates[j]) })
	return nil
}

// SelectAnchor заменяет весь выбор на непрерывный набор рабочих дней
// от опорной даты: 5 для week, 20 для month. Повторный клик по тому же
// якорю - свежее вычисление, не toggle.
func (s *Selection) SelectAnchor(anchor time.Time, now time.Time, holidays calendar.HolidaySet) error {
	if !s.PassType.IsAnchored() {
		return ErrWrongMode
	}

	day := calendar.Normalize(anchor)
	if err := validateBookableDate(day, now, holidays); err != nil {
		return err
	}

	s.Dates = calendar.NextBusinessDays(day, s.PassType.RunLength(), holidays)
	return nil
}

// IncrementSeats увеличивает количество мест в границах [1, 6].
// Выше лимита выбор отклоняется - пользователь направляется в отдел продаж.
func (s *Selection) IncrementSeats() error {
	if s.Seats >= domain.MaxSeats {
		return ErrSeatsOutOfRange
	}
	s.Seats++
	return nil
}

// DecrementSeats уменьшает количество мест в границах [1, 6]
func (s *Selection) DecrementSeats() error {
	if s.Seats <= domain.MinSeats {
		return ErrSeatsOutOfRange
	}
	s.Seats--
	return nil
}

// SetCGVAccepted выставляет флаг принятия условий обслуживания
func (s *Selection) SetCGVAccepted(accepted bool) {
	s.CGVAccepted = accepted
}

// SetSite выбирает площадку
func (s *Selection) SetSite(siteID int64) {
	s.SiteID = &siteID
}

// Reset сбрасывает выбор к начальному состоянию текущего режима
func (s *Selection) Reset() {
	s.Dates = []time.Time{}
	s.Seats = domain.MinSeats
	s.CGVAccepted = false
	s.SiteID = nil
}

// UnitCount число тарифицируемых единиц: количество выбранных дней для day,
// 1 для week/month
func (s *Selection) UnitCount() int {
	if s.PassType == domain.PassTypeDay {
		return len(s.Dates)
	}
	return 1
}

// CanSubmit проверяет предусловия отправки: есть выбранные даты,
// приняты условия, выбрана площадка. Возвращает первую нарушенную проверку.
func (s *Selection) CanSubmit() error {
	if len(s.Dates) == 0 {
		return ErrNothingSelected
	}
	if !s.CGVAccepted {
		return ErrCGVNotAccepted
	}
	if s.SiteID == nil {
		return ErrSiteRequired
	}
	return nil
}

// validateBookableDate общая проверка даты для обоих режимов:
// не раньше минимальной даты бронирования, не выходной, не праздник
func validateBookableDate(day time.Time, now time.Time, holidays calendar.HolidaySet) error {
	if day.Before(MinBookableDate(now)) {
		return ErrDateInPast
	}
	if !calendar.IsBusinessDay(day, holidays) {
		return ErrDateNotBookable
	}
	return nil
}
