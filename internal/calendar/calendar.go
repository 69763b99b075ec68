// Package calendar вычисляет французские государственные праздники и
// последовательности рабочих дней. Все функции чистые и детерминированные,
// состояние между вызовами не сохраняется.
package calendar

import "time"

// HolidaySet множество праздничных дат, нормализованных до дня
type HolidaySet map[time.Time]struct{}

// Normalize обнуляет время, оставляя дату на дневной гранулярности (UTC)
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// easterSunday вычисляет дату Пасхи по анонимному григорианскому алгоритму.
// Только целочисленная арифметика, корректно для любого григорианского года.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// HolidaysForYear возвращает 11 государственных праздников Франции за год:
// 8 с фиксированной датой и 3 относительно Пасхи (понедельник Пасхи +1,
// Вознесение +39, Духов день +50).
func HolidaysForYear(year int) []time.Time {
	easter := easterSunday(year)

	return []time.Time{
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),   // Новый год
		easter.AddDate(0, 0, 1),                                  // Понедельник Пасхи
		time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC),       // Праздник труда
		time.Date(year, time.May, 8, 0, 0, 0, 0, time.UTC),       // День Победы 1945
		easter.AddDate(0, 0, 39),                                 // Вознесение
		easter.AddDate(0, 0, 50),                                 // Духов день
		time.Date(year, time.July, 14, 0, 0, 0, 0, time.UTC),     // Национальный праздник
		time.Date(year, time.August, 15, 0, 0, 0, 0, time.UTC),   // Успение
		time.Date(year, time.November, 1, 0, 0, 0, 0, time.UTC),  // День всех святых
		time.Date(year, time.November, 11, 0, 0, 0, 0, time.UTC), // Перемирие 1918
		time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC), // Рождество
	}
}

// Holidays собирает множество праздников за перечисленные годы.
// Для проходов NextBusinessDays достаточно текущего и следующего года.
func Holidays(years ...int) HolidaySet {
	set := make(HolidaySet, len(years)*11)
	for _, year := range years {
		for _, d := range HolidaysForYear(year) {
			set[d] = struct{}{}
		}
	}
	return set
}

// IsHoliday возвращает true, если дата входит в множество праздников
func (s HolidaySet) IsHoliday(date time.Time) bool {
	_, ok := s[Normalize(date)]
	return ok
}

// IsBusinessDay возвращает true, если дата не выходной (суббота/воскресенье)
// и не праздник
func IsBusinessDay(date time.Time, holidays HolidaySet) bool {
	weekday := date.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return false
	}
	return !holidays.IsHoliday(date)
}

// NextBusinessDays идет вперед по одному дню начиная со start (включительно)
// и собирает count рабочих дней. Если start - выходной или праздник,
// он пропускается. count == 0 дает пустой результат.
//
// Верхней границы прохода нет: вызывающий обязан передать множество
// праздников, покрывающее диапазон (текущий + следующий год достаточно
// для любого реалистичного count <= 20).
func NextBusinessDays(start time.Time, count int, holidays HolidaySet) []time.Time {
	days := make([]time.Time, 0, count)
	current := Normalize(start)

	for len(days) < count {
		if IsBusinessDay(current, holidays) {
			days = append(days, current)
		}
		current = current.AddDate(0, 0, 1)
	}

	return days
}
