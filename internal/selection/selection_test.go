package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-PassService/internal/calendar"
	"github.com/m04kA/CWS-PassService/internal/domain"
	"github.com/m04kA/CWS-PassService/pkg/types"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// now до отсечки: минимальная дата бронирования - сегодня
var beforeCutoff = time.Date(2025, time.January, 2, 10, 0, 0, 0, time.UTC)

func holidays() calendar.HolidaySet {
	return calendar.Holidays(2025, 2026)
}

func TestNew(t *testing.T) {
	sel, err := New(domain.PassTypeDay)
	require.NoError(t, err)

	assert.Equal(t, domain.PassTypeDay, sel.PassType)
	assert.Equal(t, 1, sel.Seats)
	assert.Empty(t, sel.Dates)
	assert.False(t, sel.CGVAccepted)

	_, err = New(domain.PassType("year"))
	assert.ErrorIs(t, err, ErrInvalidPassType)
}

func TestMinBookableDate_Cutoff(t *testing.T) {
	// До 18:00 - сегодня
	before := time.Date(2025, time.March, 3, 17, 59, 0, 0, time.UTC)
	assert.Equal(t, date(2025, time.March, 3), MinBookableDate(before))

	// Ровно 18:00 и позже - завтра
	at := time.Date(2025, time.March, 3, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, date(2025, time.March, 4), MinBookableDate(at))

	after := time.Date(2025, time.March, 3, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, date(2025, time.March, 4), MinBookableDate(after))
}

func TestSwitchPassType_ClearsDates(t *testing.T) {
	sel, _ := New(domain.PassTypeDay)
	require.NoError(t, sel.ToggleDate(date(2025, time.January, 6), beforeCutoff, holidays()))
	require.Len(t, sel.Dates, 1)
	sel.SetCGVAccepted(true)

	require.NoError(t, sel.SwitchPassType(domain.PassTypeWeek))

	assert.Empty(t, sel.Dates, "переключение режима всегда сбрасывает даты")
	assert.Equal(t, domain.PassTypeWeek, sel.PassType)
	// Места и флаг условий переключение не трогает
	assert.True(t, sel.CGVAccepted)
	assert.Equal(t, 1, sel.Seats)
}

func TestToggleDate_AddRemoveSorted(t *testing.T) {
	sel, _ := New(domain.PassTypeDay)
	h := holidays()

	require.NoError(t, sel.ToggleDate(date(2025, time.January, 8), beforeCutoff, h))
	require.NoError(t, sel.ToggleDate(date(2025, time.January, 6), beforeCutoff, h))
	require.NoError(t, sel.ToggleDate(date(2025, time.January, 10), beforeCutoff, h))

	assert.Equal(t, []time.Time{
		date(2025, time.January, 6),
		date(2025, time.January, 8),
		date(2025, time.January, 10),
	}, sel.Dates, "даты отсортированы после каждой мутации")

	// Повторный toggle убирает дату
	require.NoError(t, sel.ToggleDate(date(2025, time.January, 8), beforeCutoff, h))
	assert.Equal(t, []time.Time{
		date(2025, time.January, 6),
		date(2025, time.January, 10),
	}, sel.Dates)
}

func TestToggleDate_Rejections(t *testing.T) {
	h := holidays()

	tests := []struct {
		name     string
		date     time.Time
		expected error
	}{
		{"суббота", date(2025, time.January, 4), ErrDateNotBookable},
		{"праздник", date(2025, time.May, 1), ErrDateNotBookable},
		{"дата в прошлом", date(2025, time.January, 1), ErrDateInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, _ := New(domain.PassTypeDay)
			err := sel.ToggleDate(tt.date, beforeCutoff, h)
			assert.ErrorIs(t, err, tt.expected)
			assert.Empty(t, sel.Dates, "отклонение не меняет состояние")
		})
	}
}

func TestToggleDate_WrongMode(t *testing.T) {
	sel, _ := New(domain.PassTypeWeek)
	err := sel.ToggleDate(date(2025, time.January, 6), beforeCutoff, holidays())
	assert.ErrorIs(t, err, ErrWrongMode)
}

func TestSelectAnchor_WeekRun(t *testing.T) {
	// Сценарий: клик по понедельнику 6 января 2025 в режиме week
	// дает ровно 6-10 января (праздников в диапазоне нет)
	sel, _ := New(domain.PassTypeWeek)

	require.NoError(t, sel.SelectAnchor(date(2025, time.January, 6), beforeCutoff, holidays()))

	assert.Equal(t, []time.Time{
		date(2025, time.January, 6),
		date(2025, time.January, 7),
		date(2025, time.January, 8),
		date(2025, time.January, 9),
		date(2025, time.January, 10),
	}, sel.Dates)
}

func TestSelectAnchor_MonthRun(t *testing.T) {
	sel, _ := New(domain.PassTypeMonth)

	require.NoError(t, sel.SelectAnchor(date(2025, time.January, 6), beforeCutoff, holidays()))

	require.Len(t, sel.Dates, 20)
	h := holidays()
	for _, d := range sel.Dates {
		assert.True(t, calendar.IsBusinessDay(d, h))
	}
}

func TestSelectAnchor_SecondClickRecomputes(t *testing.T) {
	sel, _ := New(domain.PassTypeWeek)
	h := holidays()

	require.NoError(t, sel.SelectAnchor(date(2025, time.January, 6), beforeCutoff, h))
	first := append([]time.Time(nil), sel.Dates...)

	// Повторный клик по тому же якорю - свежее вычисление, не toggle
	require.NoError(t, sel.SelectAnchor(date(2025, time.January, 6), beforeCutoff, h))
	assert.Equal(t, first, sel.Dates)
}

func TestSelectAnchor_Rejections(t *testing.T) {
	sel, _ := New(domain.PassTypeWeek)
	h := holidays()

	assert.ErrorIs(t, sel.SelectAnchor(date(2025, time.January, 5), beforeCutoff, h), ErrDateNotBookable)
	assert.ErrorIs(t, sel.SelectAnchor(date(2024, time.December, 30), beforeCutoff, h), ErrDateInPast)
	assert.Empty(t, sel.Dates)

	day, _ := New(domain.PassTypeDay)
	assert.ErrorIs(t, day.SelectAnchor(date(2025, time.January, 6), beforeCutoff, h), ErrWrongMode)
}

func TestSeats_Bounds(t *testing.T) {
	sel, _ := New(domain.PassTypeDay)

	assert.ErrorIs(t, sel.DecrementSeats(), ErrSeatsOutOfRange)
	assert.Equal(t, 1, sel.Seats)

	for i := 0; i < 5; i++ {
		require.NoError(t, sel.IncrementSeats())
	}
	assert.Equal(t, 6, sel.Seats)

	// Свыше 6 мест выбор отклоняется (путь в отдел продаж)
	assert.ErrorIs(t, sel.IncrementSeats(), ErrSeatsOutOfRange)
	assert.Equal(t, 6, sel.Seats)
}

func TestCanSubmit(t *testing.T) {
	sel, _ := New(domain.PassTypeDay)

	assert.ErrorIs(t, sel.CanSubmit(), ErrNothingSelected)

	require.NoError(t, sel.ToggleDate(date(2025, time.January, 6), beforeCutoff, holidays()))
	assert.ErrorIs(t, sel.CanSubmit(), ErrCGVNotAccepted)

	sel.SetCGVAccepted(true)
	assert.ErrorIs(t, sel.CanSubmit(), ErrSiteRequired)

	sel.SetSite(42)
	assert.NoError(t, sel.CanSubmit())
}

func TestReset(t *testing.T) {
	sel, _ := New(domain.PassTypeDay)
	require.NoError(t, sel.ToggleDate(date(2025, time.January, 6), beforeCutoff, holidays()))
	sel.SetCGVAccepted(true)
	sel.SetSite(42)
	require.NoError(t, sel.IncrementSeats())

	sel.Reset()

	assert.Empty(t, sel.Dates)
	assert.Equal(t, 1, sel.Seats)
	assert.False(t, sel.CGVAccepted)
	assert.Nil(t, sel.SiteID)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	sel, _ := New(domain.PassTypeDay)
	h := holidays()
	require.NoError(t, sel.ToggleDate(date(2025, time.January, 6), beforeCutoff, h))
	require.NoError(t, sel.ToggleDate(date(2025, time.January, 9), beforeCutoff, h))
	require.NoError(t, sel.IncrementSeats())
	sel.SetCGVAccepted(true)
	sel.SetSite(7)

	snap := sel.Snapshot()
	assert.Equal(t, "day", snap.PassType)
	assert.Equal(t, []string{"2025-01-06", "2025-01-09"}, []string{snap.Dates[0].String(), snap.Dates[1].String()})

	restored, err := FromSnapshot(snap)
	require.NoError(t, err)

	assert.Equal(t, sel.PassType, restored.PassType)
	assert.Equal(t, sel.Seats, restored.Seats)
	assert.Equal(t, sel.Dates, restored.Dates)
	assert.Equal(t, sel.CGVAccepted, restored.CGVAccepted)
	assert.Equal(t, sel.SiteID, restored.SiteID)
}

func TestFromSnapshot_Invalid(t *testing.T) {
	_, err := FromSnapshot(Snapshot{PassType: "year", Seats: 1})
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = FromSnapshot(Snapshot{PassType: "day", Seats: 7})
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = FromSnapshot(Snapshot{PassType: "day", Seats: 2, Dates: []types.DateString{"06.01.2025"}})
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}

func TestFromSnapshot_RejectsDuplicateAndUnsortedDates(t *testing.T) {
	// Даты снимка - упорядоченное множество; клиентский снимок не доверенный
	_, err := FromSnapshot(Snapshot{
		PassType: "day",
		Seats:    2,
		Dates:    []types.DateString{"2025-01-07", "2025-01-06", "2025-01-06"},
	})
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = FromSnapshot(Snapshot{
		PassType: "day",
		Seats:    2,
		Dates:    []types.DateString{"2025-01-06", "2025-01-06"},
	})
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = FromSnapshot(Snapshot{
		PassType: "day",
		Seats:    2,
		Dates:    []types.DateString{"2025-01-07", "2025-01-06"},
	})
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}

func TestFromSnapshot_AnchoredDatesMustFormRun(t *testing.T) {
	// Корректная серия: пять рабочих дней с понедельника 2025-01-06
	run := []types.DateString{"2025-01-06", "2025-01-07", "2025-01-08", "2025-01-09", "2025-01-10"}
	_, err := FromSnapshot(Snapshot{PassType: "week", Seats: 1, Dates: run})
	require.NoError(t, err)

	// Неполная серия
	_, err = FromSnapshot(Snapshot{PassType: "week", Seats: 1, Dates: run[:3]})
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	// Суббота 2025-01-11 вместо пятницы: не серия рабочих дней от якоря
	broken := []types.DateString{"2025-01-06", "2025-01-07", "2025-01-08", "2025-01-09", "2025-01-11"}
	_, err = FromSnapshot(Snapshot{PassType: "week", Seats: 1, Dates: broken})
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	// Пустой набор дат - валидное промежуточное состояние диалога
	_, err = FromSnapshot(Snapshot{PassType: "month", Seats: 1})
	require.NoError(t, err)
}

func TestUnitCount(t *testing.T) {
	day, _ := New(domain.PassTypeDay)
	require.NoError(t, day.ToggleDate(date(2025, time.January, 6), beforeCutoff, holidays()))
	require.NoError(t, day.ToggleDate(date(2025, time.January, 7), beforeCutoff, holidays()))
	assert.Equal(t, 2, day.UnitCount())

	week, _ := New(domain.PassTypeWeek)
	require.NoError(t, week.SelectAnchor(date(2025, time.January, 6), beforeCutoff, holidays()))
	assert.Equal(t, 1, week.UnitCount(), "week тарифицируется одной единицей")
}
