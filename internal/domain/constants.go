package domain

// Seat selection limits
const (
	// MinSeats минимальное количество мест в одном бронировании
	MinSeats = 1
	// MaxSeats максимальное количество мест в одном бронировании.
	// Свыше этого лимита выбор отклоняется, пользователь направляется в отдел продаж.
	MaxSeats = 6
)

// Pass run lengths in business days
const (
	WeekPassBusinessDays  = 5
	MonthPassBusinessDays = 20
)

// SameDayCutoffHour час, после которого бронирование на сегодня закрыто.
// До 18:00 минимальная дата бронирования - сегодня, после - завтра.
const SameDayCutoffHour = 18

// ExpiringHorizonDays горизонт, в пределах которого контракт считается истекающим
const ExpiringHorizonDays = 30

// Occupancy window approximations in working days
const (
	PeriodDaysToday = 1
	PeriodDaysWeek  = 5
	PeriodDaysMonth = 22
)

// DefaultResourceCapacity вместимость ресурса, если она не указана
const DefaultResourceCapacity = 1

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveBookingStatuses список статусов неактивных бронирований.
// Используется при подсчете занятости площадок.
var InactiveBookingStatuses = []BookingStatus{
	BookingStatusCancelled,
	BookingStatusExpired,
}
