package domain

// OccupancyWindow is the reporting window for occupancy dashboards
type OccupancyWindow string

const (
	WindowToday OccupancyWindow = "today"
	WindowWeek  OccupancyWindow = "week"
	WindowMonth OccupancyWindow = "month"
)

// IsValid returns true if the window is one of the known values
func (w OccupancyWindow) IsValid() bool {
	return w == WindowToday || w == WindowWeek || w == WindowMonth
}

// PeriodDays returns the fixed working-day approximation for the window.
// Значения фиксированы (1/5/22) и намеренно не вычисляются по календарю.
func (w OccupancyWindow) PeriodDays() int {
	switch w {
	case WindowToday:
		return PeriodDaysToday
	case WindowMonth:
		return PeriodDaysMonth
	default:
		return PeriodDaysWeek
	}
}

// Site represents a coworking location
type Site struct {
	ID   int64
	Name string
}

// Resource represents a bookable unit (desk, office, meeting room) at a site
type Resource struct {
	ID       int64
	SiteID   int64
	SiteName string
	Capacity int // мест в ресурсе; 0 в строке БД трактуется как DefaultResourceCapacity
}

// ResourceBooking is one booked-seats row inside an occupancy window
type ResourceBooking struct {
	ResourceID int64
	Seats      int
}

// SiteOccupancy is the derived occupancy of a single site over a window
type SiteOccupancy struct {
	SiteID           int64
	SiteName         string
	OccupancyPercent int
}
