package domain

// PassType represents the duration class of a coworking pass
type PassType string

const (
	PassTypeDay   PassType = "day"
	PassTypeWeek  PassType = "week"
	PassTypeMonth PassType = "month"
)

// IsValid returns true if the pass type is one of the known values
func (p PassType) IsValid() bool {
	return p == PassTypeDay || p == PassTypeWeek || p == PassTypeMonth
}

// IsAnchored returns true if the pass type derives its dates from a single anchor date
// (week and month passes), as opposed to a free multi-select (day pass)
func (p PassType) IsAnchored() bool {
	return p == PassTypeWeek || p == PassTypeMonth
}

// RunLength returns the number of contiguous business days the pass covers.
// For the day pass there is no fixed run, the result is 0.
func (p PassType) RunLength() int {
	switch p {
	case PassTypeWeek:
		return WeekPassBusinessDays
	case PassTypeMonth:
		return MonthPassBusinessDays
	default:
		return 0
	}
}
