package domain

import "time"

// ContractStatus represents the administrative status of a company contract
type ContractStatus string

const (
	ContractStatusActive     ContractStatus = "active"
	ContractStatusSuspended  ContractStatus = "suspended"
	ContractStatusTerminated ContractStatus = "terminated"
)

// Contract represents a company-level purchase of a fixed number of seats
// for a date range. A company accumulates contracts over time (history).
type Contract struct {
	ID         int64
	CompanyID  int64
	PlanID     int64
	TotalSeats int
	StartDate  time.Time
	EndDate    *time.Time // nil = бессрочный контракт
	Status     ContractStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpenEnded returns true if the contract has no end date
func (c *Contract) IsOpenEnded() bool {
	return c.EndDate == nil
}

// CountsTowardQuota returns true if the contract's seats count toward
// the company's user quota
func (c *Contract) CountsTowardQuota() bool {
	return c.Status == ContractStatusActive
}

// SeatAssignment links a user to the contract occupying one of its seats.
// ContractID == nil means the user holds no seat.
type SeatAssignment struct {
	UserID     int64
	ContractID *int64
}

// SeatUsage is the derived per-contract seat occupancy
type SeatUsage struct {
	ContractID    int64
	AssignedSeats int
	TotalSeats    int
}

// IsFull returns true if the contract has no seat headroom left
func (u SeatUsage) IsFull() bool {
	return u.AssignedSeats >= u.TotalSeats
}

// ComputeSeatUsage подсчитывает занятость мест по каждому контракту.
// AssignedSeats - число назначений, ссылающихся на контракт.
func ComputeSeatUsage(contracts []*Contract, assignments []SeatAssignment) []SeatUsage {
	counts := make(map[int64]int, len(contracts))
	for _, a := range assignments {
		if a.ContractID == nil {
			continue
		}
		counts[*a.ContractID]++
	}

	usage := make([]SeatUsage, 0, len(contracts))
	for _, c := range contracts {
		usage = append(usage, SeatUsage{
			ContractID:    c.ID,
			AssignedSeats: counts[c.ID],
			TotalSeats:    c.TotalSeats,
		})
	}

	return usage
}

// CanAddUser reports whether a company may add one more active user.
// A user may be added only while the active head count is strictly below
// the total purchased seats across the company's contracts.
func CanAddUser(activeUserCount, totalSeatsAcrossContracts int) bool {
	return totalSeatsAcrossContracts > 0 && activeUserCount < totalSeatsAcrossContracts
}
