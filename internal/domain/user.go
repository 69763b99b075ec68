package domain

import "time"

// User represents a coworking member belonging to a company
type User struct {
	ID        int64
	CompanyID int64
	Name      string
	Email     string

	// ContractID контракт, за которым закреплено место пользователя.
	// nil - место не назначено.
	ContractID *int64

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSeat returns true if the user currently occupies a contract seat
func (u *User) HasSeat() bool {
	return u.ContractID != nil
}

// IsAssignedTo returns true if the user occupies a seat on the given contract
func (u *User) IsAssignedTo(contractID int64) bool {
	return u.ContractID != nil && *u.ContractID == contractID
}
