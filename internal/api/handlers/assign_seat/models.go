package assign_seat

import (
	assignSeat "github.com/m04kA/CWS-PassService/internal/usecase/assign_seat"
)

// AssignSeatRequest HTTP request model
type AssignSeatRequest struct {
	// Целевой контракт; null снимает назначение
	ContractID *int64 `json:"contractId"`
}

// AssignSeatResponse HTTP response model
type AssignSeatResponse struct {
	UserID        int64  `json:"userId"`
	ContractID    *int64 `json:"contractId"`
	AssignedSeats int    `json:"assignedSeats"`
	TotalSeats    int    `json:"totalSeats"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AssignSeatRequest) ToUseCaseRequest(userID int64) *assignSeat.Request {
	return &assignSeat.Request{
		UserID:     userID,
		ContractID: r.ContractID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignSeat.Response) *AssignSeatResponse {
	return &AssignSeatResponse{
		UserID:        resp.UserID,
		ContractID:    resp.ContractID,
		AssignedSeats: resp.AssignedSeats,
		TotalSeats:    resp.TotalSeats,
	}
}
