package models

import (
	"time"

	"github.com/m04kA/CWS-PassService/internal/domain"
)

// ContractResponse ответ с данными контракта и производными полями
type ContractResponse struct {
	ID         int64   `json:"id"`
	CompanyID  int64   `json:"companyId"`
	PlanID     int64   `json:"planId"`
	TotalSeats int     `json:"totalSeats"`
	StartDate  string  `json:"startDate"`         // "2025-01-01"
	EndDate    *string `json:"endDate,omitempty"` // nil - бессрочный

	Status string `json:"status"` // Административный статус

	// Производные поля; не хранятся, пересчитываются на каждое чтение
	SubscriptionStatus string `json:"subscriptionStatus"` // active | expiring | inactive
	AssignedSeats      int    `json:"assignedSeats"`
}

// ContractListResponse ответ со списком контрактов компании
type ContractListResponse struct {
	Contracts []ContractResponse `json:"contracts"`
}

// FromDomainContract конвертирует domain модель в DTO
func FromDomainContract(c *domain.Contract, usage domain.SeatUsage, today time.Time) ContractResponse {
	resp := ContractResponse{
		ID:                 c.ID,
		CompanyID:          c.CompanyID,
		PlanID:             c.PlanID,
		TotalSeats:         c.TotalSeats,
		StartDate:          c.StartDate.Format(domain.DateFormat),
		Status:             string(c.Status),
		SubscriptionStatus: string(domain.ResolveSubscriptionStatus(c.EndDate, today)),
		AssignedSeats:      usage.AssignedSeats,
	}

	if c.EndDate != nil {
		end := c.EndDate.Format(domain.DateFormat)
		resp.EndDate = &end
	}

	return resp
}
