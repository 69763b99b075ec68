package contracts

import (
	"context"
	"fmt"

	"github.com/m04kA/CWS-PassService/internal/domain"
	"github.com/m04kA/CWS-PassService/internal/service/contracts/models"
)

// Service сервис чтения контрактов компании.
// Статус подписки и занятость мест - производные значения,
// пересчитываются на каждый запрос.
type Service struct {
	contractRepo ContractRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса контрактов
func NewService(contractRepo ContractRepository, logger Logger) *Service {
	return &Service{
		contractRepo: contractRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListCompanyContracts получает историю контрактов компании со статусом
// подписки и занятостью мест по каждому контракту
func (s *Service) ListCompanyContracts(ctx context.Context, companyID int64) (*models.ContractListResponse, error) {
	s.logger.Info("ListCompanyContracts: fetching contracts for company=%d", companyID)

	if companyID <= 0 {
		return nil, fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	contracts, err := s.contractRepo.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("ListCompanyContracts: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: ListCompanyContracts - repository error: %v", ErrInternal, err)
	}

	assignments, err := s.contractRepo.ListAssignments(ctx, companyID)
	if err != nil {
		s.logger.Error("ListCompanyContracts: failed to list assignments for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: ListCompanyContracts - failed to list assignments: %v", ErrInternal, err)
	}

	usage := domain.ComputeSeatUsage(contracts, assignments)
	usageByContract := make(map[int64]domain.SeatUsage, len(usage))
	for _, u := range usage {
		usageByContract[u.ContractID] = u
	}

	today := s.timeProvider.Now()
	resp := &models.ContractListResponse{
		Contracts: make([]models.ContractResponse, 0, len(contracts)),
	}
	for _, c := range contracts {
		resp.Contracts = append(resp.Contracts, models.FromDomainContract(c, usageByContract[c.ID], today))
	}

	s.logger.Info("ListCompanyContracts: fetched %d contracts for company=%d", len(resp.Contracts), companyID)
	return resp, nil
}
