package add_user

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/CWS-PassService/internal/domain"
)

// UseCase use case добавления пользователя в компанию с проверкой квоты.
// Квота: число активных пользователей строго меньше суммы мест по
// активным контрактам. Подсчет и вставка идут в одной сериализуемой
// транзакции, чтобы два параллельных добавления не пробили лимит.
type UseCase struct {
	contractRepo ContractRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(contractRepo ContractRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		contractRepo: contractRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute добавляет активного пользователя, если квота компании позволяет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddUser: company=%d, email=%s", req.CompanyID, req.Email)

	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Суммируем места по активным контрактам компании
		contracts, err := uc.contractRepo.ListActiveByCompany(txCtx, req.CompanyID)
		if err != nil {
			uc.logger.Error("AddUser: failed to list contracts for company id=%d: %v", req.CompanyID, err)
			return fmt.Errorf("%w: failed to list contracts: %v", ErrInternal, err)
		}

		totalSeats := 0
		for _, c := range contracts {
			totalSeats += c.TotalSeats
		}

		// 2. Считаем активных пользователей
		activeUsers, err := uc.contractRepo.CountActiveUsers(txCtx, req.CompanyID)
		if err != nil {
			uc.logger.Error("AddUser: failed to count active users for company id=%d: %v", req.CompanyID, err)
			return fmt.Errorf("%w: failed to count active users: %v", ErrInternal, err)
		}

		// 3. Проверяем квоту
		if !domain.CanAddUser(activeUsers, totalSeats) {
			uc.logger.Warn("AddUser: quota exceeded for company id=%d (%d/%d)",
				req.CompanyID, activeUsers, totalSeats)
			return ErrQuotaExceeded
		}

		// 4. Создаем пользователя
		user, err := uc.contractRepo.CreateUser(txCtx, &domain.User{
			CompanyID: req.CompanyID,
			Name:      req.FullName,
			Email:     req.Email,
			IsActive:  true,
		})
		if err != nil {
			uc.logger.Error("AddUser: failed to create user for company id=%d: %v", req.CompanyID, err)
			return fmt.Errorf("%w: failed to create user: %v", ErrInternal, err)
		}

		result = &Response{
			UserID:      user.ID,
			CompanyID:   req.CompanyID,
			ActiveUsers: activeUsers + 1,
			TotalSeats:  totalSeats,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AddUser: created user id=%d for company=%d (%d/%d seats used)",
		result.UserID, result.CompanyID, result.ActiveUsers, result.TotalSeats)

	return result, nil
}

func (uc *UseCase) validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	return nil
}
