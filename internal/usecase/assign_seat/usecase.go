package assign_seat

import (
	"context"
	"errors"
	"fmt"

	contractRepo "github.com/m04kA/CWS-PassService/internal/infra/storage/contract"
)

// UseCase use case закрепления места пользователя за контрактом.
// Проверка свободных мест и запись выполняются в одной сериализуемой
// транзакции: инвариант "занято <= куплено" держится под конкурентными
// запросами за счет БД, сам usecase мьютексов не содержит.
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

// Execute выполняет закрепление или снятие места.
// Правила:
//   - снятие (ContractID == nil) разрешено всегда;
//   - контракт должен принадлежать компании пользователя;
//   - повторное закрепление за тем же контрактом - идемпотентный no-op;
//   - закрепление за заполненным контрактом отклоняется, существующее
//     назначение не меняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignSeat: user=%d, contract=%v", req.UserID, req.ContractID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.ContractID != nil && *req.ContractID <= 0 {
		return nil, fmt.Errorf("%w: contractID must be positive", ErrInvalidInput)
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем пользователя
		user, err := uc.contractRepo.GetUser(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, contractRepo.ErrUserNotFound) {
				uc.logger.Warn("AssignSeat: user id=%d not found", req.UserID)
				return ErrUserNotFound
			}
			uc.logger.Error("AssignSeat: failed to get user id=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
		}

		// 2. Снятие назначения разрешено всегда
		if req.ContractID == nil {
			if err := uc.contractRepo.UpdateUserContract(txCtx, req.UserID, nil); err != nil {
				uc.logger.Error("AssignSeat: failed to detach user id=%d: %v", req.UserID, err)
				return fmt.Errorf("%w: failed to detach user: %v", ErrInternal, err)
			}
			result = &Response{UserID: req.UserID}
			return nil
		}

		// 3. Получаем целевой контракт
		contract, err := uc.contractRepo.GetByID(txCtx, *req.ContractID)
		if err != nil {
			if errors.Is(err, contractRepo.ErrContractNotFound) {
				uc.logger.Warn("AssignSeat: contract id=%d not found", *req.ContractID)
				return ErrContractNotFound
			}
			uc.logger.Error("AssignSeat: failed to get contract id=%d: %v", *req.ContractID, err)
			return fmt.Errorf("%w: failed to get contract: %v", ErrInternal, err)
		}

		// 4. Контракт чужой компании - отказ без частичного применения
		if contract.CompanyID != user.CompanyID {
			uc.logger.Warn("AssignSeat: cross-company assignment rejected: user=%d (company=%d), contract=%d (company=%d)",
				user.ID, user.CompanyID, contract.ID, contract.CompanyID)
			return ErrCrossCompanyAssignment
		}

		assigned, err := uc.contractRepo.CountAssignedSeats(txCtx, contract.ID)
		if err != nil {
			uc.logger.Error("AssignSeat: failed to count assigned seats for contract id=%d: %v", contract.ID, err)
			return fmt.Errorf("%w: failed to count assigned seats: %v", ErrInternal, err)
		}

		// 5. Пользователь уже на этом контракте - идемпотентный no-op,
		// проверка заполненности не применяется
		if user.IsAssignedTo(contract.ID) {
			uc.logger.Info("AssignSeat: user=%d already assigned to contract=%d, no-op", user.ID, contract.ID)
			result = &Response{
				UserID:        user.ID,
				ContractID:    req.ContractID,
				AssignedSeats: assigned,
				TotalSeats:    contract.TotalSeats,
			}
			return nil
		}

		// 6. Проверяем свободные места
		if assigned >= contract.TotalSeats {
			uc.logger.Warn("AssignSeat: contract id=%d is full (%d/%d)", contract.ID, assigned, contract.TotalSeats)
			return ErrContractFull
		}

		// 7. Записываем назначение
		if err := uc.contractRepo.UpdateUserContract(txCtx, user.ID, req.ContractID); err != nil {
			uc.logger.Error("AssignSeat: failed to assign user id=%d to contract id=%d: %v",
				user.ID, contract.ID, err)
			return fmt.Errorf("%w: failed to assign user: %v", ErrInternal, err)
		}

		result = &Response{
			UserID:        user.ID,
			ContractID:    req.ContractID,
			AssignedSeats: assigned + 1,
			TotalSeats:    contract.TotalSeats,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AssignSeat: user=%d now on contract=%v (%d/%d seats)",
		result.UserID, result.ContractID, result.AssignedSeats, result.TotalSeats)

	return result, nil
}
