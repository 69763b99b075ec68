package confirm_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/CWS-PassService/internal/domain"
	bookingRepo "github.com/m04kA/CWS-PassService/internal/infra/storage/booking"
	selectionRepo "github.com/m04kA/CWS-PassService/internal/infra/storage/selection"
	sel "github.com/m04kA/CWS-PassService/internal/selection"
)

// UseCase use case обработки callback платежного шлюза.
// Успех подтверждает бронирование и удаляет снимок выбора; отмена
// отменяет бронирование и забирает снимок для восстановления диалога.
// Снимок одноразовый: повторный callback отмены получает ErrSnapshotGone.
type UseCase struct {
	bookingRepo   BookingRepository
	selectionRepo SelectionRepository
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookings BookingRepository,
	selections SelectionRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookings,
		selectionRepo: selections,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute обрабатывает результат платежной сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: token=%s, outcome=%s", req.SelectionToken, req.Outcome)

	if strings.TrimSpace(req.SelectionToken) == "" {
		return nil, fmt.Errorf("%w: selection token is required", ErrInvalidInput)
	}
	if !req.Outcome.IsValid() {
		return nil, fmt.Errorf("%w: unknown outcome %q", ErrInvalidInput, req.Outcome)
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Находим бронирование по токену
		booking, err := uc.bookingRepo.GetBySelectionToken(txCtx, req.SelectionToken)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ConfirmPayment: no booking for token=%s", req.SelectionToken)
				return ErrBookingNotFound
			}
			uc.logger.Error("ConfirmPayment: failed to get booking by token: %v", err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Повторный callback после разрешения статуса - отказ
		if !booking.AwaitsPayment() {
			uc.logger.Warn("ConfirmPayment: booking id=%d already resolved (status=%s)",
				booking.ID, booking.Status)
			return ErrAlreadyResolved
		}

		switch req.Outcome {
		case OutcomeSuccess:
			return uc.confirm(txCtx, booking, &result)
		default:
			return uc.cancel(txCtx, booking, &result)
		}
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmPayment: booking id=%d resolved to %s", result.BookingID, result.Status)

	return result, nil
}

// confirm подтверждает оплату: снимок больше не нужен
func (uc *UseCase) confirm(ctx context.Context, booking *domain.PassBooking, result **Response) error {
	if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusConfirmed); err != nil {
		uc.logger.Error("ConfirmPayment: failed to confirm booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
	}

	if err := uc.selectionRepo.Delete(ctx, booking.SelectionToken); err != nil {
		uc.logger.Error("ConfirmPayment: failed to delete snapshot for token=%s: %v",
			booking.SelectionToken, err)
		return fmt.Errorf("%w: failed to delete snapshot: %v", ErrInternal, err)
	}

	*result = &Response{
		BookingID: booking.ID,
		Status:    string(domain.BookingStatusConfirmed),
	}
	return nil
}

// cancel отменяет бронирование и забирает снимок для восстановления выбора
func (uc *UseCase) cancel(ctx context.Context, booking *domain.PassBooking, result **Response) error {
	if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusCancelled); err != nil {
		uc.logger.Error("ConfirmPayment: failed to cancel booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	snapshot, err := uc.selectionRepo.Take(ctx, booking.SelectionToken)
	if err != nil {
		if errors.Is(err, selectionRepo.ErrSnapshotNotFound) {
			uc.logger.Warn("ConfirmPayment: snapshot for token=%s already consumed", booking.SelectionToken)
			return ErrSnapshotGone
		}
		uc.logger.Error("ConfirmPayment: failed to take snapshot for token=%s: %v",
			booking.SelectionToken, err)
		return fmt.Errorf("%w: failed to take snapshot: %v", ErrInternal, err)
	}

	// Снимок сериализуемый и восстанавливается без потерь
	if _, err := sel.FromSnapshot(*snapshot); err != nil {
		uc.logger.Error("ConfirmPayment: stored snapshot for token=%s is corrupt: %v",
			booking.SelectionToken, err)
		return fmt.Errorf("%w: stored snapshot is corrupt: %v", ErrInternal, err)
	}

	*result = &Response{
		BookingID:         booking.ID,
		Status:            string(domain.BookingStatusCancelled),
		RestoredSelection: snapshot,
	}
	return nil
}
