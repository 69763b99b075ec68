package confirm_payment

import (
	"context"

	"github.com/m04kA/CWS-PassService/internal/domain"
	sel "github.com/m04kA/CWS-PassService/internal/selection"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetBySelectionToken(ctx context.Context, token string) (*domain.PassBooking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// SelectionRepository интерфейс хранилища снимков выбора
type SelectionRepository interface {
	Take(ctx context.Context, token string) (*sel.Snapshot, error)
	Delete(ctx context.Context, token string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
