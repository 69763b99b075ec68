package assign_seat

import (
	"context"

	"github.com/m04kA/CWS-PassService/internal/domain"
)

// ContractRepository интерфейс репозитория контрактов и назначений
type ContractRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Contract, error)
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	CountAssignedSeats(ctx context.Context, contractID int64) (int, error)
	UpdateUserContract(ctx context.Context, userID int64, contractID *int64) error
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
