package add_user

import (
	"context"

	"github.com/m04kA/CWS-PassService/internal/domain"
)

// ContractRepository интерфейс репозитория контрактов и пользователей
type ContractRepository interface {
	ListActiveByCompany(ctx context.Context, companyID int64) ([]*domain.Contract, error)
	CountActiveUsers(ctx context.Context, companyID int64) (int, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
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
