package contracts

import (
	"context"
	"time"

	"github.com/m04kA/CWS-PassService/internal/domain"
)

// ContractRepository интерфейс репозитория контрактов
type ContractRepository interface {
	ListByCompany(ctx context.Context, companyID int64) ([]*domain.Contract, error)
	ListAssignments(ctx context.Context, companyID int64) ([]domain.SeatAssignment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
