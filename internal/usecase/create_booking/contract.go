package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/CWS-PassService/internal/domain"
	"github.com/m04kA/CWS-PassService/internal/integrations/payments"
	sel "github.com/m04kA/CWS-PassService/internal/selection"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.PassBooking) (*domain.PassBooking, error)
	GetResource(ctx context.Context, id int64) (*domain.Resource, error)
	MaxBookedSeatsPerDay(ctx context.Context, resourceID int64, dates []time.Time) (int, error)
}

// SelectionRepository интерфейс хранилища снимков выбора
type SelectionRepository interface {
	Save(ctx context.Context, token string, snapshot sel.Snapshot) error
}

// PaymentsClient интерфейс клиента платежного шлюза
type PaymentsClient interface {
	CreateCheckoutSession(ctx context.Context, req *payments.CheckoutRequest) (*payments.CheckoutSession, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
