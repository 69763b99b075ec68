package cancel_booking

import (
	"context"

	"github.com/m04kA/CWS-PassService/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
