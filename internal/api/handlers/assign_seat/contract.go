package assign_seat

import (
	"context"

	assignSeat "github.com/m04kA/CWS-PassService/internal/usecase/assign_seat"
)

type AssignSeatUseCase interface {
	Execute(ctx context.Context, req *assignSeat.Request) (*assignSeat.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
