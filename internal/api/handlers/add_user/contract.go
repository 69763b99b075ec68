package add_user

import (
	"context"

	addUser "github.com/m04kA/CWS-PassService/internal/usecase/add_user"
)

type AddUserUseCase interface {
	Execute(ctx context.Context, req *addUser.Request) (*addUser.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
