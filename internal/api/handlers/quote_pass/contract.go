package quote_pass

import (
	"context"

	quotePass "github.com/m04kA/CWS-PassService/internal/usecase/quote_pass"
)

type QuotePassUseCase interface {
	Execute(ctx context.Context, req *quotePass.Request) (*quotePass.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
