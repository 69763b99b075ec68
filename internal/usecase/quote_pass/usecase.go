package quote_pass

import (
	"context"
	"fmt"

	"github.com/m04kA/CWS-PassService/internal/pricing"
	sel "github.com/m04kA/CWS-PassService/internal/selection"
)

// UseCase use case расчета цены текущего выбора.
// Используется диалогом бронирования для живого пересчета при каждом
// изменении выбора; ничего не записывает.
type UseCase struct {
	rates  pricing.Rates
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(rates pricing.Rates, logger Logger) *UseCase {
	return &UseCase{
		rates:  rates,
		logger: logger,
	}
}

// Execute считает цену выбора.
// Пустой выбор дает нулевую цену - это корректное состояние диалога.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	selection, err := sel.FromSnapshot(req.Selection)
	if err != nil {
		uc.logger.Warn("QuotePass: snapshot rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	quote := uc.rates.ForSelection(selection.PassType, selection.Seats, selection.UnitCount())

	return &Response{
		PassType:  string(selection.PassType),
		Seats:     selection.Seats,
		UnitCount: selection.UnitCount(),
		PreTax:    quote.PreTax.StringFixed(2),
		Tax:       quote.Tax.StringFixed(2),
		Total:     quote.Total.StringFixed(2),
	}, nil
}
