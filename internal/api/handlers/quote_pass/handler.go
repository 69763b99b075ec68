package quote_pass

import (
	"errors"
	"net/http"

	"github.com/m04kA/CWS-PassService/internal/api/handlers"
	quotePass "github.com/m04kA/CWS-PassService/internal/usecase/quote_pass"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSelection   = "некорректный выбор пропуска"
)

type Handler struct {
	useCase QuotePassUseCase
	logger  Logger
}

func NewHandler(useCase QuotePassUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/passes/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /passes/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quotePass.ErrInvalidSelection):
			h.logger.Warn("POST /passes/quote - Invalid selection: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		default:
			h.logger.Error("POST /passes/quote - Failed to quote pass: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
