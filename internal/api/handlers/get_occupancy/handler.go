package get_occupancy

import (
	"errors"
	"net/http"

	"github.com/m04kA/CWS-PassService/internal/api/handlers"
	"github.com/m04kA/CWS-PassService/internal/domain"
	getOccupancy "github.com/m04kA/CWS-PassService/internal/usecase/get_occupancy"
)

const (
	msgInvalidWindow = "некорректное окно отчета, ожидается today, week или month"
)

type Handler struct {
	useCase GetOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/occupancy?window=week
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Окно по умолчанию - неделя
	window := r.URL.Query().Get("window")
	if window == "" {
		window = string(domain.WindowWeek)
	}

	result, err := h.useCase.Execute(r.Context(), &getOccupancy.Request{
		Window: domain.OccupancyWindow(window),
	})
	if err != nil {
		switch {
		case errors.Is(err, getOccupancy.ErrInvalidWindow):
			h.logger.Warn("GET /occupancy - Invalid window: %s", window)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /occupancy - Failed to get occupancy: window=%s, error=%v", window, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /occupancy - Occupancy retrieved: window=%s, sites=%d", window, len(result.Sites))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
