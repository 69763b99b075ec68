package get_company_contracts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-PassService/internal/api/handlers"
	"github.com/m04kA/CWS-PassService/internal/service/contracts"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
)

type Handler struct {
	service ContractService
	logger  Logger
}

func NewHandler(service ContractService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/contracts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{companyId}/contracts - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	result, err := h.service.ListCompanyContracts(r.Context(), companyID)
	if err != nil {
		switch {
		case errors.Is(err, contracts.ErrInvalidInput):
			h.logger.Warn("GET /companies/{companyId}/contracts - Invalid input: company_id=%d", companyID)
			handlers.RespondBadRequest(w, msgInvalidCompanyID)

		default:
			h.logger.Error("GET /companies/{companyId}/contracts - Failed to list contracts: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{companyId}/contracts - Contracts retrieved: company_id=%d, count=%d",
		companyID, len(result.Contracts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
