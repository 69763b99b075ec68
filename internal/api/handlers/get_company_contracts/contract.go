package get_company_contracts

import (
	"context"

	"github.com/m04kA/CWS-PassService/internal/service/contracts/models"
)

type ContractService interface {
	ListCompanyContracts(ctx context.Context, companyID int64) (*models.ContractListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
