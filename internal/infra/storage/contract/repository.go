package contract

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CWS-PassService/internal/domain"
	"github.com/m04kA/CWS-PassService/pkg/dbmetrics"
	"github.com/m04kA/CWS-PassService/pkg/psqlbuilder"
)

// Repository репозиторий контрактов и назначений мест.
// Назначение места хранится прямо в строке пользователя (users.contract_id).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория контрактов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var contractColumns = []string{
	"id",
	"company_id",
	"plan_id",
	"total_seats",
	"start_date",
	"end_date",
	"status",
	"created_at",
	"updated_at",
}

// GetByID получает контракт по ID.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Contract, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(contractColumns...).
		From("contracts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	contract, err := scanContract(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrContractNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	return contract, nil
}

// ListByCompany получает все контракты компании (история включительно),
// отсортированные по дате начала по убыванию
func (r *Repository) ListByCompany(ctx context.Context, companyID int64) ([]*domain.Contract, error) {
	return r.listByCompany(ctx, companyID, false)
}

// ListActiveByCompany получает только активные контракты компании.
// Используется при подсчете квоты пользователей.
func (r *Repository) ListActiveByCompany(ctx context.Context, companyID int64) ([]*domain.Contract, error) {
	return r.listByCompany(ctx, companyID, true)
}

func (r *Repository) listByCompany(ctx context.Context, companyID int64, onlyActive bool) ([]*domain.Contract, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(contractColumns...).
		From("contracts").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("start_date DESC")

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"status": domain.ContractStatusActive})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: listByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listByCompany - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	contracts := make([]*domain.Contract, 0)
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: listByCompany - scan: %v", ErrScanRow, err)
		}
		contracts = append(contracts, contract)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listByCompany - rows: %v", ErrExecQuery, err)
	}

	return contracts, nil
}

// CountAssignedSeats подсчитывает число пользователей, закрепленных за контрактом.
// Вызывается внутри сериализуемой транзакции вместе с записью назначения,
// чтобы проверка и запись были атомарны.
func (r *Repository) CountAssignedSeats(ctx context.Context, contractID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("users").
		Where(squirrel.Eq{"contract_id": contractID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountAssignedSeats - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountAssignedSeats - execute select: %v", ErrExecQuery, err)
	}

	return count, nil
}

// ListAssignments получает назначения мест всех пользователей компании
func (r *Repository) ListAssignments(ctx context.Context, companyID int64) ([]domain.SeatAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "contract_id").
		From("users").
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAssignments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAssignments - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	assignments := make([]domain.SeatAssignment, 0)
	for rows.Next() {
		var a domain.SeatAssignment
		var contractID sql.NullInt64
		if err := rows.Scan(&a.UserID, &contractID); err != nil {
			return nil, fmt.Errorf("%w: ListAssignments - scan: %v", ErrScanRow, err)
		}
		if contractID.Valid {
			a.ContractID = &contractID.Int64
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAssignments - rows: %v", ErrExecQuery, err)
	}

	return assignments, nil
}

// GetUser получает пользователя по ID
func (r *Repository) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"name",
		"email",
		"contract_id",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("users").
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUser - build select query: %v", ErrBuildQuery, err)
	}

	var user domain.User
	var contractID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.CompanyID,
		&user.Name,
		&user.Email,
		&contractID,
		&user.IsActive,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetUser - scan: %v", ErrScanRow, err)
	}

	if contractID.Valid {
		user.ContractID = &contractID.Int64
	}
	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return &user, nil
}

// UpdateUserContract закрепляет место пользователя за контрактом
// (contractID == nil снимает назначение)
func (r *Repository) UpdateUserContract(ctx context.Context, userID int64, contractID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("contract_id", contractID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateUserContract - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateUserContract - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateUserContract - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// CountActiveUsers подсчитывает активных пользователей компании.
// Вызывается внутри сериализуемой транзакции вместе с созданием пользователя.
func (r *Repository) CountActiveUsers(ctx context.Context, companyID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("users").
		Where(squirrel.Eq{"company_id": companyID, "is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveUsers - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveUsers - execute select: %v", ErrExecQuery, err)
	}

	return count, nil
}

// CreateUser создает пользователя компании
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("company_id", "name", "email", "is_active").
		Values(user.CompanyID, user.Name, user.Email, user.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateUser - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&user.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateUser - execute insert: %v", ErrExecQuery, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return user, nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanContract(row scanner) (*domain.Contract, error) {
	var contract domain.Contract
	var endDate sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&contract.ID,
		&contract.CompanyID,
		&contract.PlanID,
		&contract.TotalSeats,
		&contract.StartDate,
		&endDate,
		&contract.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if endDate.Valid {
		contract.EndDate = &endDate.Time
	}
	contract.CreatedAt = createdAt.Time
	contract.UpdatedAt = updatedAt.Time

	return &contract, nil
}
