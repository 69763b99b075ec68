package selection

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	sel "github.com/m04kA/CWS-PassService/internal/selection"
	"github.com/m04kA/CWS-PassService/pkg/dbmetrics"
	"github.com/m04kA/CWS-PassService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository хранилище снимков выбора на время редиректа на платежный шлюз.
// Снимок одноразовый: Take удаляет его атомарно с чтением, повторное
// восстановление невозможно.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория снимков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет снимок выбора под токеном
func (r *Repository) Save(ctx context.Context, token string, snapshot sel.Snapshot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("saved_selections").
		Columns("token", "payload").
		Values(token, payload).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Take читает и удаляет снимок одним запросом (DELETE ... RETURNING).
// Возвращает ErrSnapshotNotFound, если снимок отсутствует или уже забран.
func (r *Repository) Take(ctx context.Context, token string) (*sel.Snapshot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("saved_selections").
		Where(squirrel.Eq{"token": token}).
		Suffix("RETURNING payload").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Take - build delete query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Take - execute delete: %v", ErrExecQuery, err)
	}

	var snapshot sel.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: Take - unmarshal: %v", ErrDecode, err)
	}

	return &snapshot, nil
}

// Delete удаляет снимок после успешной оплаты (отсутствие не считается ошибкой)
func (r *Repository) Delete(ctx context.Context, token string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("saved_selections").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
