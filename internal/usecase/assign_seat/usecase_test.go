package assign_seat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-PassService/internal/domain"
	contractRepo "github.com/m04kA/CWS-PassService/internal/infra/storage/contract"
	"github.com/m04kA/CWS-PassService/pkg/ptr"
)

// fakeRepo in-memory реализация ContractRepository
type fakeRepo struct {
	contracts map[int64]*domain.Contract
	users     map[int64]*domain.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		contracts: make(map[int64]*domain.Contract),
		users:     make(map[int64]*domain.User),
	}
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Contract, error) {
	c, ok := f.contracts[id]
	if !ok {
		return nil, contractRepo.ErrContractNotFound
	}
	return c, nil
}

func (f *fakeRepo) GetUser(_ context.Context, userID int64) (*domain.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, contractRepo.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepo) CountAssignedSeats(_ context.Context, contractID int64) (int, error) {
	count := 0
	for _, u := range f.users {
		if u.ContractID != nil && *u.ContractID == contractID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) UpdateUserContract(_ context.Context, userID int64, contractID *int64) error {
	u, ok := f.users[userID]
	if !ok {
		return contractRepo.ErrUserNotFound
	}
	u.ContractID = contractID
	return nil
}

// fakeTxManager выполняет fn без реальной транзакции: usecase полагается
// на сериализацию вызовов, собственной взаимоисключаемости у него нет
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(repo *fakeRepo) *UseCase {
	return NewUseCase(repo, fakeTxManager{}, nopLogger{})
}

func (f *fakeRepo) assertInvariant(t *testing.T) {
	t.Helper()
	for id, c := range f.contracts {
		assigned, _ := f.CountAssignedSeats(context.Background(), id)
		assert.LessOrEqual(t, assigned, c.TotalSeats,
			"контракт %d: занято %d из %d", id, assigned, c.TotalSeats)
	}
}

func TestExecute_AssignToFreeSeat(t *testing.T) {
	repo := newFakeRepo()
	repo.contracts[1] = &domain.Contract{ID: 1, CompanyID: 10, TotalSeats: 2}
	repo.users[100] = &domain.User{ID: 100, CompanyID: 10}

	resp, err := newUseCase(repo).Execute(context.Background(), &Request{UserID: 100, ContractID: ptr.Ptr(int64(1))})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.AssignedSeats)
	assert.Equal(t, 2, resp.TotalSeats)
	assert.Equal(t, int64(1), *repo.users[100].ContractID)
	repo.assertInvariant(t)
}

func TestExecute_ContractFull(t *testing.T) {
	// Сценарий: контракт на 3 места, 3 назначения - четвертое отклоняется,
	// таблица назначений не меняется
	repo := newFakeRepo()
	repo.contracts[1] = &domain.Contract{ID: 1, CompanyID: 10, TotalSeats: 3}
	for i := int64(100); i < 103; i++ {
		repo.users[i] = &domain.User{ID: i, CompanyID: 10, ContractID: ptr.Ptr(int64(1))}
	}
	repo.users[103] = &domain.User{ID: 103, CompanyID: 10}

	_, err := newUseCase(repo).Execute(context.Background(), &Request{UserID: 103, ContractID: ptr.Ptr(int64(1))})

	assert.ErrorIs(t, err, ErrContractFull)
	assert.Nil(t, repo.users[103].ContractID, "отклонение не меняет назначения")
	repo.assertInvariant(t)
}

func TestExecute_CrossCompanyRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.contracts[1] = &domain.Contract{ID: 1, CompanyID: 20, TotalSeats: 5}
	repo.users[100] = &domain.User{ID: 100, CompanyID: 10}

	_, err := newUseCase(repo).Execute(context.Background(), &Request{UserID: 100, ContractID: ptr.Ptr(int64(1))})

	assert.ErrorIs(t, err, ErrCrossCompanyAssignment)
	assert.Nil(t, repo.users[100].ContractID)
}

func TestExecute_IdempotentReassignment(t *testing.T) {
	// Пользователь уже на заполненном контракте: повторное закрепление
	// за ним же - no-op, а не ErrContractFull
	repo := newFakeRepo()
	repo.contracts[1] = &domain.Contract{ID: 1, CompanyID: 10, TotalSeats: 1}
	repo.users[100] = &domain.User{ID: 100, CompanyID: 10, ContractID: ptr.Ptr(int64(1))}

	resp, err := newUseCase(repo).Execute(context.Background(), &Request{UserID: 100, ContractID: ptr.Ptr(int64(1))})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.AssignedSeats)
	repo.assertInvariant(t)
}

func TestExecute_DetachAlwaysAllowed(t *testing.T) {
	repo := newFakeRepo()
	repo.contracts[1] = &domain.Contract{ID: 1, CompanyID: 10, TotalSeats: 1}
	repo.users[100] = &domain.User{ID: 100, CompanyID: 10, ContractID: ptr.Ptr(int64(1))}

	resp, err := newUseCase(repo).Execute(context.Background(), &Request{UserID: 100, ContractID: nil})

	require.NoError(t, err)
	assert.Nil(t, resp.ContractID)
	assert.Nil(t, repo.users[100].ContractID)
}

func TestExecute_Reassignment(t *testing.T) {
	// Переход с одного контракта на другой: старый освобождается, новый занимается
	repo := newFakeRepo()
	repo.contracts[1] = &domain.Contract{ID: 1, CompanyID: 10, TotalSeats: 1}
	repo.contracts[2] = &domain.Contract{ID: 2, CompanyID: 10, TotalSeats: 1}
	repo.users[100] = &domain.User{ID: 100, CompanyID: 10, ContractID: ptr.Ptr(int64(1))}

	resp, err := newUseCase(repo).Execute(context.Background(), &Request{UserID: 100, ContractID: ptr.Ptr(int64(2))})

	require.NoError(t, err)
	assert.Equal(t, int64(2), *resp.ContractID)
	assert.Equal(t, int64(2), *repo.users[100].ContractID)
	repo.assertInvariant(t)
}

func TestExecute_InvariantUnderSequence(t *testing.T) {
	// Инвариант "занято <= куплено" держится после любой последовательности
	// операций (успешных и отклоненных) при сериализованном выполнении
	repo := newFakeRepo()
	repo.contracts[1] = &domain.Contract{ID: 1, CompanyID: 10, TotalSeats: 2}
	repo.contracts[2] = &domain.Contract{ID: 2, CompanyID: 10, TotalSeats: 1}
	for i := int64(100); i < 105; i++ {
		repo.users[i] = &domain.User{ID: i, CompanyID: 10}
	}

	uc := newUseCase(repo)
	requests := []Request{
		{UserID: 100, ContractID: ptr.Ptr(int64(1))},
		{UserID: 101, ContractID: ptr.Ptr(int64(1))},
		{UserID: 102, ContractID: ptr.Ptr(int64(1))}, // full
		{UserID: 102, ContractID: ptr.Ptr(int64(2))},
		{UserID: 103, ContractID: ptr.Ptr(int64(2))}, // full
		{UserID: 100, ContractID: nil},
		{UserID: 103, ContractID: ptr.Ptr(int64(1))},
		{UserID: 104, ContractID: ptr.Ptr(int64(1))}, // full again
	}

	for i := range requests {
		_, _ = uc.Execute(context.Background(), &requests[i])
		repo.assertInvariant(t)
	}

	a1, _ := repo.CountAssignedSeats(context.Background(), 1)
	a2, _ := repo.CountAssignedSeats(context.Background(), 2)
	assert.Equal(t, 2, a1)
	assert.Equal(t, 1, a2)
}

func TestExecute_NotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.users[100] = &domain.User{ID: 100, CompanyID: 10}

	_, err := newUseCase(repo).Execute(context.Background(), &Request{UserID: 999, ContractID: nil})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = newUseCase(repo).Execute(context.Background(), &Request{UserID: 100, ContractID: ptr.Ptr(int64(77))})
	assert.ErrorIs(t, err, ErrContractNotFound)
}
