package add_user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-PassService/internal/domain"
)

type fakeRepo struct {
	contracts []*domain.Contract
	users     []*domain.User
	nextID    int64
}

func (f *fakeRepo) ListActiveByCompany(_ context.Context, companyID int64) ([]*domain.Contract, error) {
	var out []*domain.Contract
	for _, c := range f.contracts {
		if c.CompanyID == companyID && c.CountsTowardQuota() {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountActiveUsers(_ context.Context, companyID int64) (int, error) {
	n := 0
	for _, u := range f.users {
		if u.CompanyID == companyID && u.IsActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	f.nextID++
	created := *user
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.users = append(f.users, &created)
	return &created, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func contract(id, companyID int64, seats int, status domain.ContractStatus) *domain.Contract {
	return &domain.Contract{ID: id, CompanyID: companyID, TotalSeats: seats, Status: status}
}

func activeUser(companyID int64) *domain.User {
	return &domain.User{CompanyID: companyID, IsActive: true}
}

func TestExecute_AddsUserWithinQuota(t *testing.T) {
	// Два контракта на 2 и 3 места, занято 4 из 5
	repo := &fakeRepo{
		contracts: []*domain.Contract{
			contract(1, 10, 2, domain.ContractStatusActive),
			contract(2, 10, 3, domain.ContractStatusActive),
		},
		users: []*domain.User{
			activeUser(10), activeUser(10), activeUser(10), activeUser(10),
		},
		nextID: 100,
	}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CompanyID: 10,
		Email:     "fifth@corp.example",
		FullName:  "Fifth Member",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.UserID)
	assert.Equal(t, 5, resp.ActiveUsers)
	assert.Equal(t, 5, resp.TotalSeats)
}

func TestExecute_QuotaExceeded(t *testing.T) {
	// 5 активных пользователей на 5 мест - шестой не проходит
	repo := &fakeRepo{
		contracts: []*domain.Contract{
			contract(1, 10, 2, domain.ContractStatusActive),
			contract(2, 10, 3, domain.ContractStatusActive),
		},
		users: []*domain.User{
			activeUser(10), activeUser(10), activeUser(10), activeUser(10), activeUser(10),
		},
	}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		CompanyID: 10,
		Email:     "sixth@corp.example",
		FullName:  "Sixth Member",
	})
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Len(t, repo.users, 5, "rejected add must not create a user")
}

func TestExecute_SuspendedContractsDoNotCount(t *testing.T) {
	// Из двух контрактов активен только один на 2 места
	repo := &fakeRepo{
		contracts: []*domain.Contract{
			contract(1, 10, 2, domain.ContractStatusActive),
			contract(2, 10, 10, domain.ContractStatusSuspended),
		},
		users: []*domain.User{activeUser(10), activeUser(10)},
	}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		CompanyID: 10,
		Email:     "extra@corp.example",
		FullName:  "Extra Member",
	})
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestExecute_NoActiveContractsMeansZeroQuota(t *testing.T) {
	repo := &fakeRepo{
		contracts: []*domain.Contract{
			contract(1, 10, 5, domain.ContractStatusTerminated),
		},
	}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		CompanyID: 10,
		Email:     "any@corp.example",
		FullName:  "Any Member",
	})
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Empty(t, repo.users)
}

func TestExecute_InactiveUsersFreeQuota(t *testing.T) {
	// Деактивированный пользователь квоту не занимает
	inactive := activeUser(10)
	inactive.IsActive = false
	repo := &fakeRepo{
		contracts: []*domain.Contract{contract(1, 10, 1, domain.ContractStatusActive)},
		users:     []*domain.User{inactive},
	}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CompanyID: 10,
		Email:     "replacement@corp.example",
		FullName:  "Replacement Member",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ActiveUsers)
	assert.Equal(t, 1, resp.TotalSeats)
}

func TestExecute_ValidatesInput(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, fakeTxManager{}, nopLogger{})

	cases := []struct {
		name string
		req  *Request
	}{
		{"zero company", &Request{CompanyID: 0, Email: "a@b.c", FullName: "A"}},
		{"empty email", &Request{CompanyID: 1, Email: "  ", FullName: "A"}},
		{"empty name", &Request{CompanyID: 1, Email: "a@b.c", FullName: ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
