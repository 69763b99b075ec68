package contracts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-PassService/internal/domain"
	"github.com/m04kA/CWS-PassService/pkg/ptr"
)

type fakeRepo struct {
	contracts   []*domain.Contract
	assignments []domain.SeatAssignment
}

func (f *fakeRepo) ListByCompany(_ context.Context, companyID int64) ([]*domain.Contract, error) {
	var out []*domain.Contract
	for _, c := range f.contracts {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAssignments(_ context.Context, _ int64) ([]domain.SeatAssignment, error) {
	return f.assignments, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var today = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func endingIn(days int) *time.Time {
	return ptr.Ptr(today.AddDate(0, 0, days))
}

func TestListCompanyContracts(t *testing.T) {
	repo := &fakeRepo{
		contracts: []*domain.Contract{
			{ID: 1, CompanyID: 10, PlanID: 1, TotalSeats: 5,
				StartDate: today.AddDate(-1, 0, 0), EndDate: endingIn(200),
				Status: domain.ContractStatusActive},
			{ID: 2, CompanyID: 10, PlanID: 2, TotalSeats: 3,
				StartDate: today.AddDate(0, -6, 0), EndDate: endingIn(14),
				Status: domain.ContractStatusActive},
			{ID: 3, CompanyID: 10, PlanID: 1, TotalSeats: 2,
				StartDate: today.AddDate(-2, 0, 0), EndDate: endingIn(-30),
				Status: domain.ContractStatusTerminated},
			{ID: 4, CompanyID: 10, PlanID: 3, TotalSeats: 1,
				StartDate: today, Status: domain.ContractStatusActive},
		},
		assignments: []domain.SeatAssignment{
			{UserID: 100, ContractID: ptr.Ptr(int64(1))},
			{UserID: 101, ContractID: ptr.Ptr(int64(1))},
			{UserID: 102, ContractID: ptr.Ptr(int64(2))},
			{UserID: 103, ContractID: nil},
		},
	}

	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fixedTime{now: today}

	resp, err := svc.ListCompanyContracts(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, resp.Contracts, 4)

	byID := make(map[int64]int, len(resp.Contracts))
	for i, c := range resp.Contracts {
		byID[c.ID] = i
	}

	// Далекая дата окончания - active
	assert.Equal(t, "active", resp.Contracts[byID[1]].SubscriptionStatus)
	assert.Equal(t, 2, resp.Contracts[byID[1]].AssignedSeats)

	// Окончание в пределах 30 дней - expiring
	assert.Equal(t, "expiring", resp.Contracts[byID[2]].SubscriptionStatus)
	assert.Equal(t, 1, resp.Contracts[byID[2]].AssignedSeats)

	// Истекший контракт остается в истории со статусом inactive
	assert.Equal(t, "inactive", resp.Contracts[byID[3]].SubscriptionStatus)

	// Без даты окончания - active, свободных назначений нет
	assert.Equal(t, "active", resp.Contracts[byID[4]].SubscriptionStatus)
	assert.Equal(t, 0, resp.Contracts[byID[4]].AssignedSeats)
	assert.Nil(t, resp.Contracts[byID[4]].EndDate)
}

func TestListCompanyContracts_EmptyHistory(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})
	svc.timeProvider = fixedTime{now: today}

	resp, err := svc.ListCompanyContracts(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, resp.Contracts)
}

func TestListCompanyContracts_InvalidCompany(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.ListCompanyContracts(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
