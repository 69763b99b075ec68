package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveSubscriptionStatus_Boundaries(t *testing.T) {
	today := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	day := func(offset int) *time.Time {
		d := today.AddDate(0, 0, offset)
		return &d
	}

	tests := []struct {
		name     string
		endDate  *time.Time
		expected SubscriptionStatus
	}{
		{"без даты окончания", nil, SubscriptionActive},
		{"окончание сегодня", day(0), SubscriptionInactive},
		{"окончание вчера", day(-1), SubscriptionInactive},
		{"окончание завтра", day(1), SubscriptionExpiring},
		{"окончание через 30 дней", day(30), SubscriptionExpiring},
		{"окончание через 31 день", day(31), SubscriptionActive},
		{"окончание через год", day(365), SubscriptionActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveSubscriptionStatus(tt.endDate, today))
		})
	}
}

func TestResolveSubscriptionStatus_DayGranularity(t *testing.T) {
	// Время суток не влияет на классификацию
	today := time.Date(2025, time.June, 2, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 2, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, SubscriptionInactive, ResolveSubscriptionStatus(&end, today))
}

func TestResolveSubscriptionStatus_MixedZones(t *testing.T) {
	montreal := time.FixedZone("UTC-5", -5*60*60)

	// Окончание в тот же календарный день в поясе западнее UTC:
	// сравниваются календарные дни, а не инстанты полуночей
	today := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 2, 10, 0, 0, 0, montreal)

	assert.Equal(t, SubscriptionInactive, ResolveSubscriptionStatus(&end, today))

	// Граница горизонта в 30 дней тоже не зависит от пояса
	end30 := time.Date(2025, time.July, 2, 10, 0, 0, 0, montreal)
	assert.Equal(t, SubscriptionExpiring, ResolveSubscriptionStatus(&end30, today))
}

func TestComputeSeatUsage(t *testing.T) {
	contracts := []*Contract{
		{ID: 1, CompanyID: 10, TotalSeats: 2},
		{ID: 2, CompanyID: 10, TotalSeats: 3},
	}
	c1, c2 := int64(1), int64(2)
	assignments := []SeatAssignment{
		{UserID: 100, ContractID: &c1},
		{UserID: 101, ContractID: &c1},
		{UserID: 102, ContractID: &c2},
		{UserID: 103, ContractID: nil}, // без места
	}

	usage := ComputeSeatUsage(contracts, assignments)

	assert.Equal(t, []SeatUsage{
		{ContractID: 1, AssignedSeats: 2, TotalSeats: 2},
		{ContractID: 2, AssignedSeats: 1, TotalSeats: 3},
	}, usage)
	assert.True(t, usage[0].IsFull())
	assert.False(t, usage[1].IsFull())
}

func TestCanAddUser(t *testing.T) {
	// Компания с контрактами на 2 и 3 места: 5 активных пользователей - лимит
	assert.False(t, CanAddUser(5, 5))
	assert.True(t, CanAddUser(4, 5))

	// Без купленных мест добавление запрещено
	assert.False(t, CanAddUser(0, 0))
}
