package get_occupancy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-PassService/internal/domain"
)

type fakeBookingRepo struct {
	resources []*domain.Resource
	// занятость по запрошенному окну: ключ - число календарных дней окна
	bookedByWindow map[int][]domain.ResourceBooking

	requestedWindows []int
}

func (f *fakeBookingRepo) ListResources(_ context.Context) ([]*domain.Resource, error) {
	return f.resources, nil
}

func (f *fakeBookingRepo) ListBookedSeats(_ context.Context, from, to time.Time) ([]domain.ResourceBooking, error) {
	days := int(to.Sub(from).Hours()/24) + 1
	f.requestedWindows = append(f.requestedWindows, days)
	return f.bookedByWindow[days], nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник, 10 марта 2025: окно из 5 рабочих дней - пн..пт,
// 9 календарных дней для 22 рабочих
var testNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeBookingRepo) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func twoSites() []*domain.Resource {
	return []*domain.Resource{
		{ID: 1, SiteID: 1, SiteName: "Gare du Nord", Capacity: 10},
		{ID: 2, SiteID: 1, SiteName: "Gare du Nord", Capacity: 10},
		{ID: 3, SiteID: 2, SiteName: "Bastille", Capacity: 5},
	}
}

func TestExecute_WeekWindow(t *testing.T) {
	repo := &fakeBookingRepo{
		resources: twoSites(),
		bookedByWindow: map[int][]domain.ResourceBooking{
			// Окно пн..пт = 5 календарных дней
			5: {
				{ResourceID: 1, Seats: 4}, {ResourceID: 1, Seats: 4},
				{ResourceID: 2, Seats: 2},
				{ResourceID: 3, Seats: 5}, {ResourceID: 3, Seats: 5},
			},
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Window: domain.WindowWeek})
	require.NoError(t, err)

	assert.Equal(t, "week", resp.Window)
	assert.Equal(t, 5, resp.PeriodDays)

	// Gare du Nord: 10 место-дней / (20 x 5) = 10%
	// Bastille: 10 / (5 x 5) = 40% - первая по убыванию
	require.Len(t, resp.Sites, 2)
	assert.Equal(t, "Bastille", resp.Sites[0].SiteName)
	assert.Equal(t, 40, resp.Sites[0].OccupancyPercent)
	assert.Equal(t, 10, resp.Sites[1].OccupancyPercent)

	// Сеть: 20 место-дней / (25 x 5) = 16%
	assert.Equal(t, 16, resp.GlobalOccupancyPercent)

	// Недельное окно переиспользуется для глобальной загрузки
	assert.Equal(t, []int{5}, repo.requestedWindows)
}

func TestExecute_TodayWindowQueriesWeekForGlobal(t *testing.T) {
	repo := &fakeBookingRepo{
		resources: twoSites(),
		bookedByWindow: map[int][]domain.ResourceBooking{
			1: {{ResourceID: 1, Seats: 10}, {ResourceID: 2, Seats: 10}},
			5: {{ResourceID: 1, Seats: 10}, {ResourceID: 2, Seats: 10}},
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Window: domain.WindowToday})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.PeriodDays)
	// Gare du Nord: 20 / (20 x 1) = 100%
	assert.Equal(t, 100, resp.Sites[0].OccupancyPercent)
	// Сеть по недельному окну: 20 / (25 x 5) = 16%
	assert.Equal(t, 16, resp.GlobalOccupancyPercent)
	assert.Equal(t, []int{1, 5}, repo.requestedWindows)
}

func TestExecute_EmptyNetwork(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Window: domain.WindowMonth})
	require.NoError(t, err)

	assert.Equal(t, 22, resp.PeriodDays)
	assert.Empty(t, resp.Sites)
	assert.Equal(t, 0, resp.GlobalOccupancyPercent)
}

func TestExecute_InvalidWindow(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{Window: "quarter"})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestAggregateSites_ClampsAndSkipsZeroCapacity(t *testing.T) {
	resources := []*domain.Resource{
		{ID: 1, SiteID: 1, SiteName: "Overbooked", Capacity: 1},
		{ID: 2, SiteID: 2, SiteName: "Ghost", Capacity: 0},
	}
	booked := []domain.ResourceBooking{
		{ResourceID: 1, Seats: 6}, {ResourceID: 1, Seats: 6},
		// Строка по неизвестному ресурсу игнорируется
		{ResourceID: 99, Seats: 3},
	}

	sites := aggregateSites(resources, booked, 5)

	require.Len(t, sites, 1, "zero-capacity site excluded")
	assert.Equal(t, "Overbooked", sites[0].SiteName)
	assert.Equal(t, 100, sites[0].OccupancyPercent, "occupancy clamped at 100")
}

func TestOccupancyPercent_Rounding(t *testing.T) {
	// 7 / (3 x 5) = 46.67 -> 47
	assert.Equal(t, 47, occupancyPercent(7, 3, 5))
	// 1 / (3 x 5) = 6.67 -> 7
	assert.Equal(t, 7, occupancyPercent(1, 3, 5))
	assert.Equal(t, 0, occupancyPercent(5, 0, 5))
}
