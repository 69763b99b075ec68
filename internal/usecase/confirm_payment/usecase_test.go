package confirm_payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-PassService/internal/domain"
	bookingRepo "github.com/m04kA/CWS-PassService/internal/infra/storage/booking"
	selectionRepo "github.com/m04kA/CWS-PassService/internal/infra/storage/selection"
	sel "github.com/m04kA/CWS-PassService/internal/selection"
	"github.com/m04kA/CWS-PassService/pkg/ptr"
	"github.com/m04kA/CWS-PassService/pkg/types"
)

type fakeBookingRepo struct {
	byToken map[string]*domain.PassBooking
}

func (f *fakeBookingRepo) GetBySelectionToken(_ context.Context, token string) (*domain.PassBooking, error) {
	b, ok := f.byToken[token]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	for _, b := range f.byToken {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

type fakeSelectionRepo struct {
	snapshots map[string]sel.Snapshot
}

func (f *fakeSelectionRepo) Take(_ context.Context, token string) (*sel.Snapshot, error) {
	snap, ok := f.snapshots[token]
	if !ok {
		return nil, selectionRepo.ErrSnapshotNotFound
	}
	delete(f.snapshots, token)
	return &snap, nil
}

func (f *fakeSelectionRepo) Delete(_ context.Context, token string) error {
	delete(f.snapshots, token)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const token = "7f1e4b52-9c3a-4d2e-8f6b-0a1b2c3d4e5f"

func pendingBooking() *fakeBookingRepo {
	return &fakeBookingRepo{
		byToken: map[string]*domain.PassBooking{
			token: {
				ID:             15,
				UserID:         42,
				Status:         domain.BookingStatusPendingPayment,
				SelectionToken: token,
			},
		},
	}
}

func savedSnapshot() *fakeSelectionRepo {
	return &fakeSelectionRepo{
		snapshots: map[string]sel.Snapshot{
			token: {
				PassType:    string(domain.PassTypeDay),
				Seats:       2,
				Dates:       []types.DateString{"2025-03-11", "2025-03-12"},
				CGVAccepted: true,
				SiteID:      ptr.Ptr(int64(1)),
			},
		},
	}
}

func TestExecute_SuccessConfirmsBooking(t *testing.T) {
	bookings := pendingBooking()
	snapshots := savedSnapshot()
	uc := NewUseCase(bookings, snapshots, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SelectionToken: token,
		Outcome:        OutcomeSuccess,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(15), resp.BookingID)
	assert.Equal(t, string(domain.BookingStatusConfirmed), resp.Status)
	assert.Nil(t, resp.RestoredSelection, "success does not restore the selection")

	assert.Equal(t, domain.BookingStatusConfirmed, bookings.byToken[token].Status)
	assert.Empty(t, snapshots.snapshots, "snapshot removed after confirmation")
}

func TestExecute_CancelRestoresSelection(t *testing.T) {
	bookings := pendingBooking()
	snapshots := savedSnapshot()
	uc := NewUseCase(bookings, snapshots, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SelectionToken: token,
		Outcome:        OutcomeCancel,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.BookingStatusCancelled), resp.Status)
	require.NotNil(t, resp.RestoredSelection)
	assert.Equal(t, string(domain.PassTypeDay), resp.RestoredSelection.PassType)
	assert.Equal(t, 2, resp.RestoredSelection.Seats)
	assert.Len(t, resp.RestoredSelection.Dates, 2)
	assert.True(t, resp.RestoredSelection.CGVAccepted)

	assert.Equal(t, domain.BookingStatusCancelled, bookings.byToken[token].Status)
}

func TestExecute_SnapshotIsSingleUse(t *testing.T) {
	bookings := pendingBooking()
	snapshots := savedSnapshot()
	uc := NewUseCase(bookings, snapshots, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SelectionToken: token,
		Outcome:        OutcomeCancel,
	})
	require.NoError(t, err)

	// Возвращаем бронирование в ожидание, как если бы шлюз прислал
	// callback дважды: снимок уже забран
	bookings.byToken[token].Status = domain.BookingStatusPendingPayment

	_, err = uc.Execute(context.Background(), &Request{
		SelectionToken: token,
		Outcome:        OutcomeCancel,
	})
	assert.ErrorIs(t, err, ErrSnapshotGone)
}

func TestExecute_ReplayAfterResolution(t *testing.T) {
	bookings := pendingBooking()
	uc := NewUseCase(bookings, savedSnapshot(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SelectionToken: token,
		Outcome:        OutcomeSuccess,
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{
		SelectionToken: token,
		Outcome:        OutcomeSuccess,
	})
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestExecute_UnknownToken(t *testing.T) {
	uc := NewUseCase(pendingBooking(), savedSnapshot(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SelectionToken: "no-such-token",
		Outcome:        OutcomeSuccess,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_ValidatesInput(t *testing.T) {
	uc := NewUseCase(pendingBooking(), savedSnapshot(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SelectionToken: " ", Outcome: OutcomeSuccess})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SelectionToken: token, Outcome: "refund"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
