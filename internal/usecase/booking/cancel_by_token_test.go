package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdarCosmetics/salon-scheduler/internal/audit"
	"github.com/AdarCosmetics/salon-scheduler/internal/httperr"
	"github.com/AdarCosmetics/salon-scheduler/internal/models"
)

func TestCancelByToken(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = append(repo.bookings, models.Booking{
		ID:                1,
		Date:              testSunday,
		StartTime:         "10:00",
		EndTime:           "10:40",
		CustomerName:      "נועה לוי",
		Status:            "confirmed",
		CancellationToken: "tok-abc",
	})
	sink := &memorySink{}
	dispatcher := audit.NewDispatcher(sink)
	uc := NewCancelByToken(repo, dispatcher)

	b, already, err := uc.Execute(context.Background(), "tok-abc")
	require.NoError(t, err)
	dispatcher.Flush()

	assert.False(t, already)
	assert.Equal(t, "cancelled", b.Status)
	require.NotNil(t, b.CancelledAt)
	assert.Contains(t, sink.types(), audit.EventBookingCancelled)

	// soft delete: the row is still there
	stored, err := repo.GetBookingByToken(context.Background(), "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", stored.Status)
}

func TestCancelByTokenIdempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = append(repo.bookings, models.Booking{
		ID: 1, Status: "confirmed", CancellationToken: "tok-abc",
	})
	sink := &memorySink{}
	dispatcher := audit.NewDispatcher(sink)
	uc := NewCancelByToken(repo, dispatcher)

	_, _, err := uc.Execute(context.Background(), "tok-abc")
	require.NoError(t, err)

	// second visit to the same link: already-cancelled, no error, no audit
	b, already, err := uc.Execute(context.Background(), "tok-abc")
	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, "cancelled", b.Status)

	dispatcher.Flush()
	count := 0
	for _, typ := range sink.types() {
		if typ == audit.EventBookingCancelled {
			count++
		}
	}
	assert.Equal(t, 1, count, "cancellation audited exactly once")
}

func TestCancelByTokenNotFound(t *testing.T) {
	uc := NewCancelByToken(newFakeRepo(), audit.NewDispatcher(&memorySink{}))

	_, err := uc.Lookup(context.Background(), "no-such-token")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBookingNotFound))

	_, _, err = uc.Execute(context.Background(), "no-such-token")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBookingNotFound))
}
