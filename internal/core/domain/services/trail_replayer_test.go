package services_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trailEvent(t *testing.T, parcelID kernel.UUID, status parcel.Status) *parcel.Event {
	t.Helper()
	event, err := parcel.NewEvent(parcelID, kernel.NewUUID(), parcel.RoleDriver, status, "", "", "")
	require.NoError(t, err)
	return event
}

func TestReplay(t *testing.T) {
	replayer := services.NewTrailReplayer()
	parcelID := kernel.NewUUID()

	t.Run("empty trail is pending", func(t *testing.T) {
		status, err := replayer.Replay(nil)

		require.NoError(t, err)
		assert.Equal(t, parcel.Pending, status)
	})

	t.Run("full journey", func(t *testing.T) {
		events := []*parcel.Event{
			trailEvent(t, parcelID, parcel.Pending),
			trailEvent(t, parcelID, parcel.PickedUp),
			trailEvent(t, parcelID, parcel.InTransit),
			trailEvent(t, parcelID, parcel.AtHub),
			trailEvent(t, parcelID, parcel.OutForDelivery),
			trailEvent(t, parcelID, parcel.Delivered),
		}

		status, err := replayer.Replay(events)

		require.NoError(t, err)
		assert.Equal(t, parcel.Delivered, status)
	})

	t.Run("reordered trail is corrupt", func(t *testing.T) {
		events := []*parcel.Event{
			trailEvent(t, parcelID, parcel.InTransit),
			trailEvent(t, parcelID, parcel.PickedUp),
		}

		_, err := replayer.Replay(events)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrTrailIsCorrupt)
	})

	t.Run("events after a terminal state are corrupt", func(t *testing.T) {
		events := []*parcel.Event{
			trailEvent(t, parcelID, parcel.Cancelled),
			trailEvent(t, parcelID, parcel.PickedUp),
		}

		_, err := replayer.Replay(events)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrTrailIsCorrupt)
	})
}

func TestVerify(t *testing.T) {
	replayer := services.NewTrailReplayer()

	price, err := kernel.NewMoneyFromString("50.00")
	require.NoError(t, err)
	p, err := parcel.NewParcel(kernel.NewUUID(), parcel.NewTrackingID(), kernel.NewUUID(),
		"Sara Tadesse", "+251911222333", decimal.NewFromInt(1), price, parcel.PaymentCashOnDelivery)
	require.NoError(t, err)
	require.NoError(t, p.ChangeStatus(parcel.PickedUp))

	t.Run("matching trail verifies", func(t *testing.T) {
		events := []*parcel.Event{
			trailEvent(t, p.ID(), parcel.Pending),
			trailEvent(t, p.ID(), parcel.PickedUp),
		}

		assert.NoError(t, replayer.Verify(p, events))
	})

	t.Run("trail behind the stored status fails", func(t *testing.T) {
		events := []*parcel.Event{
			trailEvent(t, p.ID(), parcel.Pending),
		}

		err := replayer.Verify(p, events)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrTrailIsCorrupt)
	})
}
