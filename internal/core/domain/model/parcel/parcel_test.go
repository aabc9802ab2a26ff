package parcel

import (
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParcel(t *testing.T) *Parcel {
	t.Helper()

	price, err := kernel.NewMoneyFromString("120.50")
	require.NoError(t, err)

	parcel, err := NewParcel(
		kernel.NewUUID(),
		NewTrackingID(),
		kernel.NewUUID(),
		"Abebe Kebede",
		"+251911000000",
		decimal.NewFromFloat(2.5),
		price,
		PaymentWallet,
	)
	require.NoError(t, err)
	return parcel
}

func TestNewParcel(t *testing.T) {
	parcel := newTestParcel(t)

	assert.NoError(t, parcel.Validate())
	assert.Equal(t, Pending, parcel.Status())
	assert.Equal(t, 1, parcel.Version())
	assert.False(t, parcel.IsPaid())
	assert.Nil(t, parcel.Driver())
	assert.Nil(t, parcel.DeliveredAt())
	assert.NotEmpty(t, parcel.TrackingID().String())
	assert.Len(t, parcel.QRHash(), 64)
}

func TestNewParcelValidation(t *testing.T) {
	validPrice, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)

	tests := map[string]struct {
		recipientName  string
		recipientPhone string
		weight         decimal.Decimal
		method         PaymentMethod
		wantErr        error
	}{
		"missing recipient name": {
			recipientPhone: "+251911000000",
			weight:         decimal.NewFromInt(1),
			method:         PaymentWallet,
			wantErr:        errs.ErrValueIsRequired,
		},
		"missing recipient phone": {
			recipientName: "Abebe Kebede",
			weight:        decimal.NewFromInt(1),
			method:        PaymentWallet,
			wantErr:       errs.ErrValueIsRequired,
		},
		"zero weight": {
			recipientName:  "Abebe Kebede",
			recipientPhone: "+251911000000",
			weight:         decimal.Zero,
			method:         PaymentWallet,
			wantErr:        errs.ErrValueIsInvalid,
		},
		"negative weight": {
			recipientName:  "Abebe Kebede",
			recipientPhone: "+251911000000",
			weight:         decimal.NewFromInt(-3),
			method:         PaymentWallet,
			wantErr:        errs.ErrValueIsInvalid,
		},
		"unknown payment method": {
			recipientName:  "Abebe Kebede",
			recipientPhone: "+251911000000",
			weight:         decimal.NewFromInt(1),
			method:         PaymentUnknown,
			wantErr:        errs.ErrValueIsInvalid,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewParcel(
				kernel.NewUUID(),
				NewTrackingID(),
				kernel.NewUUID(),
				tc.recipientName,
				tc.recipientPhone,
				tc.weight,
				validPrice,
				tc.method,
			)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParcelChangeStatus(t *testing.T) {
	t.Run("full journey", func(t *testing.T) {
		parcel := newTestParcel(t)

		for _, next := range []Status{PickedUp, InTransit, AtHub, OutForDelivery, Delivered} {
			require.NoError(t, parcel.ChangeStatus(next))
			assert.Equal(t, next, parcel.Status())
		}

		require.NotNil(t, parcel.DeliveredAt())
	})

	t.Run("short journey skips intermediate stops", func(t *testing.T) {
		parcel := newTestParcel(t)

		require.NoError(t, parcel.ChangeStatus(PickedUp))
		require.NoError(t, parcel.ChangeStatus(Delivered))

		assert.Equal(t, Delivered, parcel.Status())
		assert.NotNil(t, parcel.DeliveredAt())
	})

	t.Run("delivered parcel rejects further changes", func(t *testing.T) {
		parcel := newTestParcel(t)
		require.NoError(t, parcel.ChangeStatus(Delivered))
		deliveredAt := parcel.DeliveredAt()

		err := parcel.ChangeStatus(Failed)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, Delivered, parcel.Status())
		assert.Equal(t, deliveredAt, parcel.DeliveredAt())
	})

	t.Run("cancellation mid flight", func(t *testing.T) {
		parcel := newTestParcel(t)
		require.NoError(t, parcel.ChangeStatus(InTransit))

		require.NoError(t, parcel.ChangeStatus(Cancelled))

		assert.Equal(t, Cancelled, parcel.Status())
		assert.Nil(t, parcel.DeliveredAt())
	})
}

func TestParcelAssignDriver(t *testing.T) {
	t.Run("assigns and reassigns", func(t *testing.T) {
		parcel := newTestParcel(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, parcel.AssignDriver(first))
		require.NoError(t, parcel.AssignDriver(second))

		require.NotNil(t, parcel.Driver())
		assert.True(t, second.IsEqual(*parcel.Driver()))
	})

	t.Run("terminal parcel rejects assignment", func(t *testing.T) {
		parcel := newTestParcel(t)
		require.NoError(t, parcel.ChangeStatus(Cancelled))

		err := parcel.AssignDriver(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParcelRate(t *testing.T) {
	t.Run("delivered parcel accepts rating", func(t *testing.T) {
		parcel := newTestParcel(t)
		require.NoError(t, parcel.ChangeStatus(Delivered))

		require.NoError(t, parcel.Rate(5, "fast and careful"))

		require.NotNil(t, parcel.Rating())
		assert.Equal(t, 5, *parcel.Rating())
		assert.Equal(t, "fast and careful", parcel.Review())
	})

	t.Run("undelivered parcel rejects rating", func(t *testing.T) {
		parcel := newTestParcel(t)

		err := parcel.Rate(4, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rating out of range", func(t *testing.T) {
		parcel := newTestParcel(t)
		require.NoError(t, parcel.ChangeStatus(Delivered))

		for _, rating := range []int{0, 6, -1} {
			err := parcel.Rate(rating, "")
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestRestoreParcel(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		original := newTestParcel(t)
		require.NoError(t, original.ChangeStatus(PickedUp))
		driver := kernel.NewUUID()
		require.NoError(t, original.AssignDriver(driver))

		restored, err := RestoreParcel(RestoreParcelParams{
			ID:             original.ID(),
			TrackingID:     original.TrackingID(),
			SenderID:       original.SenderID(),
			RecipientName:  original.RecipientName(),
			RecipientPhone: original.RecipientPhone(),
			DriverID:       original.Driver(),
			Status:         original.Status(),
			Weight:         original.Weight(),
			Price:          original.Price(),
			PaymentMethod:  original.PaymentMethod(),
			CreatedAt:      original.CreatedAt(),
			Version:        3,
		})

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
		assert.Equal(t, PickedUp, restored.Status())
		assert.Equal(t, 3, restored.Version())
		require.NotNil(t, restored.Driver())
		assert.True(t, driver.IsEqual(*restored.Driver()))
	})

	t.Run("rejects invalid version", func(t *testing.T) {
		original := newTestParcel(t)

		_, err := RestoreParcel(RestoreParcelParams{
			ID:             original.ID(),
			TrackingID:     original.TrackingID(),
			SenderID:       original.SenderID(),
			RecipientName:  original.RecipientName(),
			RecipientPhone: original.RecipientPhone(),
			Status:         Pending,
			Weight:         original.Weight(),
			Price:          original.Price(),
			PaymentMethod:  original.PaymentMethod(),
			CreatedAt:      original.CreatedAt(),
			Version:        0,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParcelValidate(t *testing.T) {
	var notConstructed Parcel

	assert.ErrorIs(t, notConstructed.Validate(), ErrParcelIsNotConstructed)
}

func TestParcelCreatedAtIsUTC(t *testing.T) {
	parcel := newTestParcel(t)

	assert.Equal(t, time.UTC, parcel.CreatedAt().Location())
}
