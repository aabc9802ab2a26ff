package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestDomainError_StatusMapping(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"required value": {
			err:  errs.NewValueIsRequiredError("weight"),
			want: http.StatusBadRequest,
		},
		"invalid value": {
			err:  errs.NewValueIsInvalidError("status"),
			want: http.StatusBadRequest,
		},
		"out of range": {
			err:  errs.NewValueIsOutOfRangeError("rating", 9, 1, 5),
			want: http.StatusBadRequest,
		},
		"not found": {
			err:  errs.NewObjectNotFoundError("parcelId", kernel.NewUUID()),
			want: http.StatusNotFound,
		},
		"illegal transition": {
			err:  errs.NewInvalidTransitionError("delivered", "pending"),
			want: http.StatusConflict,
		},
		"stale version": {
			err:  errs.NewVersionIsInvalidError("parcel", kernel.NewUUID()),
			want: http.StatusConflict,
		},
		"duplicate key": {
			err:  gorm.ErrDuplicatedKey,
			want: http.StatusConflict,
		},
		"unknown error": {
			err:  errors.New("connection reset"),
			want: http.StatusInternalServerError,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, recorder := newTestContext(t)

			err := domainError(ctx, test.err, "fallback")

			require.NoError(t, err)
			assert.Equal(t, test.want, recorder.Code)
		})
	}
}

func TestCreateParcelParamsFromRequest(t *testing.T) {
	senderID := kernel.NewUUID()

	validRequest := func() CreateParcelRequest {
		return CreateParcelRequest{
			SenderID:       senderID.String(),
			SenderRole:     "customer",
			RecipientName:  "Abebe Kebede",
			RecipientPhone: "+251911000000",
			Weight:         "2.50",
			Price:          "150.00",
			PaymentMethod:  "wallet",
		}
	}

	t.Run("valid request", func(t *testing.T) {
		params, err := createParcelParamsFromRequest(validRequest())

		require.NoError(t, err)
		assert.Equal(t, senderID, params.SenderID)
		assert.NoError(t, params.ParcelID.Validate())
		assert.Equal(t, "2.5", params.Weight.String())
		assert.Equal(t, "150.00", params.Price.String())
	})

	t.Run("optional fields", func(t *testing.T) {
		request := validRequest()
		pickupID := kernel.NewUUID().String()
		distance := "12.3"
		request.PickupPartnerID = &pickupID
		request.Distance = &distance
		request.Photos = []string{"https://cdn.example.com/p1.jpg"}

		params, err := createParcelParamsFromRequest(request)

		require.NoError(t, err)
		require.NotNil(t, params.PickupPartnerID)
		assert.Equal(t, pickupID, params.PickupPartnerID.String())
		require.NotNil(t, params.Distance)
		assert.Equal(t, "12.3", params.Distance.String())
		assert.Len(t, params.Photos, 1)
	})

	t.Run("malformed weight", func(t *testing.T) {
		request := validRequest()
		request.Weight = "heavy"

		_, err := createParcelParamsFromRequest(request)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		request := validRequest()
		request.PaymentMethod = "barter"

		_, err := createParcelParamsFromRequest(request)

		assert.Error(t, err)
	})

	t.Run("malformed sender id", func(t *testing.T) {
		request := validRequest()
		request.SenderID = "not-a-uuid"

		_, err := createParcelParamsFromRequest(request)

		assert.Error(t, err)
	})
}

func TestValidator_RejectsIncompleteRequest(t *testing.T) {
	validator := NewValidator()

	err := validator.Validate(&CreateParcelRequest{
		SenderID: kernel.NewUUID().String(),
	})

	assert.Error(t, err)
}
