package kernel_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"100", "100.00"},
			{"100.5", "100.50"},
			{"0.01", "0.01"},
			{"0", "0.00"},
			{"99999999.99", "99999999.99"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				m, err := kernel.NewMoneyFromString(tc.input)

				require.NoError(t, err)
				require.NoError(t, m.Validate())
				assert.Equal(t, tc.expected, m.String())
			})
		}
	})

	t.Run("should reject malformed amounts", func(t *testing.T) {
		for _, input := range []string{"", "abc", "10,50", "1.2.3"} {
			t.Run(input, func(t *testing.T) {
				_, err := kernel.NewMoneyFromString(input)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-1.00")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject more than two fraction digits", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("10.505")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMoneyFromDecimal(t *testing.T) {
	t.Run("should wrap non-negative decimals", func(t *testing.T) {
		m, err := kernel.NewMoneyFromDecimal(decimal.NewFromInt(42))

		require.NoError(t, err)
		assert.Equal(t, "42.00", m.String())
	})

	t.Run("should reject negative decimals", func(t *testing.T) {
		_, err := kernel.NewMoneyFromDecimal(decimal.NewFromInt(-1))
		require.Error(t, err)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add without drift", func(t *testing.T) {
		balance, err := kernel.NewMoneyFromString("100.00")
		require.NoError(t, err)
		deposit, err := kernel.NewMoneyFromString("50.00")
		require.NoError(t, err)

		assert.Equal(t, "150.00", balance.Add(deposit).String())
	})

	t.Run("should stay exact over many small additions", func(t *testing.T) {
		cent, err := kernel.NewMoneyFromString("0.01")
		require.NoError(t, err)

		total := kernel.ZeroMoney()
		for range 1000 {
			total = total.Add(cent)
		}

		assert.Equal(t, "10.00", total.String())
	})
}

func TestMoney_Predicates(t *testing.T) {
	zero := kernel.ZeroMoney()
	ten, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)

	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsPositive())
	assert.True(t, ten.IsPositive())
	assert.False(t, ten.IsZero())
	assert.True(t, ten.IsEqual(ten))
	assert.False(t, ten.IsEqual(zero))
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})

	t.Run("ZeroMoney is constructed", func(t *testing.T) {
		require.NoError(t, kernel.ZeroMoney().Validate())
	})
}
