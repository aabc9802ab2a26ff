package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// PaymentMethod is the payment channel chosen for a parcel: the in-app
// wallet, cash on delivery, or one of the supported mobile-money providers.
type PaymentMethod int

const (
	PaymentUnknown PaymentMethod = iota
	PaymentWallet
	PaymentCashOnDelivery
	PaymentTelebirr
	PaymentChapa
	PaymentArifPay
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentWallet:         "wallet",
		PaymentCashOnDelivery: "cash_on_delivery",
		PaymentTelebirr:       "telebirr",
		PaymentChapa:          "chapa",
		PaymentArifPay:        "arifpay",
	}
}

// PaymentMethodFromString parses the wire representation of a payment method.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the PaymentMethod is one of the supported channels.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
