package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentProvider is the external charge capability. Charge returns the
// amount actually charged or fails with domain.ErrPaymentDeclined.
type PaymentProvider interface {
	Charge(ctx context.Context, amount decimal.Decimal, token, currency string) (decimal.Decimal, error)
}
