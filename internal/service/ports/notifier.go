package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

type OpsNotifier interface {
	NotifyPaymentReceived(ctx context.Context, reservationID string, amount decimal.Decimal, currency string)
	NotifyReservationsReleased(ctx context.Context, count int)
}
