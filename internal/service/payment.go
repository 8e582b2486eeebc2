package service

import (
	"context"
	"fmt"

	"github.com/hajt/ticket-seller/internal/domain"
	"github.com/hajt/ticket-seller/internal/service/ports"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

// PaymentService — единственный писатель флага paid.
type PaymentService struct {
	reservationRepo ports.ReservationRepo
	provider        ports.PaymentProvider
	notifier        ports.OpsNotifier
	defaultCurrency string
	logger          logger.Logger
}

func NewPaymentService(
	reservationRepo ports.ReservationRepo,
	provider ports.PaymentProvider,
	notifier ports.OpsNotifier,
	defaultCurrency string,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		reservationRepo: reservationRepo,
		provider:        provider,
		notifier:        notifier,
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}
}

// Pay списывает amount у провайдера и помечает бронь оплаченной, если
// списанная сумма в точности равна цене вида билета. Проверка живости
// брони и запись paid выполняются под одной блокировкой строки, поэтому
// платёж не может пересечься с release свипера.
func (s *PaymentService) Pay(ctx context.Context, reservationID string, amount decimal.Decimal, currency, token string) error {
	if currency == "" {
		currency = s.defaultCurrency
	}

	err := s.reservationRepo.Pay(ctx, reservationID, func(price decimal.Decimal) error {
		charged, err := s.provider.Charge(ctx, amount, token, currency)
		if err != nil {
			return fmt.Errorf("charge: %w", err)
		}

		if !charged.Equal(price) {
			// Списание при расхождении суммы не отменяется здесь:
			// возврат — зона ответственности провайдера.
			s.logger.Warn("charged amount does not match ticket price",
				logger.String("reservation_id", reservationID),
				logger.String("charged", charged.String()),
				logger.String("price", price.String()),
			)
			return domain.ErrAmountMismatch
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("pay reservation: %w", err)
	}

	s.logger.Info("reservation paid",
		logger.String("reservation_id", reservationID),
		logger.String("amount", amount.String()),
		logger.String("currency", currency),
	)

	go s.notifier.NotifyPaymentReceived(context.WithoutCancel(ctx), reservationID, amount, currency)

	return nil
}
