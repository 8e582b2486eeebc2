package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hajt/ticket-seller/internal/config"
	"github.com/hajt/ticket-seller/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

// Provider — HTTP-клиент внешней платёжной системы. Для ядра это
// непрозрачная, возможно медленная charge-способность.
type Provider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  logger.Logger
}

func NewProvider(cfg config.PaymentConfig, log logger.Logger) *Provider {
	return &Provider{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  log,
	}
}

type chargeRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Token    string          `json:"token"`
}

type chargeResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

type chargeError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (p *Provider) Charge(ctx context.Context, amount decimal.Decimal, token, currency string) (decimal.Decimal, error) {
	body, err := json.Marshal(chargeRequest{Amount: amount, Currency: currency, Token: token})
	if err != nil {
		return decimal.Zero, fmt.Errorf("marshal charge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return decimal.Zero, fmt.Errorf("build charge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("charge request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("read charge response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var charged chargeResponse
		if err = json.Unmarshal(raw, &charged); err != nil {
			return decimal.Zero, fmt.Errorf("decode charge response: %w", err)
		}
		return charged.Amount, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// Отказ провайдера пробрасываем с его сообщением.
		var declined chargeError
		if err = json.Unmarshal(raw, &declined); err != nil || declined.Message == "" {
			return decimal.Zero, domain.ErrPaymentDeclined
		}
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrPaymentDeclined, declined.Message)

	default:
		p.logger.Error("payment provider request failed",
			logger.Int("status", resp.StatusCode),
		)
		return decimal.Zero, fmt.Errorf("payment provider status %d", resp.StatusCode)
	}
}
