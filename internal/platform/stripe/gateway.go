// Package stripe wraps the Stripe SDK behind the narrow payment-gateway
// surface the API needs: creating a payment intent for a rent amount.
package stripe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	sdk "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/skyviewhq/skyview-api/internal/config"
)

// ErrInvalidAmount indicates a non-positive payment amount was requested.
var ErrInvalidAmount = errors.New("payment amount must be positive")

// Gateway creates payment intents against the Stripe API.
type Gateway struct {
	api    *client.API
	logger *slog.Logger
}

// NewGateway creates a Stripe gateway from the payment configuration.
func NewGateway(cfg config.PaymentConfig, logger *slog.Logger) (*Gateway, error) {
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)

	return &Gateway{api: api, logger: logger}, nil
}

// CreatePaymentIntent creates a card payment intent for the given price in
// decimal currency units and returns its client secret. The price is
// converted to cents the way Stripe expects amounts.
func (g *Gateway) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	params := &sdk.PaymentIntentParams{
		Params:             sdk.Params{Context: ctx},
		Amount:             sdk.Int64(amount),
		Currency:           sdk.String(string(sdk.CurrencyUSD)),
		PaymentMethodTypes: sdk.StringSlice([]string{"card"}),
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	g.logger.Debug("payment intent created",
		"amount_cents", amount,
		"intent_id", intent.ID)

	return intent.ClientSecret, nil
}
