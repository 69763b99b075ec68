package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Client клиент платежного шлюза (Stripe Checkout).
// Ядро передает сюда финализированный выбор; редирект пользователя
// на страницу оплаты и webhook-и остаются за пределами сервиса.
type Client struct {
	api        *client.API
	successURL string
	cancelURL  string
	log        Logger
}

// NewClient создает клиент платежного шлюза
func NewClient(apiKey, successURL, cancelURL string, log Logger) *Client {
	api := &client.API{}
	api.Init(apiKey, nil)

	return &Client{
		api:        api,
		successURL: successURL,
		cancelURL:  cancelURL,
		log:        log,
	}
}

// CreateCheckoutSession создает checkout-сессию на итоговую сумму бронирования.
// Reference пробрасывается в client_reference_id и возвращается в callback.
func (c *Client) CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error) {
	if req.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: %d cents", ErrInvalidAmount, req.AmountCents)
	}

	params := &stripe.CheckoutSessionParams{
		Params:            stripe.Params{Context: ctx},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(c.successURL),
		CancelURL:         stripe.String(c.cancelURL),
		ClientReferenceID: stripe.String(req.Reference),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
			},
		},
	}

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		c.log.Error("Failed to create checkout session: reference=%s, amount=%d, error=%v",
			req.Reference, req.AmountCents, err)
		return nil, fmt.Errorf("%w: %v", ErrSessionNotCreated, err)
	}

	c.log.Info("Checkout session created: id=%s, reference=%s, amount=%d %s",
		session.ID, req.Reference, req.AmountCents, req.Currency)

	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}
