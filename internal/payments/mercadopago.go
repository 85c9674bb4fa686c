// Package payments relays booking payments to Mercado Pago. The API only
// creates a checkout preference and records the provider's callback; it
// never moves a booking's lifecycle status.
package payments

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type Intent struct {
	Reference   string `json:"reference"`
	CheckoutURL string `json:"checkout_url"`
}

// Verification is the provider's word on a payment, fetched server-side.
// Callback payloads are never trusted directly.
type Verification struct {
	BookingID uint
	Status    string
	Reference string
}

type Client struct {
	pref preference.Client
	pay  payment.Client
}

// New returns nil when no access token is configured; the payment endpoints
// then answer with an unavailable error instead of failing boot.
func New(accessToken string) (*Client, error) {
	if accessToken == "" {
		return nil, nil
	}
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &Client{
		pref: preference.NewClient(cfg),
		pay:  payment.NewClient(cfg),
	}, nil
}

// VerifyPayment fetches the payment from the provider and resolves the
// booking it references.
func (c *Client) VerifyPayment(ctx context.Context, paymentID int) (*Verification, error) {
	resp, err := c.pay.Get(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	bookingID, err := strconv.ParseUint(resp.ExternalReference, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse external reference %q: %w", resp.ExternalReference, err)
	}

	return &Verification{
		BookingID: uint(bookingID),
		Status:    resp.Status,
		Reference: strconv.Itoa(resp.ID),
	}, nil
}

func (c *Client) CreateIntent(ctx context.Context, bookingID uint, title string, amount float64) (*Intent, error) {
	req := preference.Request{
		ExternalReference: strconv.FormatUint(uint64(bookingID), 10),
		Items: []preference.ItemRequest{
			{
				Title:     title,
				Quantity:  1,
				UnitPrice: amount,
			},
		},
	}

	resp, err := c.pref.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &Intent{
		Reference:   resp.ID,
		CheckoutURL: resp.InitPoint,
	}, nil
}
