package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/denavigator/Brand-app/config"
	"github.com/denavigator/Brand-app/models"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"
)

// Package tier prices in minor currency units (USD cents). Anything not
// listed here, including starter, bills at the base price.
const (
	BasePriceCents    = 5000
	ProPriceCents     = 10000
	PremiumPriceCents = 20000
)

// stripeTimeout bounds every call to the payment provider
const stripeTimeout = 15 * time.Second

// PriceForPackage maps a package tier to its price in cents. This is the
// single place that knows the tier pricing; callers must not duplicate it.
func PriceForPackage(packageType string) int64 {
	switch packageType {
	case models.PackagePro:
		return ProPriceCents
	case models.PackagePremium:
		return PremiumPriceCents
	default:
		return BasePriceCents
	}
}

// PackageLabel returns the human-readable product label shown on the
// provider's checkout page
func PackageLabel(packageType string) string {
	return fmt.Sprintf("%s branding package", packageType)
}

// CheckoutService creates hosted payment sessions for an order and returns
// the URL the customer is redirected to
type CheckoutService interface {
	CreateSession(ctx context.Context, order *models.Order) (string, error)
}

var checkoutServiceInstance CheckoutService

// InitCheckoutService configures the Stripe client and installs the real
// checkout service. A missing secret key is logged but not fatal; session
// creation will fail at request time instead.
func InitCheckoutService(cfg *config.Config) CheckoutService {
	stripe.Key = cfg.StripeSecretKey
	if stripe.Key == "" {
		log.Println("STRIPE_SECRET_KEY not set, checkout sessions will fail")
	}

	// Bound provider calls; the default backend has no client timeout
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(
		stripe.APIBackend,
		&stripe.BackendConfig{
			HTTPClient: &http.Client{Timeout: stripeTimeout},
		},
	))

	checkoutServiceInstance = &StripeCheckoutService{baseURL: cfg.BaseURL}
	return checkoutServiceInstance
}

// GetCheckoutService returns the initialized checkout service instance
func GetCheckoutService() CheckoutService {
	return checkoutServiceInstance
}

// SetCheckoutService sets the checkout service instance (primarily for testing)
func SetCheckoutService(service CheckoutService) {
	checkoutServiceInstance = service
}

// StripeCheckoutService implements CheckoutService on Stripe hosted Checkout
type StripeCheckoutService struct {
	baseURL string
}

// CreateSession creates a one-time payment Checkout Session for the order:
// a single line item at the tier price, tagged with the package label and
// the customer's email. The success URL carries the order id so the
// confirmation page can find the record; cancel returns to the order form.
func (s *StripeCheckoutService) CreateSession(ctx context.Context, order *models.Order) (string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CustomerEmail:      stripe.String(order.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(PackageLabel(order.PackageType)),
					},
					UnitAmount: stripe.Int64(PriceForPackage(order.PackageType)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(fmt.Sprintf("%s/confirmation?status=success&orderId=%s", s.baseURL, order.ID)),
		CancelURL:  stripe.String(s.baseURL + "/order"),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.URL, nil
}
