package stripe

import (
	"net/http"
	"os"
	"time"

	stripe "github.com/stripe/stripe-go/v82"
)

// providerTimeout bounds every Stripe call; a provider that never answers
// surfaces as a payment provider error instead of blocking the request.
const providerTimeout = 30 * time.Second

func Init() {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: providerTimeout},
	}))
}
