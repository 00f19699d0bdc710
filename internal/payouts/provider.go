package payouts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stagedoor/stagedoor-api/internal/config"
)

// Provider is the payment-account collaborator (Stripe Connect) consumed
// as a black box: the platform only ever asks it for an account and for
// redirect links into the provider's own onboarding and dashboard UI.
type Provider interface {
	CreateAccount(ctx context.Context, email string) (accountID string, err error)
	OnboardingLink(ctx context.Context, accountID string) (url string, err error)
	DashboardLink(ctx context.Context, accountID string) (url string, err error)
}

// stubProvider satisfies Provider without external credentials; used in
// development and tests.
type stubProvider struct {
	cfg    config.PayoutsConfig
	logger *zap.Logger
}

// NewStubProvider builds the development provider.
func NewStubProvider(cfg config.PayoutsConfig, logger *zap.Logger) Provider {
	return &stubProvider{cfg: cfg, logger: logger}
}

func (p *stubProvider) CreateAccount(ctx context.Context, email string) (string, error) {
	accountID := "acct_stub_" + uuid.NewString()
	p.logger.Info("created stub payout account", zap.String("account_id", accountID))
	return accountID, nil
}

func (p *stubProvider) OnboardingLink(_ context.Context, accountID string) (string, error) {
	return fmt.Sprintf("https://connect.stripe.example/onboard/%s?return_url=%s&refresh_url=%s",
		accountID, p.cfg.OnboardingReturnURL, p.cfg.OnboardingRefreshURL), nil
}

func (p *stubProvider) DashboardLink(_ context.Context, accountID string) (string, error) {
	return fmt.Sprintf("https://connect.stripe.example/dashboard/%s", accountID), nil
}
