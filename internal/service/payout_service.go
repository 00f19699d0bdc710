package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/stagedoor/stagedoor-api/internal/payouts"
	"github.com/stagedoor/stagedoor-api/internal/repository"
	apperrors "github.com/stagedoor/stagedoor-api/pkg/util"
)

// PayoutService links stylist profiles to payout accounts and hands back
// provider-hosted URLs. Payment mechanics stay inside the provider.
type PayoutService struct {
	profiles repository.ProfileRepository
	provider payouts.Provider
}

// NewPayoutService builds the service.
func NewPayoutService(profiles repository.ProfileRepository, provider payouts.Provider) *PayoutService {
	return &PayoutService{profiles: profiles, provider: provider}
}

// OnboardingLink ensures the stylist has a payout account and returns the
// provider onboarding URL for it.
func (s *PayoutService) OnboardingLink(ctx context.Context, stylistUserID, email string) (string, error) {
	profile, err := s.profiles.GetStylistByUserID(ctx, stylistUserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFound("stylist profile", nil)
		}
		return "", err
	}

	accountID := ""
	if profile.StripeAccountID != nil {
		accountID = *profile.StripeAccountID
	} else {
		accountID, err = s.provider.CreateAccount(ctx, email)
		if err != nil {
			return "", err
		}
		if err := s.profiles.SetStripeAccount(ctx, profile.ID, accountID); err != nil {
			return "", err
		}
	}

	return s.provider.OnboardingLink(ctx, accountID)
}

// DashboardLink returns the provider dashboard URL for an onboarded stylist.
func (s *PayoutService) DashboardLink(ctx context.Context, stylistUserID string) (string, error) {
	profile, err := s.profiles.GetStylistByUserID(ctx, stylistUserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFound("stylist profile", nil)
		}
		return "", err
	}
	if profile.StripeAccountID == nil {
		return "", apperrors.NewConflict("payout account not linked", nil)
	}
	return s.provider.DashboardLink(ctx, *profile.StripeAccountID)
}
