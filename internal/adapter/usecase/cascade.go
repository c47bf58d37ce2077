package usecase

import (
	"context"
	"log/slog"

	"ad-launcher/internal/core/domain"
	"ad-launcher/internal/core/port"
)

// CascadeUpdater implements port.Cascader. A campaign-level status change
// fans out to the campaign's ad sets and their ads, campaign first, then
// ad sets in listing order, then ads within each ad set in listing order.
// Every mutation is a distinct remote call and the first failure stops the
// cascade, leaving a mixed-status tree for the operator to retry.
type CascadeUpdater struct {
	campaigns port.CampaignManager
	adSets    port.AdSetManager
	ads       port.AdManager
	logger    *slog.Logger
}

// NewCascadeUpdater wires the three managers.
func NewCascadeUpdater(campaigns port.CampaignManager, adSets port.AdSetManager, ads port.AdManager, logger *slog.Logger) *CascadeUpdater {
	return &CascadeUpdater{campaigns: campaigns, adSets: adSets, ads: ads, logger: logger}
}

// Pause pauses the campaign, its ACTIVE ad sets and their ACTIVE ads.
func (u *CascadeUpdater) Pause(ctx context.Context, campaignID string) error {
	return u.cascade(ctx, campaignID, domain.StatusActive, domain.StatusPaused)
}

// Activate activates the campaign, its PAUSED ad sets and their PAUSED ads.
func (u *CascadeUpdater) Activate(ctx context.Context, campaignID string) error {
	return u.cascade(ctx, campaignID, domain.StatusPaused, domain.StatusActive)
}

// cascade flips the campaign to the target status, then every child ad set
// currently in the source status, then every ad in the source status under
// each such ad set. Children already in the target status are skipped
// entirely, as are their ads.
func (u *CascadeUpdater) cascade(ctx context.Context, campaignID string, from, to domain.Status) error {
	if err := u.campaigns.UpdateStatus(ctx, campaignID, to); err != nil {
		return err
	}

	adSets, err := u.adSets.List(ctx, campaignID)
	if err != nil {
		return err
	}
	for _, adSet := range adSets {
		if adSet.Status != from {
			continue
		}
		if err = u.adSets.UpdateStatus(ctx, adSet.ID, to); err != nil {
			return err
		}

		ads, err := u.ads.List(ctx, adSet.ID)
		if err != nil {
			return err
		}
		for _, ad := range ads {
			if ad.Status != from {
				continue
			}
			if err = u.ads.UpdateStatus(ctx, ad.ID, to); err != nil {
				return err
			}
		}
	}

	u.logger.Info("cascade complete",
		slog.String("campaign_id", campaignID),
		slog.String("status", string(to)))
	return nil
}
