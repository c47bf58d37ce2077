package usecase

import (
	"context"
	"log/slog"
	"time"

	"ad-launcher/internal/core/domain"
	"ad-launcher/internal/core/port"
)

var summaryFields = []string{"impressions", "clicks", "spend"}

// CampaignOverview implements port.Overview: the campaign dashboard
// operations backing the list, create-test, delete and account-summary
// endpoints.
type CampaignOverview struct {
	campaigns port.CampaignManager
	insights  port.InsightsManager
	logger    *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

// NewCampaignOverview wires the campaign and insights managers.
func NewCampaignOverview(campaigns port.CampaignManager, insights port.InsightsManager, logger *slog.Logger) *CampaignOverview {
	return &CampaignOverview{campaigns: campaigns, insights: insights, logger: logger, now: time.Now}
}

// ListCampaigns returns the account's campaigns, optionally enriched with
// impressions, clicks and spend. Enrichment is best-effort per campaign: a
// failing insights call leaves that campaign unenriched and the listing
// still succeeds.
func (o *CampaignOverview) ListCampaigns(ctx context.Context, withInsights bool) ([]domain.Campaign, error) {
	list, err := o.campaigns.List(ctx)
	if err != nil {
		return nil, err
	}
	if !withInsights {
		return list, nil
	}

	for i := range list {
		records, err := o.insights.CampaignInsights(ctx, list[i].ID, summaryFields, "")
		if err != nil {
			o.logger.Warn("campaign insights unavailable",
				slog.String("campaign_id", list[i].ID),
				slog.Any("error", err))
			continue
		}
		if len(records) == 0 {
			continue
		}
		list[i].Impressions = records[0].Impressions
		list[i].Clicks = records[0].Clicks
		list[i].Spend = records[0].Spend
	}
	return list, nil
}

// CreateTestCampaign creates a paused lead-objective campaign named after
// the current timestamp.
func (o *CampaignOverview) CreateTestCampaign(ctx context.Context) (string, string, error) {
	name := "Test Campaign " + o.now().UTC().Format("2006-01-02T15:04")
	id, err := o.campaigns.Create(ctx, port.CreateCampaignParams{
		Name:                name,
		Objective:           domain.ObjectiveLeads,
		Status:              domain.StatusPaused,
		SpecialAdCategories: []string{domain.SpecialAdCategoryNone},
	})
	if err != nil {
		return "", "", err
	}
	return id, name, nil
}

// DeleteCampaign removes the campaign remotely.
func (o *CampaignOverview) DeleteCampaign(ctx context.Context, id string) error {
	return o.campaigns.Remove(ctx, id)
}

// AccountSummary returns the account-level insight record over the last
// 30 days, or nil when the platform has none.
func (o *CampaignOverview) AccountSummary(ctx context.Context) (*domain.Insight, error) {
	records, err := o.insights.AccountInsights(ctx, summaryFields, "last_30d")
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}
