package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ad-launcher/internal/core/domain"
)

// TestListCampaignsEnrichment covers the best-effort enrichment: a
// failing insights call for one of three campaigns leaves that campaign
// unenriched while the listing still succeeds with all three.
func TestListCampaignsEnrichment(t *testing.T) {
	log := &callLog{}
	campaigns := &fakeCampaigns{log: log, listResult: []domain.Campaign{
		{ID: "c1", Name: "one"},
		{ID: "c2", Name: "two"},
		{ID: "c3", Name: "three"},
	}}
	insights := &fakeInsights{
		log: log,
		byScope: map[string][]domain.Insight{
			"c1": {{Impressions: "100", Clicks: "10", Spend: "1.50"}},
			"c3": {{Impressions: "300", Clicks: "30", Spend: "4.50"}},
		},
		errScope: map[string]error{"c2": errors.New("insights unavailable")},
	}
	overview := NewCampaignOverview(campaigns, insights, discardLogger())

	list, err := overview.ListCampaigns(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, list, 3)

	require.Equal(t, "100", list[0].Impressions)
	require.Equal(t, "10", list[0].Clicks)
	require.Equal(t, "1.50", list[0].Spend)

	require.Empty(t, list[1].Impressions)
	require.Empty(t, list[1].Clicks)
	require.Empty(t, list[1].Spend)

	require.Equal(t, "300", list[2].Impressions)
}

// TestListCampaignsWithoutInsights verifies no insights calls happen when
// enrichment is not requested.
func TestListCampaignsWithoutInsights(t *testing.T) {
	log := &callLog{}
	campaigns := &fakeCampaigns{log: log, listResult: []domain.Campaign{{ID: "c1"}}}
	insights := &fakeInsights{log: log}
	overview := NewCampaignOverview(campaigns, insights, discardLogger())

	list, err := overview.ListCampaigns(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, []string{"campaigns.list"}, log.calls)
}

func TestCreateTestCampaign(t *testing.T) {
	log := &callLog{}
	campaigns := &fakeCampaigns{log: log}
	overview := NewCampaignOverview(campaigns, &fakeInsights{log: log}, discardLogger())
	overview.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	}

	id, name, err := overview.CreateTestCampaign(context.Background())
	require.NoError(t, err)
	require.Equal(t, "cmp-1", id)
	require.Equal(t, "Test Campaign 2025-06-01T12:30", name)

	created := campaigns.created[0]
	require.Equal(t, domain.ObjectiveLeads, created.Objective)
	require.Equal(t, domain.StatusPaused, created.Status)
	require.Equal(t, []string{"NONE"}, created.SpecialAdCategories)
}

func TestAccountSummary(t *testing.T) {
	log := &callLog{}
	insights := &fakeInsights{log: log, account: []domain.Insight{
		{Impressions: "1000", Clicks: "50", Spend: "20.00"},
	}}
	overview := NewCampaignOverview(&fakeCampaigns{log: log}, insights, discardLogger())

	summary, err := overview.AccountSummary(context.Background())
	require.NoError(t, err)
	require.Equal(t, "1000", summary.Impressions)
}

// TestAccountSummaryEmpty verifies nil is returned when the platform has
// no insight records for the window.
func TestAccountSummaryEmpty(t *testing.T) {
	log := &callLog{}
	overview := NewCampaignOverview(&fakeCampaigns{log: log}, &fakeInsights{log: log}, discardLogger())

	summary, err := overview.AccountSummary(context.Background())
	require.NoError(t, err)
	require.Nil(t, summary)
}
