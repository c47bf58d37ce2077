package meta

import (
	"context"
	"net/url"
	"strings"

	"ad-launcher/internal/core/domain"
)

const (
	defaultInsightFields = "impressions,clicks,spend,cpc,cpm,ctr,reach"
	defaultDatePreset    = "last_7d"
)

// InsightsManager implements port.InsightsManager against the Graph API
// insights edge. Insights are read-only and scoped to a resource id plus a
// date preset window.
type InsightsManager struct {
	client *Client
}

// NewInsightsManager returns a manager bound to the client's ad account.
func NewInsightsManager(client *Client) *InsightsManager {
	return &InsightsManager{client: client}
}

// CampaignInsights returns insight records for one campaign.
func (m *InsightsManager) CampaignInsights(ctx context.Context, campaignID string, fields []string, datePreset string) ([]domain.Insight, error) {
	return m.get(ctx, campaignID, fields, datePreset)
}

// AdSetInsights returns insight records for one ad set.
func (m *InsightsManager) AdSetInsights(ctx context.Context, adSetID string, fields []string, datePreset string) ([]domain.Insight, error) {
	return m.get(ctx, adSetID, fields, datePreset)
}

// AccountInsights returns insight records for the whole ad account.
func (m *InsightsManager) AccountInsights(ctx context.Context, fields []string, datePreset string) ([]domain.Insight, error) {
	return m.get(ctx, m.client.accountID, fields, datePreset)
}

func (m *InsightsManager) get(ctx context.Context, scope string, fields []string, datePreset string) ([]domain.Insight, error) {
	selected := defaultInsightFields
	if len(fields) > 0 {
		selected = strings.Join(fields, ",")
	}
	if datePreset == "" {
		datePreset = defaultDatePreset
	}

	params := url.Values{}
	params.Set("fields", selected)
	params.Set("date_preset", datePreset)

	raw, err := m.client.Get(ctx, "/"+scope+"/insights", params)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Insight](raw)
}
