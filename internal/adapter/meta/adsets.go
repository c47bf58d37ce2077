package meta

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	"ad-launcher/internal/core/domain"
	"ad-launcher/internal/core/port"
)

const adSetFields = "id,name,campaign_id,status,daily_budget,targeting,start_time,end_time"

// AdSetManager implements port.AdSetManager against the Graph API.
type AdSetManager struct {
	client *Client
	logger *slog.Logger
}

// NewAdSetManager returns a manager bound to the client's ad account.
func NewAdSetManager(client *Client, logger *slog.Logger) *AdSetManager {
	return &AdSetManager{client: client, logger: logger}
}

// Create creates an ad set under params.CampaignID and returns its id.
// The targeting structure is JSON-encoded into a string-valued field, as
// the Graph API expects. Billing event and optimization goal fall back to
// IMPRESSIONS and LINK_CLICKS.
func (m *AdSetManager) Create(ctx context.Context, p port.CreateAdSetParams) (string, error) {
	status := p.Status
	if status == "" {
		status = domain.StatusPaused
	}
	billingEvent := p.BillingEvent
	if billingEvent == "" {
		billingEvent = "IMPRESSIONS"
	}
	optimizationGoal := p.OptimizationGoal
	if optimizationGoal == "" {
		optimizationGoal = "LINK_CLICKS"
	}
	targeting, err := json.Marshal(p.Targeting)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("name", p.Name)
	params.Set("campaign_id", p.CampaignID)
	params.Set("status", string(status))
	params.Set("targeting", string(targeting))
	params.Set("billing_event", billingEvent)
	params.Set("optimization_goal", optimizationGoal)
	if p.DailyBudget != "" {
		params.Set("daily_budget", p.DailyBudget)
	}
	if p.LifetimeBudget != "" {
		params.Set("lifetime_budget", p.LifetimeBudget)
	}
	if p.DestinationType != "" {
		params.Set("destination_type", p.DestinationType)
	}
	if p.BidAmount != "" {
		params.Set("bid_amount", p.BidAmount)
	}
	if p.StartTime != "" {
		params.Set("start_time", p.StartTime)
	}
	if p.EndTime != "" {
		params.Set("end_time", p.EndTime)
	}

	raw, err := m.client.Post(ctx, "/"+m.client.accountID+"/adsets", params)
	if err != nil {
		return "", err
	}
	id, err := decodeID(raw)
	if err != nil {
		return "", err
	}
	m.logger.Info("ad set created", slog.String("id", id), slog.String("campaign_id", p.CampaignID))
	return id, nil
}

// List returns ad sets under the campaign, or under the ad account when
// campaignID is empty.
func (m *AdSetManager) List(ctx context.Context, campaignID string) ([]domain.AdSet, error) {
	scope := m.client.accountID
	if campaignID != "" {
		scope = campaignID
	}
	params := url.Values{}
	params.Set("fields", adSetFields)
	raw, err := m.client.Get(ctx, "/"+scope+"/adsets", params)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.AdSet](raw)
}

// Get fetches one ad set by id.
func (m *AdSetManager) Get(ctx context.Context, id string) (*domain.AdSet, error) {
	params := url.Values{}
	params.Set("fields", adSetFields+",lifetime_budget")
	raw, err := m.client.Get(ctx, "/"+id, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.AdSet](raw)
}

// UpdateStatus sets the ad set's delivery status.
func (m *AdSetManager) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	params := url.Values{}
	params.Set("status", string(status))
	if _, err := m.client.Post(ctx, "/"+id, params); err != nil {
		return err
	}
	m.logger.Info("ad set status updated", slog.String("id", id), slog.String("status", string(status)))
	return nil
}

func (m *AdSetManager) Pause(ctx context.Context, id string) error {
	return m.UpdateStatus(ctx, id, domain.StatusPaused)
}

func (m *AdSetManager) Activate(ctx context.Context, id string) error {
	return m.UpdateStatus(ctx, id, domain.StatusActive)
}
