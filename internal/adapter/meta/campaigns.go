package meta

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	"ad-launcher/internal/core/domain"
	"ad-launcher/internal/core/port"
)

const campaignFields = "id,name,objective,status,effective_status,daily_budget,lifetime_budget,created_time"

// CampaignManager implements port.CampaignManager against the Graph API.
type CampaignManager struct {
	client *Client
	logger *slog.Logger
}

// NewCampaignManager returns a manager bound to the client's ad account.
func NewCampaignManager(client *Client, logger *slog.Logger) *CampaignManager {
	return &CampaignManager{client: client, logger: logger}
}

// Create creates a campaign and returns its id. Special ad categories
// default to ["NONE"]; ad-set budget sharing is always disabled.
func (m *CampaignManager) Create(ctx context.Context, p port.CreateCampaignParams) (string, error) {
	status := p.Status
	if status == "" {
		status = domain.StatusPaused
	}
	categories := p.SpecialAdCategories
	if len(categories) == 0 {
		categories = []string{domain.SpecialAdCategoryNone}
	}
	encoded, err := json.Marshal(categories)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("name", p.Name)
	params.Set("objective", string(p.Objective))
	params.Set("status", string(status))
	params.Set("special_ad_categories", string(encoded))
	params.Set("is_adset_budget_sharing_enabled", "false")
	if p.BidStrategy != "" {
		params.Set("bid_strategy", p.BidStrategy)
	}

	raw, err := m.client.Post(ctx, "/"+m.client.accountID+"/campaigns", params)
	if err != nil {
		return "", err
	}
	id, err := decodeID(raw)
	if err != nil {
		return "", err
	}
	m.logger.Info("campaign created", slog.String("id", id))
	return id, nil
}

// List returns the account's campaigns.
func (m *CampaignManager) List(ctx context.Context) ([]domain.Campaign, error) {
	params := url.Values{}
	params.Set("fields", campaignFields)
	raw, err := m.client.Get(ctx, "/"+m.client.accountID+"/campaigns", params)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Campaign](raw)
}

// Get fetches one campaign by id.
func (m *CampaignManager) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	params := url.Values{}
	params.Set("fields", campaignFields+",updated_time")
	raw, err := m.client.Get(ctx, "/"+id, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Campaign](raw)
}

// UpdateStatus sets the campaign's delivery status.
func (m *CampaignManager) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	params := url.Values{}
	params.Set("status", string(status))
	if _, err := m.client.Post(ctx, "/"+id, params); err != nil {
		return err
	}
	m.logger.Info("campaign status updated", slog.String("id", id), slog.String("status", string(status)))
	return nil
}

func (m *CampaignManager) Pause(ctx context.Context, id string) error {
	return m.UpdateStatus(ctx, id, domain.StatusPaused)
}

func (m *CampaignManager) Activate(ctx context.Context, id string) error {
	return m.UpdateStatus(ctx, id, domain.StatusActive)
}

// Remove deletes the campaign remotely.
func (m *CampaignManager) Remove(ctx context.Context, id string) error {
	if _, err := m.client.Delete(ctx, "/"+id); err != nil {
		return err
	}
	m.logger.Info("campaign deleted", slog.String("id", id))
	return nil
}
