package meta

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	"ad-launcher/internal/core/domain"
	"ad-launcher/internal/core/port"
)

const adFields = "id,name,adset_id,status,creative{id,name}"

// AdManager implements port.AdManager against the Graph API.
type AdManager struct {
	client *Client
	logger *slog.Logger
}

// NewAdManager returns a manager bound to the client's ad account.
func NewAdManager(client *Client, logger *slog.Logger) *AdManager {
	return &AdManager{client: client, logger: logger}
}

// Create creates an ad under params.AdSetID referencing an existing
// creative and returns its id. The id may come back empty even on a 200
// response; callers that care must check (see the launch pipeline).
func (m *AdManager) Create(ctx context.Context, p port.CreateAdParams) (string, error) {
	status := p.Status
	if status == "" {
		status = domain.StatusPaused
	}
	creative, err := json.Marshal(p.Creative)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("name", p.Name)
	params.Set("adset_id", p.AdSetID)
	params.Set("creative", string(creative))
	params.Set("status", string(status))

	raw, err := m.client.Post(ctx, "/"+m.client.accountID+"/ads", params)
	if err != nil {
		return "", err
	}
	id, err := decodeID(raw)
	if err != nil {
		return "", err
	}
	m.logger.Info("ad created", slog.String("id", id), slog.String("adset_id", p.AdSetID))
	return id, nil
}

// List returns ads under the ad set, or under the ad account when adSetID
// is empty.
func (m *AdManager) List(ctx context.Context, adSetID string) ([]domain.Ad, error) {
	scope := m.client.accountID
	if adSetID != "" {
		scope = adSetID
	}
	params := url.Values{}
	params.Set("fields", adFields)
	raw, err := m.client.Get(ctx, "/"+scope+"/ads", params)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Ad](raw)
}

// Get fetches one ad by id.
func (m *AdManager) Get(ctx context.Context, id string) (*domain.Ad, error) {
	params := url.Values{}
	params.Set("fields", adFields)
	raw, err := m.client.Get(ctx, "/"+id, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Ad](raw)
}

// UpdateStatus sets the ad's delivery status.
func (m *AdManager) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	params := url.Values{}
	params.Set("status", string(status))
	if _, err := m.client.Post(ctx, "/"+id, params); err != nil {
		return err
	}
	m.logger.Info("ad status updated", slog.String("id", id), slog.String("status", string(status)))
	return nil
}

func (m *AdManager) Pause(ctx context.Context, id string) error {
	return m.UpdateStatus(ctx, id, domain.StatusPaused)
}

func (m *AdManager) Activate(ctx context.Context, id string) error {
	return m.UpdateStatus(ctx, id, domain.StatusActive)
}
