package meta

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	"ad-launcher/internal/core/domain"
	"ad-launcher/internal/core/port"
)

const creativeFields = "id,name,title,body,image_url,object_story_spec"

// CreativeManager implements port.CreativeManager against the Graph API.
// Creatives are immutable once created.
type CreativeManager struct {
	client *Client
	logger *slog.Logger
}

// NewCreativeManager returns a manager bound to the client's ad account.
func NewCreativeManager(client *Client, logger *slog.Logger) *CreativeManager {
	return &CreativeManager{client: client, logger: logger}
}

// Create creates an ad creative and returns its id. The story spec is
// JSON-encoded into a string-valued field.
func (m *CreativeManager) Create(ctx context.Context, p port.CreateCreativeParams) (string, error) {
	spec, err := json.Marshal(p.ObjectStorySpec)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("name", p.Name)
	params.Set("object_story_spec", string(spec))

	raw, err := m.client.Post(ctx, "/"+m.client.accountID+"/adcreatives", params)
	if err != nil {
		return "", err
	}
	id, err := decodeID(raw)
	if err != nil {
		return "", err
	}
	m.logger.Info("creative created", slog.String("id", id))
	return id, nil
}

// List returns the account's creatives.
func (m *CreativeManager) List(ctx context.Context) ([]domain.AdCreative, error) {
	params := url.Values{}
	params.Set("fields", creativeFields)
	raw, err := m.client.Get(ctx, "/"+m.client.accountID+"/adcreatives", params)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.AdCreative](raw)
}

// Get fetches one creative by id.
func (m *CreativeManager) Get(ctx context.Context, id string) (*domain.AdCreative, error) {
	params := url.Values{}
	params.Set("fields", creativeFields)
	raw, err := m.client.Get(ctx, "/"+id, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.AdCreative](raw)
}
