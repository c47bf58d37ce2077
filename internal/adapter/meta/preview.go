package meta

import (
	"context"
	"encoding/json"
	"net/url"

	"ad-launcher/internal/core/port"
)

// PreviewManager implements port.PreviewAPI. The generatepreviews edge
// renders a creative spec without persisting anything.
type PreviewManager struct {
	client *Client
}

// NewPreviewManager returns a manager bound to the client's ad account.
func NewPreviewManager(client *Client) *PreviewManager {
	return &PreviewManager{client: client}
}

// GeneratePreviews asks the platform to render the creative spec for the
// given ad format and returns the preview fragments.
func (m *PreviewManager) GeneratePreviews(ctx context.Context, creative port.CreativeSpec, adFormat string) ([]port.Preview, error) {
	spec, err := json.Marshal(creative)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("creative", string(spec))
	params.Set("ad_format", adFormat)

	raw, err := m.client.Get(ctx, "/"+m.client.accountID+"/generatepreviews", params)
	if err != nil {
		return nil, err
	}
	return decodeList[port.Preview](raw)
}
