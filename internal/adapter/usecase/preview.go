package usecase

import (
	"context"

	"ad-launcher/internal/core/port"
)

const defaultAdFormat = "DESKTOP_FEED_STANDARD"

// PreviewBuilder implements port.Previewer. It builds the same creative
// spec the launch pipeline would and asks the platform to render it,
// persisting nothing.
type PreviewBuilder struct {
	api    port.PreviewAPI
	pageID string
}

// NewPreviewBuilder wires the preview edge.
func NewPreviewBuilder(api port.PreviewAPI, pageID string) *PreviewBuilder {
	return &PreviewBuilder{api: api, pageID: pageID}
}

// Render validates the request, renders the creative and returns the first
// preview's HTML fragment.
func (b *PreviewBuilder) Render(ctx context.Context, req port.PreviewRequest) (string, error) {
	if req.Headline == "" || req.Body == "" || req.Link == "" {
		return "", port.ValidationError("headline, body, and link are required")
	}

	spec := port.CreativeSpec{
		ObjectStorySpec: linkStorySpec(b.pageID, linkAdFields{
			Headline:    req.Headline,
			Body:        req.Body,
			Link:        req.Link,
			Description: req.LinkDescription,
			ImageURL:    req.ImageURL,
			CTAType:     req.CTAType,
		}),
	}

	previews, err := b.api.GeneratePreviews(ctx, spec, orDefault(req.AdFormat, defaultAdFormat))
	if err != nil {
		return "", err
	}
	if len(previews) == 0 {
		return "", port.ErrNoPreview
	}
	return previews[0].Body, nil
}
