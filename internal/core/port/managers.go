package port

import (
	"context"

	"ad-launcher/internal/core/domain"
)

// CampaignManager wraps the Graph API campaign resource. It is an
// outbound port: the meta adapter implements it against the real API and
// tests substitute fakes. Create returns the remote-generated id; nested
// structures are serialized to the wire format inside the adapter.
type CampaignManager interface {
	Create(ctx context.Context, params CreateCampaignParams) (string, error)
	// List returns campaigns under the configured ad account.
	List(ctx context.Context) ([]domain.Campaign, error)
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	Pause(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
	// Remove deletes the campaign remotely.
	Remove(ctx context.Context, id string) error
}

// AdSetManager wraps the Graph API ad set resource.
type AdSetManager interface {
	Create(ctx context.Context, params CreateAdSetParams) (string, error)
	// List returns ad sets under the given campaign, or under the ad
	// account when campaignID is empty.
	List(ctx context.Context, campaignID string) ([]domain.AdSet, error)
	Get(ctx context.Context, id string) (*domain.AdSet, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	Pause(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
}

// CreativeManager wraps the Graph API ad creative resource. Creatives are
// immutable, so there is no status mutation.
type CreativeManager interface {
	Create(ctx context.Context, params CreateCreativeParams) (string, error)
	List(ctx context.Context) ([]domain.AdCreative, error)
	Get(ctx context.Context, id string) (*domain.AdCreative, error)
}

// AdManager wraps the Graph API ad resource.
type AdManager interface {
	Create(ctx context.Context, params CreateAdParams) (string, error)
	// List returns ads under the given ad set, or under the ad account
	// when adSetID is empty.
	List(ctx context.Context, adSetID string) ([]domain.Ad, error)
	Get(ctx context.Context, id string) (*domain.Ad, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	Pause(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
}

// InsightsManager reads performance metrics from the insights edge. A nil
// fields slice selects the default metric set; an empty datePreset selects
// the default window.
type InsightsManager interface {
	CampaignInsights(ctx context.Context, campaignID string, fields []string, datePreset string) ([]domain.Insight, error)
	AdSetInsights(ctx context.Context, adSetID string, fields []string, datePreset string) ([]domain.Insight, error)
	AccountInsights(ctx context.Context, fields []string, datePreset string) ([]domain.Insight, error)
}

// PreviewAPI renders an ad preview for a creative spec that is never
// persisted.
type PreviewAPI interface {
	// GeneratePreviews returns the rendered preview fragments for the
	// given creative spec and ad format.
	GeneratePreviews(ctx context.Context, creative CreativeSpec, adFormat string) ([]Preview, error)
}

// CreateCampaignParams carries the fields for campaign creation. Status
// defaults to PAUSED and SpecialAdCategories to ["NONE"] when empty.
type CreateCampaignParams struct {
	Name                string
	Objective           domain.Objective
	Status              domain.Status
	SpecialAdCategories []string
	BidStrategy         string
}

// CreateAdSetParams carries the fields for ad set creation. Budget and bid
// fields are minor-unit strings, matching the wire format. BillingEvent
// defaults to IMPRESSIONS and OptimizationGoal to LINK_CLICKS when empty.
type CreateAdSetParams struct {
	Name             string
	CampaignID       string
	DailyBudget      string
	LifetimeBudget   string
	Targeting        domain.Targeting
	Status           domain.Status
	BillingEvent     string
	OptimizationGoal string
	DestinationType  string
	BidAmount        string
	StartTime        string
	EndTime          string
}

// CreateCreativeParams carries the fields for creative creation.
type CreateCreativeParams struct {
	Name            string
	ObjectStorySpec domain.StorySpec
}

// CreateAdParams carries the fields for ad creation.
type CreateAdParams struct {
	Name     string
	AdSetID  string
	Creative domain.CreativeRef
	Status   domain.Status
}

// CreativeSpec is the unsaved creative payload sent to the preview edge.
type CreativeSpec struct {
	ObjectStorySpec domain.StorySpec `json:"object_story_spec"`
}

// Preview is one rendered preview fragment. Body is an HTML snippet.
type Preview struct {
	Body string `json:"body"`
}
