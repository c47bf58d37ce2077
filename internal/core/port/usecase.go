package port

import (
	"context"

	"ad-launcher/internal/core/domain"
)

// Launcher runs the four-step launch pipeline. This is the primary inbound
// port of the application.
type Launcher interface {
	// Launch validates the request, then creates a campaign, an ad set,
	// a creative and an ad in that order, each referencing the previous
	// step's id. All four objects are created PAUSED. On failure the
	// returned error is a *StepError naming the step that failed (or a
	// ValidationError when input was rejected locally) and nothing
	// already created is rolled back.
	Launch(ctx context.Context, req LaunchRequest) (*LaunchResult, error)
}

// Cascader propagates a campaign-level status change down to the
// campaign's ad sets and their ads.
type Cascader interface {
	// Pause sets the campaign PAUSED, then every ACTIVE ad set under it,
	// then every ACTIVE ad under each such ad set. A failure partway
	// stops the cascade and propagates, leaving a mixed-status tree.
	Pause(ctx context.Context, campaignID string) error
	// Activate is the mirror of Pause for the PAUSED→ACTIVE direction.
	Activate(ctx context.Context, campaignID string) error
}

// Overview serves the campaign dashboard: listing with optional insights
// enrichment, quick test-campaign creation, deletion and the account
// summary.
type Overview interface {
	// ListCampaigns returns the account's campaigns. When withInsights is
	// set each campaign is enriched with impressions/clicks/spend;
	// a per-campaign insights failure leaves that campaign unenriched.
	ListCampaigns(ctx context.Context, withInsights bool) ([]domain.Campaign, error)
	// CreateTestCampaign creates a paused lead-objective campaign named
	// after the current timestamp and returns its id and name.
	CreateTestCampaign(ctx context.Context) (id, name string, err error)
	// DeleteCampaign removes the campaign remotely.
	DeleteCampaign(ctx context.Context, id string) error
	// AccountSummary returns the account-level insight record over the
	// last 30 days, or nil when the platform has none.
	AccountSummary(ctx context.Context) (*domain.Insight, error)
}

// Previewer renders an ad preview from creative fields without persisting
// anything.
type Previewer interface {
	// Render returns an HTML preview fragment. It returns a
	// ValidationError when required fields are missing and ErrNoPreview
	// when the platform renders nothing.
	Render(ctx context.Context, req PreviewRequest) (string, error)
}

// LaunchRequest is the flat form submitted to the launch endpoint. Field
// names match the web client's JSON payload.
type LaunchRequest struct {
	Headline         string  `json:"headline"`
	Body             string  `json:"body"`
	ImageURL         string  `json:"imageUrl"`
	Link             string  `json:"link"`
	Country          string  `json:"country"`
	AgeMin           int     `json:"ageMin"`
	AgeMax           int     `json:"ageMax"`
	DailyBudget      float64 `json:"dailyBudget"`
	CampaignName     string  `json:"campaignName"`
	Objective        string  `json:"objective"`
	SpecialCategory  string  `json:"specialAdCategory"`
	BidStrategy      string  `json:"bidStrategy"`
	OptimizationGoal string  `json:"optimizationGoal"`
	BillingEvent     string  `json:"billingEvent"`
	DestinationType  string  `json:"destinationType"`
	BidAmount        string  `json:"bidAmount"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	CTAType          string  `json:"ctaType"`
	LinkDescription  string  `json:"linkDescription"`
	Gender           string  `json:"gender"`
}

// LaunchResult carries the four ids created by a successful launch.
type LaunchResult struct {
	CampaignID string `json:"campaignId"`
	AdSetID    string `json:"adSetId"`
	CreativeID string `json:"creativeId"`
	AdID       string `json:"adId"`
}

// PreviewRequest is the form submitted to the preview endpoint.
type PreviewRequest struct {
	Headline        string `json:"headline"`
	Body            string `json:"body"`
	ImageURL        string `json:"imageUrl"`
	Link            string `json:"link"`
	LinkDescription string `json:"linkDescription"`
	CTAType         string `json:"ctaType"`
	AdFormat        string `json:"adFormat"`
}
