package usecase

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"ad-launcher/internal/core/domain"
	"ad-launcher/internal/core/port"
)

// Launch step names used for failure attribution.
const (
	stepCampaign = "Campaign"
	stepAdSet    = "Ad Set"
	stepCreative = "Creative"
	stepAd       = "Ad"
)

// errAdNotMaterialized covers the case where the platform accepts the ad
// creation request but returns no id. Observed when account-level
// authentication prompts block ad delivery; the real precondition is
// undocumented.
var errAdNotMaterialized = errors.New("ad creation returned no id, check Ads Manager for account authentication prompts")

// LaunchPipeline implements port.Launcher: a strictly sequential
// Campaign → Ad Set → Creative → Ad creation chain where each step
// consumes the previous step's id. There is no rollback; a failure leaves
// upstream objects in place and is attributed to the step that was
// running.
type LaunchPipeline struct {
	campaigns port.CampaignManager
	adSets    port.AdSetManager
	creatives port.CreativeManager
	ads       port.AdManager

	// history is optional; nil disables audit recording.
	history port.LaunchHistory

	pageID         string
	defaultCountry string
	logger         *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

// NewLaunchPipeline wires the four managers and the optional audit store.
func NewLaunchPipeline(
	campaigns port.CampaignManager,
	adSets port.AdSetManager,
	creatives port.CreativeManager,
	ads port.AdManager,
	history port.LaunchHistory,
	pageID, defaultCountry string,
	logger *slog.Logger,
) *LaunchPipeline {
	return &LaunchPipeline{
		campaigns:      campaigns,
		adSets:         adSets,
		creatives:      creatives,
		ads:            ads,
		history:        history,
		pageID:         pageID,
		defaultCountry: defaultCountry,
		logger:         logger,
		now:            time.Now,
	}
}

// Launch validates the request and runs the four creation steps. All
// objects are created PAUSED; activation is a separate operator action.
func (p *LaunchPipeline) Launch(ctx context.Context, req port.LaunchRequest) (*port.LaunchResult, error) {
	if req.Headline == "" || req.Body == "" || req.Link == "" || req.DailyBudget == 0 {
		return nil, port.ValidationError("headline, body, link, and dailyBudget are required")
	}

	timestamp := p.now().UTC().Format("2006-01-02T15:04")
	budgetMinor := strconv.FormatInt(int64(math.Round(req.DailyBudget*100)), 10)

	var res port.LaunchResult
	var step string
	fail := func(err error) (*port.LaunchResult, error) {
		stepErr := &port.StepError{Step: step, Err: err}
		p.logger.Error("launch failed",
			slog.String("step", step),
			slog.Any("error", err))
		p.record(ctx, res, step, stepErr.Error())
		return nil, stepErr
	}

	step = stepCampaign
	campaignName := req.CampaignName
	if campaignName == "" {
		campaignName = "Ad Launch " + timestamp
	}
	objective := domain.ObjectiveTraffic
	if req.Objective != "" {
		objective = domain.Objective(req.Objective)
	}
	categories := []string{domain.SpecialAdCategoryNone}
	if req.SpecialCategory != "" && req.SpecialCategory != domain.SpecialAdCategoryNone {
		categories = []string{req.SpecialCategory}
	}
	campaignID, err := p.campaigns.Create(ctx, port.CreateCampaignParams{
		Name:                campaignName,
		Objective:           objective,
		Status:              domain.StatusPaused,
		SpecialAdCategories: categories,
		BidStrategy:         req.BidStrategy,
	})
	if err != nil {
		return fail(err)
	}
	res.CampaignID = campaignID

	step = stepAdSet
	adSetID, err := p.adSets.Create(ctx, port.CreateAdSetParams{
		Name:             "AdSet " + timestamp,
		CampaignID:       campaignID,
		DailyBudget:      budgetMinor,
		Targeting:        p.buildTargeting(req),
		Status:           domain.StatusPaused,
		BillingEvent:     orDefault(req.BillingEvent, "IMPRESSIONS"),
		OptimizationGoal: orDefault(req.OptimizationGoal, "LINK_CLICKS"),
		DestinationType:  orDefault(req.DestinationType, "WEBSITE"),
		BidAmount:        orDefault(req.BidAmount, "200"),
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
	})
	if err != nil {
		return fail(err)
	}
	res.AdSetID = adSetID

	step = stepCreative
	creativeID, err := p.creatives.Create(ctx, port.CreateCreativeParams{
		Name: "Creative " + timestamp,
		ObjectStorySpec: linkStorySpec(p.pageID, linkAdFields{
			Headline:    req.Headline,
			Body:        req.Body,
			Link:        req.Link,
			Description: req.LinkDescription,
			ImageURL:    req.ImageURL,
			CTAType:     req.CTAType,
		}),
	})
	if err != nil {
		return fail(err)
	}
	res.CreativeID = creativeID

	step = stepAd
	adID, err := p.ads.Create(ctx, port.CreateAdParams{
		Name:     "Ad " + timestamp,
		AdSetID:  adSetID,
		Creative: domain.CreativeRef{CreativeID: creativeID},
		Status:   domain.StatusPaused,
	})
	if err != nil {
		return fail(err)
	}
	if adID == "" {
		return fail(errAdNotMaterialized)
	}
	res.AdID = adID

	p.logger.Info("launch complete",
		slog.String("campaign_id", res.CampaignID),
		slog.String("adset_id", res.AdSetID),
		slog.String("creative_id", res.CreativeID),
		slog.String("ad_id", res.AdID))
	p.record(ctx, res, "", "")
	return &res, nil
}

// buildTargeting maps the flat request fields onto a Graph targeting
// structure. Gender "all" or empty means no gender filter at all; the
// advantage-audience automation is always off.
func (p *LaunchPipeline) buildTargeting(req port.LaunchRequest) domain.Targeting {
	ageMin := req.AgeMin
	if ageMin == 0 {
		ageMin = 25
	}
	ageMax := req.AgeMax
	if ageMax == 0 {
		ageMax = 55
	}
	t := domain.Targeting{
		GeoLocations: &domain.GeoLocations{
			Countries: []string{orDefault(req.Country, p.defaultCountry)},
		},
		AgeMin:     ageMin,
		AgeMax:     ageMax,
		Automation: &domain.Automation{AdvantageAudience: 0},
	}
	switch req.Gender {
	case "male":
		t.Genders = []int{1}
	case "female":
		t.Genders = []int{2}
	}
	return t
}

// record writes the attempt to the audit store when one is configured.
// Recording is best-effort: it runs on a detached short-deadline context
// and a failure only logs.
func (p *LaunchPipeline) record(ctx context.Context, res port.LaunchResult, failedStep, errMsg string) {
	if p.history == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	rec := port.LaunchRecord{
		ID:         uuid.NewString(),
		CampaignID: res.CampaignID,
		AdSetID:    res.AdSetID,
		CreativeID: res.CreativeID,
		AdID:       res.AdID,
		FailedStep: failedStep,
		Error:      errMsg,
		CreatedAt:  p.now().UTC(),
	}
	if err := p.history.RecordLaunch(ctx, rec); err != nil {
		p.logger.Warn("launch audit write failed", slog.Any("error", err))
	}
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
