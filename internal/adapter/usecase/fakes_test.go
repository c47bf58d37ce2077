package usecase

import (
	"context"
	"errors"

	"ad-launcher/internal/core/domain"
	"ad-launcher/internal/core/port"
)

// callLog records remote calls across fakes so tests can assert ordering
// and call counts.
type callLog struct {
	calls []string
}

func (l *callLog) add(name string) { l.calls = append(l.calls, name) }

type fakeCampaigns struct {
	log        *callLog
	createErr  error
	created    []port.CreateCampaignParams
	statusSets []string // "<id>:<status>"
	listResult []domain.Campaign
	listErr    error
}

func (f *fakeCampaigns) Create(_ context.Context, p port.CreateCampaignParams) (string, error) {
	f.log.add("campaigns.create")
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, p)
	return "cmp-1", nil
}

func (f *fakeCampaigns) List(context.Context) ([]domain.Campaign, error) {
	f.log.add("campaigns.list")
	return f.listResult, f.listErr
}

func (f *fakeCampaigns) Get(context.Context, string) (*domain.Campaign, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCampaigns) UpdateStatus(_ context.Context, id string, status domain.Status) error {
	f.log.add("campaigns.updateStatus")
	f.statusSets = append(f.statusSets, id+":"+string(status))
	return nil
}

func (f *fakeCampaigns) Pause(ctx context.Context, id string) error {
	return f.UpdateStatus(ctx, id, domain.StatusPaused)
}

func (f *fakeCampaigns) Activate(ctx context.Context, id string) error {
	return f.UpdateStatus(ctx, id, domain.StatusActive)
}

func (f *fakeCampaigns) Remove(_ context.Context, id string) error {
	f.log.add("campaigns.remove")
	return nil
}

type fakeAdSets struct {
	log        *callLog
	createErr  error
	created    []port.CreateAdSetParams
	statusErr  map[string]error
	statusSets []string
	listByCamp map[string][]domain.AdSet
}

func (f *fakeAdSets) Create(_ context.Context, p port.CreateAdSetParams) (string, error) {
	f.log.add("adsets.create")
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, p)
	return "set-1", nil
}

func (f *fakeAdSets) List(_ context.Context, campaignID string) ([]domain.AdSet, error) {
	f.log.add("adsets.list")
	return f.listByCamp[campaignID], nil
}

func (f *fakeAdSets) Get(context.Context, string) (*domain.AdSet, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAdSets) UpdateStatus(_ context.Context, id string, status domain.Status) error {
	f.log.add("adsets.updateStatus")
	if err := f.statusErr[id]; err != nil {
		return err
	}
	f.statusSets = append(f.statusSets, id+":"+string(status))
	return nil
}

func (f *fakeAdSets) Pause(ctx context.Context, id string) error {
	return f.UpdateStatus(ctx, id, domain.StatusPaused)
}

func (f *fakeAdSets) Activate(ctx context.Context, id string) error {
	return f.UpdateStatus(ctx, id, domain.StatusActive)
}

type fakeCreatives struct {
	log       *callLog
	createErr error
	created   []port.CreateCreativeParams
}

func (f *fakeCreatives) Create(_ context.Context, p port.CreateCreativeParams) (string, error) {
	f.log.add("creatives.create")
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, p)
	return "cr-1", nil
}

func (f *fakeCreatives) List(context.Context) ([]domain.AdCreative, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCreatives) Get(context.Context, string) (*domain.AdCreative, error) {
	return nil, errors.New("not implemented")
}

type fakeAds struct {
	log        *callLog
	createErr  error
	createID   string
	created    []port.CreateAdParams
	statusSets []string
	listBySet  map[string][]domain.Ad
}

func (f *fakeAds) Create(_ context.Context, p port.CreateAdParams) (string, error) {
	f.log.add("ads.create")
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, p)
	return f.createID, nil
}

func (f *fakeAds) List(_ context.Context, adSetID string) ([]domain.Ad, error) {
	f.log.add("ads.list")
	return f.listBySet[adSetID], nil
}

func (f *fakeAds) Get(context.Context, string) (*domain.Ad, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAds) UpdateStatus(_ context.Context, id string, status domain.Status) error {
	f.log.add("ads.updateStatus")
	f.statusSets = append(f.statusSets, id+":"+string(status))
	return nil
}

func (f *fakeAds) Pause(ctx context.Context, id string) error {
	return f.UpdateStatus(ctx, id, domain.StatusPaused)
}

func (f *fakeAds) Activate(ctx context.Context, id string) error {
	return f.UpdateStatus(ctx, id, domain.StatusActive)
}

type fakeInsights struct {
	log      *callLog
	byScope  map[string][]domain.Insight
	errScope map[string]error
	account  []domain.Insight
	accErr   error
}

func (f *fakeInsights) CampaignInsights(_ context.Context, campaignID string, _ []string, _ string) ([]domain.Insight, error) {
	f.log.add("insights.campaign")
	if err := f.errScope[campaignID]; err != nil {
		return nil, err
	}
	return f.byScope[campaignID], nil
}

func (f *fakeInsights) AdSetInsights(context.Context, string, []string, string) ([]domain.Insight, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeInsights) AccountInsights(context.Context, []string, string) ([]domain.Insight, error) {
	f.log.add("insights.account")
	return f.account, f.accErr
}

type fakeHistory struct {
	records []port.LaunchRecord
	err     error
}

func (f *fakeHistory) RecordLaunch(_ context.Context, rec port.LaunchRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeHistory) ListRecent(context.Context, int) ([]port.LaunchRecord, error) {
	return f.records, nil
}

type fakePreviewAPI struct {
	previews []port.Preview
	err      error
	spec     *port.CreativeSpec
	adFormat string
}

func (f *fakePreviewAPI) GeneratePreviews(_ context.Context, creative port.CreativeSpec, adFormat string) ([]port.Preview, error) {
	f.spec = &creative
	f.adFormat = adFormat
	return f.previews, f.err
}
