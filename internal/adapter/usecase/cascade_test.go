package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"ad-launcher/internal/core/domain"
)

type cascadeFixture struct {
	updater   *CascadeUpdater
	log       *callLog
	campaigns *fakeCampaigns
	adSets    *fakeAdSets
	ads       *fakeAds
}

func newCascadeFixture() *cascadeFixture {
	log := &callLog{}
	f := &cascadeFixture{
		log:       log,
		campaigns: &fakeCampaigns{log: log},
		adSets:    &fakeAdSets{log: log},
		ads:       &fakeAds{log: log},
	}
	f.updater = NewCascadeUpdater(f.campaigns, f.adSets, f.ads, discardLogger())
	return f
}

// TestCascadePause covers the mixed tree: two ad sets, one
// ACTIVE with one ACTIVE ad, one already PAUSED. Exactly three status
// mutations happen and the paused subtree is untouched.
func TestCascadePause(t *testing.T) {
	f := newCascadeFixture()
	f.adSets.listByCamp = map[string][]domain.AdSet{
		"cmp-1": {
			{ID: "set-active", Status: domain.StatusActive},
			{ID: "set-paused", Status: domain.StatusPaused},
		},
	}
	f.ads.listBySet = map[string][]domain.Ad{
		"set-active": {
			{ID: "ad-active", Status: domain.StatusActive},
			{ID: "ad-paused", Status: domain.StatusPaused},
		},
		"set-paused": {
			{ID: "ad-under-paused", Status: domain.StatusActive},
		},
	}

	require.NoError(t, f.updater.Pause(context.Background(), "cmp-1"))

	require.Equal(t, []string{"cmp-1:PAUSED"}, f.campaigns.statusSets)
	require.Equal(t, []string{"set-active:PAUSED"}, f.adSets.statusSets)
	require.Equal(t, []string{"ad-active:PAUSED"}, f.ads.statusSets)

	statusCalls := 0
	for _, call := range f.log.calls {
		if call == "campaigns.updateStatus" || call == "adsets.updateStatus" || call == "ads.updateStatus" {
			statusCalls++
		}
	}
	require.Equal(t, 3, statusCalls)
}

// TestCascadeActivate is the mirror direction.
func TestCascadeActivate(t *testing.T) {
	f := newCascadeFixture()
	f.adSets.listByCamp = map[string][]domain.AdSet{
		"cmp-1": {
			{ID: "set-a", Status: domain.StatusPaused},
			{ID: "set-b", Status: domain.StatusActive},
		},
	}
	f.ads.listBySet = map[string][]domain.Ad{
		"set-a": {
			{ID: "ad-a", Status: domain.StatusPaused},
		},
	}

	require.NoError(t, f.updater.Activate(context.Background(), "cmp-1"))

	require.Equal(t, []string{"cmp-1:ACTIVE"}, f.campaigns.statusSets)
	require.Equal(t, []string{"set-a:ACTIVE"}, f.adSets.statusSets)
	require.Equal(t, []string{"ad-a:ACTIVE"}, f.ads.statusSets)
}

// TestCascadeOrder verifies the traversal order: campaign first, then ad
// sets in listing order with each ad set's ads before the next ad set.
func TestCascadeOrder(t *testing.T) {
	f := newCascadeFixture()
	f.adSets.listByCamp = map[string][]domain.AdSet{
		"cmp-1": {
			{ID: "set-1", Status: domain.StatusActive},
			{ID: "set-2", Status: domain.StatusActive},
		},
	}
	f.ads.listBySet = map[string][]domain.Ad{
		"set-1": {{ID: "ad-1", Status: domain.StatusActive}},
		"set-2": {{ID: "ad-2", Status: domain.StatusActive}},
	}

	require.NoError(t, f.updater.Pause(context.Background(), "cmp-1"))
	require.Equal(t, []string{
		"campaigns.updateStatus",
		"adsets.list",
		"adsets.updateStatus", "ads.list", "ads.updateStatus",
		"adsets.updateStatus", "ads.list", "ads.updateStatus",
	}, f.log.calls)
}

// TestCascadeStopsOnFailure verifies a mid-cascade failure stops further
// mutation and propagates, leaving the remaining children untouched.
func TestCascadeStopsOnFailure(t *testing.T) {
	f := newCascadeFixture()
	f.adSets.listByCamp = map[string][]domain.AdSet{
		"cmp-1": {
			{ID: "set-bad", Status: domain.StatusActive},
			{ID: "set-later", Status: domain.StatusActive},
		},
	}
	f.adSets.statusErr = map[string]error{"set-bad": errors.New("remote error")}

	err := f.updater.Pause(context.Background(), "cmp-1")
	require.Error(t, err)

	// Campaign was flipped, nothing after the failing ad set was touched.
	require.Equal(t, []string{"cmp-1:PAUSED"}, f.campaigns.statusSets)
	require.Empty(t, f.adSets.statusSets)
	require.Empty(t, f.ads.statusSets)
}
