package configs

import (
	"errors"
	"fmt"
	"strings"
)

// Meta holds credentials and account coordinates for the Meta Marketing
// Graph API. AccessToken and PageID have no sensible defaults and must be
// provided. AdAccountID is the "act_"-prefixed ad account identifier shown
// in Ads Manager. BaseURL exists so tests can point the client at a local
// server instead of graph.facebook.com.
type Meta struct {
	// AccessToken authenticates every Graph API call.
	AccessToken string `env:"ACCESS_TOKEN"`
	// AdAccountID scopes creation and listing calls. Must start with "act_".
	AdAccountID string `env:"AD_ACCOUNT_ID"`
	// APIVersion selects the Graph API version path segment.
	APIVersion string `env:"API_VERSION" envDefault:"v21.0"`
	// PageID is the Facebook page creatives are published under.
	PageID string `env:"PAGE_ID"`
	// BaseURL is the Graph API origin.
	BaseURL string `env:"BASE_URL" envDefault:"https://graph.facebook.com"`
	// DefaultCountry is the targeting fallback when a launch request
	// carries no country.
	DefaultCountry string `env:"DEFAULT_COUNTRY" envDefault:"US"`
}

// Validate checks the required fields and the ad account id format. The
// returned errors carry enough detail to fix the environment without
// consulting the docs.
func (c Meta) Validate() error {
	if c.AccessToken == "" {
		return errors.New("META_ACCESS_TOKEN is not set; get a token from https://developers.facebook.com/tools/explorer/")
	}
	if c.AdAccountID == "" {
		return errors.New("META_AD_ACCOUNT_ID is not set; format act_XXXXXXXXX, find it in Meta Ads Manager settings")
	}
	if !strings.HasPrefix(c.AdAccountID, "act_") {
		return fmt.Errorf("META_AD_ACCOUNT_ID %q must start with \"act_\"", c.AdAccountID)
	}
	if c.PageID == "" {
		return errors.New("META_PAGE_ID is not set")
	}
	return nil
}
