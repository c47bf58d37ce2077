package domain

// Insight is a read-only performance record for a resource and time
// window, computed remotely. The Graph API returns all metrics as strings.
type Insight struct {
	Impressions string `json:"impressions,omitempty"`
	Clicks      string `json:"clicks,omitempty"`
	Spend       string `json:"spend,omitempty"`
	CPC         string `json:"cpc,omitempty"`
	CPM         string `json:"cpm,omitempty"`
	CTR         string `json:"ctr,omitempty"`
	Reach       string `json:"reach,omitempty"`
	Frequency   string `json:"frequency,omitempty"`
}
