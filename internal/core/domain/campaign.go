package domain

// Campaign is a top-level advertising container as returned by the Graph
// API. Identifiers are opaque strings owned by the remote platform; no
// local copy of the object graph is kept. Budget fields are minor-unit
// amounts encoded as strings on the wire.
type Campaign struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Objective       Objective `json:"objective"`
	Status          Status    `json:"status"`
	EffectiveStatus string    `json:"effective_status,omitempty"`
	DailyBudget     string    `json:"daily_budget,omitempty"`
	LifetimeBudget  string    `json:"lifetime_budget,omitempty"`
	CreatedTime     string    `json:"created_time,omitempty"`
	UpdatedTime     string    `json:"updated_time,omitempty"`

	// Enrichment from the insights edge, present only when the caller
	// asked for it and the per-campaign insights call succeeded.
	Impressions string `json:"impressions,omitempty"`
	Clicks      string `json:"clicks,omitempty"`
	Spend       string `json:"spend,omitempty"`
}
