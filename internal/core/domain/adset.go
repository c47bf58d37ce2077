package domain

// AdSet is the budget/targeting/schedule unit nested under a campaign.
type AdSet struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	CampaignID       string     `json:"campaign_id"`
	Status           Status     `json:"status"`
	DailyBudget      string     `json:"daily_budget,omitempty"`
	LifetimeBudget   string     `json:"lifetime_budget,omitempty"`
	Targeting        *Targeting `json:"targeting,omitempty"`
	StartTime        string     `json:"start_time,omitempty"`
	EndTime          string     `json:"end_time,omitempty"`
	BidAmount        int64      `json:"bid_amount,omitempty"`
	BillingEvent     string     `json:"billing_event,omitempty"`
	OptimizationGoal string     `json:"optimization_goal,omitempty"`
}

// Targeting describes who an ad set is delivered to. It is serialized as
// a JSON string inside the ad set creation form, so json tags here are the
// exact Graph API field names. Genders uses the platform's numeric codes:
// 1 male, 2 female; an absent key means no gender filter.
type Targeting struct {
	GeoLocations *GeoLocations `json:"geo_locations,omitempty"`
	AgeMin       int           `json:"age_min,omitempty"`
	AgeMax       int           `json:"age_max,omitempty"`
	Genders      []int         `json:"genders,omitempty"`
	Automation   *Automation   `json:"targeting_automation,omitempty"`
}

// GeoLocations restricts delivery geographically.
type GeoLocations struct {
	Countries []string `json:"countries,omitempty"`
}

// Automation carries the advantage-audience switch. AdvantageAudience is an
// int rather than a bool because the Graph API expects 0/1.
type Automation struct {
	AdvantageAudience int `json:"advantage_audience"`
}
