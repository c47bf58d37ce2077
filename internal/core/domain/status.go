package domain

// Status is the delivery lifecycle state shared by campaigns, ad sets and
// ads on the Graph API.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusPaused   Status = "PAUSED"
	StatusDeleted  Status = "DELETED"
	StatusArchived Status = "ARCHIVED"
)

// Objective is a campaign outcome objective (Graph API v21.0+).
type Objective string

const (
	ObjectiveAwareness    Objective = "OUTCOME_AWARENESS"
	ObjectiveTraffic      Objective = "OUTCOME_TRAFFIC"
	ObjectiveEngagement   Objective = "OUTCOME_ENGAGEMENT"
	ObjectiveLeads        Objective = "OUTCOME_LEADS"
	ObjectiveAppPromotion Objective = "OUTCOME_APP_PROMOTION"
	ObjectiveSales        Objective = "OUTCOME_SALES"
)

// SpecialAdCategoryNone is the compliance category sent when a campaign
// falls under none of the restricted verticals.
const SpecialAdCategoryNone = "NONE"
