package domain

// Ad is the leaf object pairing an ad set with a creative; what actually
// serves to users.
type Ad struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	AdSetID  string       `json:"adset_id"`
	Creative *CreativeRef `json:"creative,omitempty"`
	Status   Status       `json:"status"`
}

// CreativeRef references an existing creative by id. Serialized as a JSON
// string field on ad creation.
type CreativeRef struct {
	CreativeID string `json:"creative_id"`
}
