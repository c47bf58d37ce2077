package domain

// AdCreative is the rendered content definition referenced by an ad.
// Immutable once created.
type AdCreative struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Title            string     `json:"title,omitempty"`
	Body             string     `json:"body,omitempty"`
	ImageURL         string     `json:"image_url,omitempty"`
	ObjectStorySpec  *StorySpec `json:"object_story_spec,omitempty"`
	CallToActionType string     `json:"call_to_action_type,omitempty"`
}

// StorySpec is the object_story_spec payload: the page the creative posts
// under plus the link-ad content. Serialized as a JSON string field on
// creation, so tags match the wire names exactly.
type StorySpec struct {
	PageID   string    `json:"page_id"`
	LinkData *LinkData `json:"link_data,omitempty"`
}

// LinkData is the content of a link ad: destination, primary text, headline
// and optional description, image and call to action.
type LinkData struct {
	Link         string        `json:"link"`
	Message      string        `json:"message"`
	Name         string        `json:"name,omitempty"`
	Description  string        `json:"description,omitempty"`
	Picture      string        `json:"picture,omitempty"`
	CallToAction *CallToAction `json:"call_to_action,omitempty"`
}

// CallToAction is the button on a link ad. Value carries the click-through
// link the button targets.
type CallToAction struct {
	Type  string   `json:"type"`
	Value CTAValue `json:"value"`
}

// CTAValue is the call-to-action target.
type CTAValue struct {
	Link string `json:"link"`
}
