package usecase

import "ad-launcher/internal/core/domain"

// linkAdFields are the caller-supplied pieces of a link ad. Description,
// ImageURL and CTAType are optional and omitted from the spec when empty.
type linkAdFields struct {
	Headline    string
	Body        string
	Link        string
	Description string
	ImageURL    string
	CTAType     string
}

// linkStorySpec builds the object_story_spec shared by the launch pipeline
// and the preview builder. The call-to-action is present only when a type
// was supplied and always targets the destination link.
func linkStorySpec(pageID string, f linkAdFields) domain.StorySpec {
	link := &domain.LinkData{
		Link:        f.Link,
		Message:     f.Body,
		Name:        f.Headline,
		Description: f.Description,
		Picture:     f.ImageURL,
	}
	if f.CTAType != "" {
		link.CallToAction = &domain.CallToAction{
			Type:  f.CTAType,
			Value: domain.CTAValue{Link: f.Link},
		}
	}
	return domain.StorySpec{PageID: pageID, LinkData: link}
}
