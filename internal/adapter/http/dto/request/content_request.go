package request

import "parceiros_internet/internal/domain/entities"

// TestimonialRequest is the admin payload for customer reviews.
type TestimonialRequest struct {
	Name      string `json:"name" binding:"required"`
	Location  string `json:"location" binding:"required"`
	Text      string `json:"text" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	AvatarURL string `json:"avatar_url"`
}

func (r TestimonialRequest) ToEntity() entities.Testimonial {
	return entities.Testimonial{
		Name:      r.Name,
		Location:  r.Location,
		Text:      r.Text,
		Rating:    r.Rating,
		AvatarURL: r.AvatarURL,
	}
}

// SiteSettingRequest upserts one key/value entry of editable site copy.
type SiteSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}
