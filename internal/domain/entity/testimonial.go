package entity

// Testimonial is a customer review shown on the homepage.
type Testimonial struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Review string `json:"review"`
	Avatar string `json:"avatar"`
}

type TestimonialInput struct {
	Name   string `json:"name" validate:"required"`
	Review string `json:"review" validate:"required"`
	Avatar string `json:"avatar" validate:"required"`
}

type TestimonialPatch struct {
	Name   *string `json:"name,omitempty"`
	Review *string `json:"review,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

func NewTestimonial(id string, in *TestimonialInput) *Testimonial {
	return &Testimonial{
		ID:     id,
		Name:   in.Name,
		Review: in.Review,
		Avatar: in.Avatar,
	}
}
