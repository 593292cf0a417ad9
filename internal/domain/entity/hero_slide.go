package entity

// HeroSlide is a homepage carousel slide. Slides are shown in insertion order.
type HeroSlide struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CTA         string `json:"cta"`
}

type HeroSlideInput struct {
	Title       string `json:"title" validate:"required"`
	Subtitle    string `json:"subtitle" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"required"`
	CTA         string `json:"cta" validate:"required"`
}

type HeroSlidePatch struct {
	Title       *string `json:"title,omitempty"`
	Subtitle    *string `json:"subtitle,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	CTA         *string `json:"cta,omitempty"`
}

func NewHeroSlide(id string, in *HeroSlideInput) *HeroSlide {
	return &HeroSlide{
		ID:          id,
		Title:       in.Title,
		Subtitle:    in.Subtitle,
		Description: in.Description,
		Image:       in.Image,
		CTA:         in.CTA,
	}
}
