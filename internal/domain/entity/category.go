package entity

// Category groups products on the storefront. Slug is a display and routing key.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
	Icon  string `json:"icon"`
}

// CategoryInput is the payload for creating a category.
type CategoryInput struct {
	Name  string `json:"name" validate:"required"`
	Slug  string `json:"slug" validate:"required"`
	Image string `json:"image" validate:"required"`
	Icon  string `json:"icon" validate:"required"`
}

// CategoryPatch is a partial category update; nil fields are left untouched.
type CategoryPatch struct {
	Name  *string `json:"name,omitempty"`
	Slug  *string `json:"slug,omitempty"`
	Image *string `json:"image,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}

// NewCategory builds a category from a creation payload.
func NewCategory(id string, in *CategoryInput) *Category {
	return &Category{
		ID:    id,
		Name:  in.Name,
		Slug:  in.Slug,
		Image: in.Image,
		Icon:  in.Icon,
	}
}
