package entity

// DefaultProductFeatures are the badges shown when a product does not list its own.
func DefaultProductFeatures() []string {
	return []string{"Healthy Heart", "High Nutrition", "Gluten Free", "Cholesterol Free"}
}

// Product is a sellable item. Category is a soft reference to a Category name or slug.
type Product struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Slug             string             `json:"slug"`
	Category         string             `json:"category"`
	Type             string             `json:"type"`
	BasePrice        float64            `json:"basePrice"`
	Image            string             `json:"image"`
	Images           []string           `json:"images"`
	SKU              string             `json:"sku"`
	ShortDescription string             `json:"shortDescription"`
	Description      string             `json:"description"`
	Benefits         []string           `json:"benefits"`
	Features         []string           `json:"features"`
	PriceVariants    map[string]float64 `json:"priceVariants"` // variant label -> price, e.g. "250g" -> 350
}

// BlankProduct returns a product holding only default values.
func BlankProduct() *Product {
	return &Product{
		Images:        []string{},
		Benefits:      []string{},
		Features:      DefaultProductFeatures(),
		PriceVariants: map[string]float64{},
	}
}

// ProductInput is the payload for creating a product.
type ProductInput struct {
	Name             string             `json:"name" validate:"required"`
	Slug             string             `json:"slug" validate:"required"`
	Category         string             `json:"category" validate:"required"`
	Type             string             `json:"type" validate:"required"`
	BasePrice        *float64           `json:"basePrice" validate:"required"`
	Image            string             `json:"image" validate:"required"`
	Images           []string           `json:"images"`
	SKU              string             `json:"sku" validate:"required"`
	ShortDescription string             `json:"shortDescription" validate:"required"`
	Description      string             `json:"description" validate:"required"`
	Benefits         []string           `json:"benefits"`
	Features         []string           `json:"features"`
	PriceVariants    map[string]float64 `json:"priceVariants"`
}

// ProductPatch is a partial product update; nil fields are left untouched.
type ProductPatch struct {
	Name             *string             `json:"name,omitempty"`
	Slug             *string             `json:"slug,omitempty"`
	Category         *string             `json:"category,omitempty"`
	Type             *string             `json:"type,omitempty"`
	BasePrice        *float64            `json:"basePrice,omitempty"`
	Image            *string             `json:"image,omitempty"`
	Images           *[]string           `json:"images,omitempty"`
	SKU              *string             `json:"sku,omitempty"`
	ShortDescription *string             `json:"shortDescription,omitempty"`
	Description      *string             `json:"description,omitempty"`
	Benefits         *[]string           `json:"benefits,omitempty"`
	Features         *[]string           `json:"features,omitempty"`
	PriceVariants    *map[string]float64 `json:"priceVariants,omitempty"`
}

// NewProduct builds a product from a creation payload, filling list and map defaults.
func NewProduct(id string, in *ProductInput) *Product {
	p := BlankProduct()
	p.ID = id
	p.Name = in.Name
	p.Slug = in.Slug
	p.Category = in.Category
	p.Type = in.Type
	if in.BasePrice != nil {
		p.BasePrice = *in.BasePrice
	}
	p.Image = in.Image
	p.SKU = in.SKU
	p.ShortDescription = in.ShortDescription
	p.Description = in.Description
	if in.Images != nil {
		p.Images = in.Images
	}
	if in.Benefits != nil {
		p.Benefits = in.Benefits
	}
	if in.Features != nil {
		p.Features = in.Features
	}
	if in.PriceVariants != nil {
		p.PriceVariants = in.PriceVariants
	}

	return p
}
