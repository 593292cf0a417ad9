package entity

// GiftBox is a pre-packed assortment sold at a fixed price.
type GiftBox struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

type GiftBoxInput struct {
	Name  string   `json:"name" validate:"required"`
	Image string   `json:"image" validate:"required"`
	Price *float64 `json:"price" validate:"required"`
}

type GiftBoxPatch struct {
	Name  *string  `json:"name,omitempty"`
	Image *string  `json:"image,omitempty"`
	Price *float64 `json:"price,omitempty"`
}

func NewGiftBox(id string, in *GiftBoxInput) *GiftBox {
	box := &GiftBox{
		ID:    id,
		Name:  in.Name,
		Image: in.Image,
	}
	if in.Price != nil {
		box.Price = *in.Price
	}

	return box
}
