package handler

import (
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContentHandler serves the list/get/create/update/delete routes of one
// content collection.
type ContentHandler[E, C, U any] struct {
	uc             usecase.ContentUsecase[E, C, U]
	deletedMessage string
}

type (
	CategoryHandler    = ContentHandler[entity.Category, entity.CategoryInput, entity.CategoryPatch]
	ProductHandler     = ContentHandler[entity.Product, entity.ProductInput, entity.ProductPatch]
	HeroSlideHandler   = ContentHandler[entity.HeroSlide, entity.HeroSlideInput, entity.HeroSlidePatch]
	TestimonialHandler = ContentHandler[entity.Testimonial, entity.TestimonialInput, entity.TestimonialPatch]
	GiftBoxHandler     = ContentHandler[entity.GiftBox, entity.GiftBoxInput, entity.GiftBoxPatch]
)

func NewCategoryHandler(uc usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc, deletedMessage: "Category deleted"}
}

func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc, deletedMessage: "Product deleted"}
}

func NewHeroSlideHandler(uc usecase.HeroSlideUsecase) *HeroSlideHandler {
	return &HeroSlideHandler{uc: uc, deletedMessage: "Hero slide deleted"}
}

func NewTestimonialHandler(uc usecase.TestimonialUsecase) *TestimonialHandler {
	return &TestimonialHandler{uc: uc, deletedMessage: "Testimonial deleted"}
}

func NewGiftBoxHandler(uc usecase.GiftBoxUsecase) *GiftBoxHandler {
	return &GiftBoxHandler{uc: uc, deletedMessage: "Gift box deleted"}
}

// Register mounts the collection routes on g
func (h *ContentHandler[E, C, U]) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *ContentHandler[E, C, U]) List(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, items)
}

func (h *ContentHandler[E, C, U]) Get(c echo.Context) error {
	item, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, item)
}

func (h *ContentHandler[E, C, U]) Create(c echo.Context) error {
	input := new(C)
	if err := bindBody(c, input); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, item)
}

func (h *ContentHandler[E, C, U]) Update(c echo.Context) error {
	patch := new(U)
	if err := bindBody(c, patch); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.update(c, patch)
}

func (h *ContentHandler[E, C, U]) update(c echo.Context, patch *U) error {
	item, err := h.uc.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, item)
}

func (h *ContentHandler[E, C, U]) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Ack(c, h.deletedMessage)
}
