// Package router maps the storefront HTTP surface onto its handlers.
package router

import (
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix is the path every storefront route lives under
const APIPrefix = "/api"

// Routes whose request bodies are not bound by the body size limit
const (
	UploadPath      = APIPrefix + "/upload"
	ImportThemePath = APIPrefix + "/import-theme"
)

type RouterParams struct {
	fx.In

	StatusHandler      *handler.StatusHandler
	CategoryHandler    *handler.CategoryHandler
	ProductHandler     *handler.ProductHandler
	HeroSlideHandler   *handler.HeroSlideHandler
	TestimonialHandler *handler.TestimonialHandler
	GiftBoxHandler     *handler.GiftBoxHandler
	SiteHandler        *handler.SiteHandler
	UploadHandler      *handler.UploadHandler
	BulkOrderHandler   *handler.BulkOrderHandler
	NewsletterHandler  *handler.NewsletterHandler
}

type router struct {
	params RouterParams
}

func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes mounts every route under /api
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	api := e.Group(APIPrefix)

	api.GET("", p.StatusHandler.Root)
	api.GET("/", p.StatusHandler.Root)
	api.GET("/health", p.StatusHandler.Health)
	api.POST("/status", p.StatusHandler.CreateCheck)
	api.GET("/status", p.StatusHandler.ListChecks)

	p.CategoryHandler.Register(api.Group("/categories"))
	p.ProductHandler.Register(api.Group("/products"))
	p.HeroSlideHandler.Register(api.Group("/hero-slides"))
	p.TestimonialHandler.Register(api.Group("/testimonials"))
	p.GiftBoxHandler.Register(api.Group("/gift-boxes"))

	api.GET("/site-settings", p.SiteHandler.GetSettings)
	api.PUT("/site-settings", p.SiteHandler.UpdateSettings)
	api.POST("/seed-data", p.SiteHandler.Seed)
	api.GET("/export-theme", p.SiteHandler.ExportTheme)
	e.POST(ImportThemePath, p.SiteHandler.ImportTheme)

	e.POST(UploadPath, p.UploadHandler.Upload)
	api.GET("/uploads/:filename", p.UploadHandler.Serve)

	p.BulkOrderHandler.Register(api.Group("/bulk-orders"))
	p.NewsletterHandler.Register(api.Group("/newsletter"))
}
