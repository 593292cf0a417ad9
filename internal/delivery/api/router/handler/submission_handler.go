package handler

import (
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SubmissionHandlerParams holds dependencies for the form submission handlers, injected by Fx.
type SubmissionHandlerParams struct {
	fx.In

	BulkOrderUC  usecase.BulkOrderUsecase
	NewsletterUC usecase.NewsletterUsecase
	ExportUC     usecase.SubmissionExportUsecase
}

// BulkOrderHandler serves the wholesale enquiry form and its admin routes
type BulkOrderHandler struct {
	*ContentHandler[entity.BulkOrder, entity.BulkOrderInput, entity.BulkOrderPatch]
	exportUC usecase.SubmissionExportUsecase
}

func NewBulkOrderHandler(params SubmissionHandlerParams) *BulkOrderHandler {
	return &BulkOrderHandler{
		ContentHandler: &ContentHandler[entity.BulkOrder, entity.BulkOrderInput, entity.BulkOrderPatch]{
			uc:             params.BulkOrderUC,
			deletedMessage: "Bulk order deleted",
		},
		exportUC: params.ExportUC,
	}
}

func (h *BulkOrderHandler) Register(g *echo.Group) {
	g.GET("/export", h.Export)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Update accepts a partial body, a ?status= query, or both. The query wins on conflict.
func (h *BulkOrderHandler) Update(c echo.Context) error {
	patch := new(entity.BulkOrderPatch)
	if err := bindBody(c, patch); err != nil {
		return response.HandleAppError(c, err)
	}
	if status := c.QueryParam("status"); status != "" {
		patch.Status = &status
	}

	return h.update(c, patch)
}

func (h *BulkOrderHandler) Export(c echo.Context) error {
	sheet, err := h.exportUC.ExportBulkOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, sheet.FileName, xlsxContentType, sheet.Data)
}

// NewsletterHandler serves newsletter sign-ups
type NewsletterHandler struct {
	newsletterUC usecase.NewsletterUsecase
	exportUC     usecase.SubmissionExportUsecase
}

func NewNewsletterHandler(params SubmissionHandlerParams) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterUC: params.NewsletterUC,
		exportUC:     params.ExportUC,
	}
}

func (h *NewsletterHandler) Register(g *echo.Group) {
	g.GET("/export", h.Export)
	g.POST("", h.Subscribe)
	g.GET("", h.List)
	g.DELETE("/:id", h.Delete)
}

// Subscribe answers 200 for both new and known addresses; the body tells them apart
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	input := new(entity.NewsletterInput)
	if err := bindBody(c, input); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.newsletterUC.Subscribe(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}

func (h *NewsletterHandler) List(c echo.Context) error {
	subscriptions, err := h.newsletterUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, subscriptions)
}

func (h *NewsletterHandler) Delete(c echo.Context) error {
	if err := h.newsletterUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Ack(c, "Subscription deleted")
}

func (h *NewsletterHandler) Export(c echo.Context) error {
	sheet, err := h.exportUC.ExportNewsletter(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, sheet.FileName, xlsxContentType, sheet.Data)
}
