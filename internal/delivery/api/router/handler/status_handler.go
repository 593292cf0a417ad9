package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// APIMessage is the liveness body of GET /api/
const APIMessage = "DryFruto API"

type StatusHandler struct {
	statusUC usecase.StatusUsecase
}

func NewStatusHandler(statusUC usecase.StatusUsecase) *StatusHandler {
	return &StatusHandler{statusUC: statusUC}
}

func (h *StatusHandler) Root(c echo.Context) error {
	return response.Ack(c, APIMessage)
}

// Health always answers 200; an unreachable store shows up in the body only
func (h *StatusHandler) Health(c echo.Context) error {
	return response.JSON(c, http.StatusOK, h.statusUC.Health(c.Request().Context()))
}

func (h *StatusHandler) CreateCheck(c echo.Context) error {
	input := new(entity.StatusCheckInput)
	if err := bindBody(c, input); err != nil {
		return response.HandleAppError(c, err)
	}

	check, err := h.statusUC.CreateCheck(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, check)
}

func (h *StatusHandler) ListChecks(c echo.Context) error {
	checks, err := h.statusUC.ListChecks(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, checks)
}
