package handlers

import (
	"MediAssist-Backend/domain"
	"MediAssist-Backend/internal/api/presenters"
	"MediAssist-Backend/pkg/alert"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	AlertHandler interface {
		GetAlerts(c *fiber.Ctx) error
		MarkAlertRead(c *fiber.Ctx) error
	}

	alertHandler struct {
		alertService alert.AlertService
	}
)

func NewAlertHandler(alertService alert.AlertService) AlertHandler {
	return &alertHandler{alertService: alertService}
}

func (h *alertHandler) GetAlerts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.alertService.GetAlerts(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAlerts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAlerts)
}

func (h *alertHandler) MarkAlertRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	alertID := c.Params("id")

	if err := h.alertService.MarkAlertRead(c.Context(), alertID, userID); err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedMarkAlertRead, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedMarkAlertRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkAlertRead)
}
