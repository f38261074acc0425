package handlers

import (
	"MediAssist-Backend/domain"
	"MediAssist-Backend/internal/api/presenters"
	"MediAssist-Backend/pkg/prescription"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PrescriptionHandler interface {
		UploadPrescriptionImage(c *fiber.Ctx) error
		SubmitPrescriptionText(c *fiber.Ctx) error
		GetPrescriptions(c *fiber.Ctx) error
		GetPrescriptionDetails(c *fiber.Ctx) error
	}

	prescriptionHandler struct {
		prescriptionService prescription.PrescriptionService
		validator           *validator.Validate
	}
)

func NewPrescriptionHandler(prescriptionService prescription.PrescriptionService, validator *validator.Validate) PrescriptionHandler {
	return &prescriptionHandler{
		prescriptionService: prescriptionService,
		validator:           validator,
	}
}

func (h *prescriptionHandler) UploadPrescriptionImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadPrescriptionImageRequest)

	file, err := c.FormFile("prescription_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.PrescriptionImage = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPrescription, err)
	}

	res, err := h.prescriptionService.UploadPrescriptionImage(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadPrescription, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadPrescription)
}

func (h *prescriptionHandler) SubmitPrescriptionText(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SubmitPrescriptionTextRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitPrescription, err)
	}

	res, err := h.prescriptionService.SubmitPrescriptionText(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSubmitPrescription, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitPrescription)
}

func (h *prescriptionHandler) GetPrescriptions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.prescriptionService.GetPrescriptions(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPrescriptions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrescriptions)
}

func (h *prescriptionHandler) GetPrescriptionDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	prescriptionID := c.Params("id")

	res, err := h.prescriptionService.GetPrescriptionByID(c.Context(), prescriptionID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPrescriptionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPrescription, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPrescription, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrescription)
}
