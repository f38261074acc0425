package handlers

import (
	"MediAssist-Backend/domain"
	"MediAssist-Backend/internal/api/presenters"
	"MediAssist-Backend/pkg/medicine"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MedicineHandler interface {
		AddMedicine(c *fiber.Ctx) error
		GetMedicines(c *fiber.Ctx) error
		UpdateMedicine(c *fiber.Ctx) error
		DeleteMedicine(c *fiber.Ctx) error
	}

	medicineHandler struct {
		medicineService medicine.MedicineService
		validator       *validator.Validate
	}
)

func NewMedicineHandler(medicineService medicine.MedicineService, validator *validator.Validate) MedicineHandler {
	return &medicineHandler{
		medicineService: medicineService,
		validator:       validator,
	}
}

func (h *medicineHandler) AddMedicine(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddMedicineRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMedicine, err)
	}

	res, err := h.medicineService.AddMedicine(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMedicine, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMedicine)
}

func (h *medicineHandler) GetMedicines(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.medicineService.GetMedicines(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMedicines, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMedicines)
}

func (h *medicineHandler) UpdateMedicine(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	medicineID := c.Params("id")
	req := new(domain.UpdateMedicineRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMedicine, err)
	}

	if err := h.medicineService.UpdateMedicine(c.Context(), medicineID, *req, userID); err != nil {
		if errors.Is(err, domain.ErrMedicineNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateMedicine, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMedicine, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMedicine)
}

func (h *medicineHandler) DeleteMedicine(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	medicineID := c.Params("id")

	if err := h.medicineService.DeleteMedicine(c.Context(), medicineID, userID); err != nil {
		if errors.Is(err, domain.ErrMedicineNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteMedicine, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMedicine, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMedicine)
}
