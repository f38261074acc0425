package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddMedicine    = "medicine added successfully"
	MessageSuccessGetMedicines   = "medicines retrieved successfully"
	MessageSuccessUpdateMedicine = "medicine updated successfully"
	MessageSuccessDeleteMedicine = "medicine deleted successfully"

	MessageFailedAddMedicine    = "failed to add medicine"
	MessageFailedGetMedicines   = "failed to retrieve medicines"
	MessageFailedUpdateMedicine = "failed to update medicine"
	MessageFailedDeleteMedicine = "failed to delete medicine"

	ErrMedicineNotFound   = errors.New("medicine not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrUnauthorizedAccess = errors.New("unauthorized access to resource")
)

type (
	AddMedicineRequest struct {
		Name           string `json:"name" validate:"required"`
		Dosage         string `json:"dosage" validate:"required"`
		Quantity       int    `json:"quantity" validate:"required,min=1"`
		DailyUsage     int    `json:"daily_usage" validate:"omitempty,min=1"`
		ExpiryDate     string `json:"expiry_date" validate:"required"`
		PrescriptionID string `json:"prescription_id" validate:"omitempty,uuid"`
	}

	// Pointer fields distinguish an omitted field from an explicit zero, so a
	// quantity of 0 is a valid update.
	UpdateMedicineRequest struct {
		Name       *string `json:"name" validate:"omitempty"`
		Dosage     *string `json:"dosage" validate:"omitempty"`
		Quantity   *int    `json:"quantity" validate:"omitempty,min=0"`
		DailyUsage *int    `json:"daily_usage" validate:"omitempty,min=1"`
		ExpiryDate *string `json:"expiry_date" validate:"omitempty"`
	}

	MedicineResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Dosage         string    `json:"dosage"`
		Quantity       int       `json:"quantity"`
		DailyUsage     int       `json:"daily_usage"`
		ExpiryDate     time.Time `json:"expiry_date"`
		PrescriptionID string    `json:"prescription_id,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
