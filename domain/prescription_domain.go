package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	PrescriptionTypeImage = "image"
	PrescriptionTypeText  = "text"

	PrescriptionStatusPending  = "pending"
	PrescriptionStatusVerified = "verified"
	PrescriptionStatusFlagged  = "flagged"

	ConflictSeverityLow    = "low"
	ConflictSeverityMedium = "medium"
	ConflictSeverityHigh   = "high"

	ConflictSourceLocalDB = "local_db"
	ConflictSourceFDAAPI  = "fda_api"
)

var (
	MessageSuccessUploadPrescription = "prescription image processed successfully"
	MessageSuccessSubmitPrescription = "prescription text processed successfully"
	MessageSuccessGetPrescriptions   = "prescriptions retrieved successfully"
	MessageSuccessGetPrescription    = "prescription retrieved successfully"

	MessageFailedUploadPrescription = "failed to process prescription image"
	MessageFailedSubmitPrescription = "failed to process prescription text"
	MessageFailedGetPrescriptions   = "failed to retrieve prescriptions"
	MessageFailedGetPrescription    = "failed to retrieve prescription"

	ErrPrescriptionNotFound   = errors.New("prescription not found")
	ErrGeminiProcessingFailed = errors.New("gemini processing failed")
)

type (
	MedicineMention struct {
		Name      string `json:"name"`
		Dosage    string `json:"dosage"`
		Frequency string `json:"frequency"`
	}

	ConflictRecord struct {
		Drug1       string `json:"drug1"`
		Drug2       string `json:"drug2"`
		Severity    string `json:"severity"`
		Description string `json:"description"`
		Source      string `json:"source"`
	}

	ImageExtractionResult struct {
		ExtractedText   string            `json:"extracted_text"`
		Medicines       []MedicineMention `json:"medicines"`
		LegibilityScore float64           `json:"legibility_score"`
		Warnings        []string          `json:"warnings"`
	}

	UploadPrescriptionImageRequest struct {
		PrescriptionImage *multipart.FileHeader `json:"prescription_image" form:"prescription_image" validate:"required"`
	}

	SubmitPrescriptionTextRequest struct {
		Text string `json:"text" validate:"required"`
	}

	PrescriptionResponse struct {
		ID                string            `json:"id"`
		UserID            string            `json:"user_id"`
		Type              string            `json:"type"`
		OriginalText      string            `json:"original_text,omitempty"`
		ExtractedText     string            `json:"extracted_text,omitempty"`
		ImageURL          string            `json:"image_url,omitempty"`
		Medicines         []MedicineMention `json:"medicines"`
		Conflicts         []ConflictRecord  `json:"conflicts"`
		VerificationScore float64           `json:"verification_score"`
		Status            string            `json:"status"`
		Warnings          []string          `json:"warnings,omitempty"`
		CreatedAt         time.Time         `json:"created_at"`
	}
)
