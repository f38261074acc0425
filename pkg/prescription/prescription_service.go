package prescription

import (
	"MediAssist-Backend/domain"
	"MediAssist-Backend/entities"
	"MediAssist-Backend/internal/utils/storage"
	"MediAssist-Backend/pkg/alert"
	"MediAssist-Backend/pkg/gemini"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	PrescriptionService interface {
		UploadPrescriptionImage(ctx context.Context, req domain.UploadPrescriptionImageRequest, userID string) (domain.PrescriptionResponse, error)
		SubmitPrescriptionText(ctx context.Context, req domain.SubmitPrescriptionTextRequest, userID string) (domain.PrescriptionResponse, error)
		GetPrescriptions(ctx context.Context, userID string) ([]domain.PrescriptionResponse, error)
		GetPrescriptionByID(ctx context.Context, id string, userID string) (domain.PrescriptionResponse, error)
	}

	prescriptionService struct {
		prescriptionRepository PrescriptionRepository
		conflictChecker        ConflictChecker
		geminiClient           gemini.Client
		alertService           alert.AlertService
		s3                     storage.AwsS3
	}
)

func NewPrescriptionService(
	prescriptionRepository PrescriptionRepository,
	conflictChecker ConflictChecker,
	geminiClient gemini.Client,
	alertService alert.AlertService,
	s3 storage.AwsS3,
) PrescriptionService {
	return &prescriptionService{
		prescriptionRepository: prescriptionRepository,
		conflictChecker:        conflictChecker,
		geminiClient:           geminiClient,
		alertService:           alertService,
		s3:                     s3,
	}
}

func (s *prescriptionService) UploadPrescriptionImage(ctx context.Context, req domain.UploadPrescriptionImageRequest, userID string) (domain.PrescriptionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PrescriptionResponse{}, domain.ErrParseUUID
	}

	file, err := req.PrescriptionImage.Open()
	if err != nil {
		return domain.PrescriptionResponse{}, err
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		return domain.PrescriptionResponse{}, err
	}

	prescriptionID := uuid.New()

	// The S3 copy is supplementary; a failed upload never fails the pipeline.
	var imageURL string
	fileName := fmt.Sprintf("prescription-%s", prescriptionID.String())
	if objectKey, err := s.s3.UploadFile(fileName, req.PrescriptionImage, "prescriptions", storage.AllowImage...); err != nil {
		log.Printf("prescription image upload failed: %v", err)
	} else {
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	mimeType := req.PrescriptionImage.Header.Get("Content-Type")
	ocrResult := s.geminiClient.ExtractFromImage(ctx, imageData, mimeType)

	// Second pass over the extracted text yields the structured medicine list.
	medicines := s.geminiClient.ExtractFromText(ctx, ocrResult.ExtractedText)

	medicineNames := make([]string, 0, len(medicines))
	for _, med := range medicines {
		medicineNames = append(medicineNames, med.Name)
	}

	conflicts := s.conflictChecker.CheckDrugConflicts(ctx, medicineNames)
	score := CalculateVerificationScore(medicines, conflicts, ocrResult.LegibilityScore)
	status := DeriveStatus(score, conflicts)

	prescription := &entities.Prescription{
		ID:                prescriptionID,
		UserID:            userUUID,
		Type:              domain.PrescriptionTypeImage,
		ExtractedText:     ocrResult.ExtractedText,
		ImageBase64:       base64.StdEncoding.EncodeToString(imageData),
		ImageURL:          imageURL,
		Medicines:         marshalJSON(medicines),
		Conflicts:         marshalJSON(conflicts),
		VerificationScore: score,
		Status:            status,
	}

	if err := s.prescriptionRepository.CreatePrescription(ctx, prescription); err != nil {
		return domain.PrescriptionResponse{}, err
	}

	s.emitConflictAlerts(ctx, userID, conflicts)

	return domain.PrescriptionResponse{
		ID:                prescription.ID.String(),
		UserID:            userID,
		Type:              prescription.Type,
		ExtractedText:     prescription.ExtractedText,
		ImageURL:          imageURL,
		Medicines:         medicines,
		Conflicts:         conflicts,
		VerificationScore: score,
		Status:            status,
		Warnings:          ocrResult.Warnings,
		CreatedAt:         prescription.CreatedAt,
	}, nil
}

func (s *prescriptionService) SubmitPrescriptionText(ctx context.Context, req domain.SubmitPrescriptionTextRequest, userID string) (domain.PrescriptionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PrescriptionResponse{}, domain.ErrParseUUID
	}

	medicines := s.geminiClient.ExtractFromText(ctx, req.Text)

	medicineNames := make([]string, 0, len(medicines))
	for _, med := range medicines {
		medicineNames = append(medicineNames, med.Name)
	}

	conflicts := s.conflictChecker.CheckDrugConflicts(ctx, medicineNames)

	// Submitted text needs no OCR, so legibility is perfect.
	score := CalculateVerificationScore(medicines, conflicts, 1.0)
	status := DeriveStatus(score, conflicts)

	prescription := &entities.Prescription{
		ID:                uuid.New(),
		UserID:            userUUID,
		Type:              domain.PrescriptionTypeText,
		OriginalText:      req.Text,
		ExtractedText:     req.Text,
		Medicines:         marshalJSON(medicines),
		Conflicts:         marshalJSON(conflicts),
		VerificationScore: score,
		Status:            status,
	}

	if err := s.prescriptionRepository.CreatePrescription(ctx, prescription); err != nil {
		return domain.PrescriptionResponse{}, err
	}

	s.emitConflictAlerts(ctx, userID, conflicts)

	return domain.PrescriptionResponse{
		ID:                prescription.ID.String(),
		UserID:            userID,
		Type:              prescription.Type,
		OriginalText:      prescription.OriginalText,
		ExtractedText:     prescription.ExtractedText,
		Medicines:         medicines,
		Conflicts:         conflicts,
		VerificationScore: score,
		Status:            status,
		CreatedAt:         prescription.CreatedAt,
	}, nil
}

func (s *prescriptionService) GetPrescriptions(ctx context.Context, userID string) ([]domain.PrescriptionResponse, error) {
	prescriptions, err := s.prescriptionRepository.GetPrescriptions(ctx, userID, 100)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PrescriptionResponse, 0, len(prescriptions))
	for _, p := range prescriptions {
		response = append(response, toPrescriptionResponse(p))
	}

	return response, nil
}

func (s *prescriptionService) GetPrescriptionByID(ctx context.Context, id string, userID string) (domain.PrescriptionResponse, error) {
	prescription, err := s.prescriptionRepository.GetPrescriptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PrescriptionResponse{}, domain.ErrPrescriptionNotFound
		}
		return domain.PrescriptionResponse{}, err
	}

	if prescription.UserID.String() != userID {
		return domain.PrescriptionResponse{}, domain.ErrPrescriptionNotFound
	}

	return toPrescriptionResponse(prescription), nil
}

// emitConflictAlerts writes one conflict alert per detected record. Alert
// writes are independent of the prescription insert; failures are logged and
// the already-persisted prescription stands.
func (s *prescriptionService) emitConflictAlerts(ctx context.Context, userID string, conflicts []domain.ConflictRecord) {
	for _, conflict := range conflicts {
		err := s.alertService.CreateAlert(ctx, domain.CreateAlertRequest{
			UserID:   userID,
			Type:     domain.AlertTypeConflict,
			Severity: domain.AlertSeverityHigh,
			Title:    "Drug Interaction Detected",
			Message:  conflict.Description,
		})
		if err != nil {
			log.Printf("failed to create conflict alert: %v", err)
		}
	}
}

func marshalJSON(v interface{}) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(data)
}

func toPrescriptionResponse(p *entities.Prescription) domain.PrescriptionResponse {
	var medicines []domain.MedicineMention
	if err := json.Unmarshal(p.Medicines, &medicines); err != nil || medicines == nil {
		medicines = []domain.MedicineMention{}
	}

	var conflicts []domain.ConflictRecord
	if err := json.Unmarshal(p.Conflicts, &conflicts); err != nil || conflicts == nil {
		conflicts = []domain.ConflictRecord{}
	}

	return domain.PrescriptionResponse{
		ID:                p.ID.String(),
		UserID:            p.UserID.String(),
		Type:              p.Type,
		OriginalText:      p.OriginalText,
		ExtractedText:     p.ExtractedText,
		ImageURL:          p.ImageURL,
		Medicines:         medicines,
		Conflicts:         conflicts,
		VerificationScore: p.VerificationScore,
		Status:            p.Status,
		CreatedAt:         p.CreatedAt,
	}
}
