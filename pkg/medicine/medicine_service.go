package medicine

import (
	"MediAssist-Backend/domain"
	"MediAssist-Backend/entities"
	"MediAssist-Backend/pkg/alert"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	expiryAlertDays    = 30
	lowStockThreshold  = 5
	criticalStockLevel = 2
)

type (
	MedicineService interface {
		AddMedicine(ctx context.Context, req domain.AddMedicineRequest, userID string) (domain.MedicineResponse, error)
		GetMedicines(ctx context.Context, userID string) ([]domain.MedicineResponse, error)
		UpdateMedicine(ctx context.Context, id string, req domain.UpdateMedicineRequest, userID string) error
		DeleteMedicine(ctx context.Context, id string, userID string) error
	}

	medicineService struct {
		medicineRepository MedicineRepository
		alertService       alert.AlertService
	}
)

func NewMedicineService(medicineRepository MedicineRepository, alertService alert.AlertService) MedicineService {
	return &medicineService{
		medicineRepository: medicineRepository,
		alertService:       alertService,
	}
}

func (s *medicineService) AddMedicine(ctx context.Context, req domain.AddMedicineRequest, userID string) (domain.MedicineResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.MedicineResponse{}, domain.ErrInvalidExpiryDate
	}

	if req.Quantity <= 0 {
		return domain.MedicineResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MedicineResponse{}, domain.ErrParseUUID
	}

	dailyUsage := req.DailyUsage
	if dailyUsage == 0 {
		dailyUsage = 1
	}

	medicine := &entities.Medicine{
		ID:         uuid.New(),
		UserID:     userUUID,
		Name:       req.Name,
		Dosage:     req.Dosage,
		Quantity:   req.Quantity,
		DailyUsage: dailyUsage,
		ExpiryDate: expiryDate,
	}
	if req.PrescriptionID != "" {
		medicine.PrescriptionID = &req.PrescriptionID
	}

	if err := s.medicineRepository.AddMedicine(ctx, medicine); err != nil {
		return domain.MedicineResponse{}, err
	}

	s.emitStockAlerts(ctx, userID, medicine)

	return toMedicineResponse(medicine), nil
}

func (s *medicineService) GetMedicines(ctx context.Context, userID string) ([]domain.MedicineResponse, error) {
	medicines, err := s.medicineRepository.GetMedicines(ctx, userID, 100)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MedicineResponse, 0, len(medicines))
	for _, m := range medicines {
		response = append(response, toMedicineResponse(m))
	}

	return response, nil
}

func (s *medicineService) UpdateMedicine(ctx context.Context, id string, req domain.UpdateMedicineRequest, userID string) error {
	medicine, err := s.medicineRepository.GetMedicineByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMedicineNotFound
		}
		return err
	}

	if medicine.UserID.String() != userID {
		return domain.ErrMedicineNotFound
	}

	if req.Name != nil {
		medicine.Name = *req.Name
	}

	if req.Dosage != nil {
		medicine.Dosage = *req.Dosage
	}

	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.ErrInvalidQuantity
		}
		medicine.Quantity = *req.Quantity
	}

	if req.DailyUsage != nil && *req.DailyUsage > 0 {
		medicine.DailyUsage = *req.DailyUsage
	}

	if req.ExpiryDate != nil {
		expiryDate, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		medicine.ExpiryDate = expiryDate
	}

	return s.medicineRepository.UpdateMedicine(ctx, medicine)
}

func (s *medicineService) DeleteMedicine(ctx context.Context, id string, userID string) error {
	medicine, err := s.medicineRepository.GetMedicineByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMedicineNotFound
		}
		return err
	}

	if medicine.UserID.String() != userID {
		return domain.ErrMedicineNotFound
	}

	return s.medicineRepository.DeleteMedicine(ctx, id)
}

// emitStockAlerts raises expiry and stock alerts for a freshly added medicine.
// Alert failures never fail the add.
func (s *medicineService) emitStockAlerts(ctx context.Context, userID string, medicine *entities.Medicine) {
	daysUntilExpiry := DaysUntilExpiry(medicine.ExpiryDate, time.Now())
	if daysUntilExpiry <= expiryAlertDays {
		err := s.alertService.CreateAlert(ctx, domain.CreateAlertRequest{
			UserID:   userID,
			Type:     domain.AlertTypeExpiry,
			Severity: ExpiryAlertSeverity(daysUntilExpiry),
			Title:    "Medicine Expiring Soon",
			Message:  fmt.Sprintf("%s expires in %d days", medicine.Name, daysUntilExpiry),
		})
		if err != nil {
			log.Printf("failed to create expiry alert: %v", err)
		}
	}

	if medicine.Quantity <= lowStockThreshold {
		err := s.alertService.CreateAlert(ctx, domain.CreateAlertRequest{
			UserID:   userID,
			Type:     domain.AlertTypeStock,
			Severity: StockAlertSeverity(medicine.Quantity),
			Title:    "Low Stock Alert",
			Message:  fmt.Sprintf("Only %d units of %s remaining", medicine.Quantity, medicine.Name),
		})
		if err != nil {
			log.Printf("failed to create stock alert: %v", err)
		}
	}
}

// DaysUntilExpiry counts whole days between now and the expiry date, negative
// when already expired.
func DaysUntilExpiry(expiryDate, now time.Time) int {
	return int(expiryDate.Sub(now).Hours() / 24)
}

func ExpiryAlertSeverity(daysUntilExpiry int) string {
	if daysUntilExpiry <= expiryAlertDays {
		return domain.AlertSeverityMedium
	}
	return domain.AlertSeverityLow
}

func StockAlertSeverity(quantity int) string {
	if quantity <= criticalStockLevel {
		return domain.AlertSeverityHigh
	}
	return domain.AlertSeverityMedium
}

func toMedicineResponse(m *entities.Medicine) domain.MedicineResponse {
	response := domain.MedicineResponse{
		ID:         m.ID.String(),
		Name:       m.Name,
		Dosage:     m.Dosage,
		Quantity:   m.Quantity,
		DailyUsage: m.DailyUsage,
		ExpiryDate: m.ExpiryDate,
		CreatedAt:  m.CreatedAt,
	}
	if m.PrescriptionID != nil {
		response.PrescriptionID = *m.PrescriptionID
	}
	return response
}
