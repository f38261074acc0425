package dashboard

import (
	"MediAssist-Backend/domain"
	"MediAssist-Backend/pkg/alert"
	"MediAssist-Backend/pkg/medicine"
	"MediAssist-Backend/pkg/prescription"
	"context"
	"time"
)

type (
	DashboardService interface {
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
	}

	dashboardService struct {
		prescriptionRepository prescription.PrescriptionRepository
		medicineRepository     medicine.MedicineRepository
		alertRepository        alert.AlertRepository
	}
)

func NewDashboardService(
	prescriptionRepository prescription.PrescriptionRepository,
	medicineRepository medicine.MedicineRepository,
	alertRepository alert.AlertRepository,
) DashboardService {
	return &dashboardService{
		prescriptionRepository: prescriptionRepository,
		medicineRepository:     medicineRepository,
		alertRepository:        alertRepository,
	}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	prescriptionsCount, err := s.prescriptionRepository.CountPrescriptions(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	medicinesCount, err := s.medicineRepository.CountMedicines(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	unreadAlerts, err := s.alertRepository.CountUnread(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	medicines, err := s.medicineRepository.GetMedicines(ctx, userID, 100)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	expiringSoon := 0
	lowStock := 0
	now := time.Now()
	expiryThreshold := now.AddDate(0, 0, 30)

	for _, med := range medicines {
		if med.Quantity <= 5 {
			lowStock++
		}
		if med.ExpiryDate.Before(expiryThreshold) {
			expiringSoon++
		}
	}

	return domain.DashboardStatsResponse{
		TotalPrescriptions: prescriptionsCount,
		TotalMedicines:     medicinesCount,
		UnreadAlerts:       unreadAlerts,
		ExpiringSoon:       expiringSoon,
		LowStock:           lowStock,
	}, nil
}
