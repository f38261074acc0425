package prescription

import (
	"MediAssist-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	PrescriptionRepository interface {
		CreatePrescription(ctx context.Context, prescription *entities.Prescription) error
		GetPrescriptions(ctx context.Context, userID string, limit int) ([]*entities.Prescription, error)
		GetPrescriptionByID(ctx context.Context, id string) (*entities.Prescription, error)
		CountPrescriptions(ctx context.Context, userID string) (int64, error)
	}

	prescriptionRepository struct {
		db *gorm.DB
	}
)

func NewPrescriptionRepository(db *gorm.DB) PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) CreatePrescription(ctx context.Context, prescription *entities.Prescription) error {
	return r.db.WithContext(ctx).Create(prescription).Error
}

func (r *prescriptionRepository) GetPrescriptions(ctx context.Context, userID string, limit int) ([]*entities.Prescription, error) {
	var prescriptions []*entities.Prescription
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&prescriptions).Error; err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) GetPrescriptionByID(ctx context.Context, id string) (*entities.Prescription, error) {
	var prescription entities.Prescription
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&prescription).Error; err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) CountPrescriptions(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Prescription{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
