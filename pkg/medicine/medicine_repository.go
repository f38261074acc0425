package medicine

import (
	"MediAssist-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MedicineRepository interface {
		AddMedicine(ctx context.Context, medicine *entities.Medicine) error
		GetMedicineByID(ctx context.Context, id string) (*entities.Medicine, error)
		GetMedicines(ctx context.Context, userID string, limit int) ([]*entities.Medicine, error)
		UpdateMedicine(ctx context.Context, medicine *entities.Medicine) error
		DeleteMedicine(ctx context.Context, id string) error
		CountMedicines(ctx context.Context, userID string) (int64, error)
	}

	medicineRepository struct {
		db *gorm.DB
	}
)

func NewMedicineRepository(db *gorm.DB) MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) AddMedicine(ctx context.Context, medicine *entities.Medicine) error {
	return r.db.WithContext(ctx).Create(medicine).Error
}

func (r *medicineRepository) GetMedicineByID(ctx context.Context, id string) (*entities.Medicine, error) {
	var medicine entities.Medicine
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&medicine).Error; err != nil {
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) GetMedicines(ctx context.Context, userID string, limit int) ([]*entities.Medicine, error) {
	var medicines []*entities.Medicine
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiry_date asc").
		Limit(limit).
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) UpdateMedicine(ctx context.Context, medicine *entities.Medicine) error {
	return r.db.WithContext(ctx).Save(medicine).Error
}

func (r *medicineRepository) DeleteMedicine(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Medicine{}).Error
}

func (r *medicineRepository) CountMedicines(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Medicine{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
