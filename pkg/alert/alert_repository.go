package alert

import (
	"MediAssist-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AlertRepository interface {
		CreateAlert(ctx context.Context, alert *entities.Alert) error
		GetAlerts(ctx context.Context, userID string, limit int) ([]*entities.Alert, error)
		GetAlertByID(ctx context.Context, id string) (*entities.Alert, error)
		MarkAlertRead(ctx context.Context, id string) error
		CountUnread(ctx context.Context, userID string) (int64, error)
	}

	alertRepository struct {
		db *gorm.DB
	}
)

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) CreateAlert(ctx context.Context, alert *entities.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) GetAlerts(ctx context.Context, userID string, limit int) ([]*entities.Alert, error) {
	var alerts []*entities.Alert
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepository) GetAlertByID(ctx context.Context, id string) (*entities.Alert, error) {
	var alert entities.Alert
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&alert).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *alertRepository) MarkAlertRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Alert{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true}).Error
}

func (r *alertRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Alert{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
