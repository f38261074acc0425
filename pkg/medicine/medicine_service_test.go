package medicine

import (
	"MediAssist-Backend/domain"
	"MediAssist-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubMedicineRepository struct {
	medicine *entities.Medicine
	updated  *entities.Medicine
}

func (s *stubMedicineRepository) AddMedicine(_ context.Context, _ *entities.Medicine) error {
	return nil
}

func (s *stubMedicineRepository) GetMedicineByID(_ context.Context, _ string) (*entities.Medicine, error) {
	return s.medicine, nil
}

func (s *stubMedicineRepository) GetMedicines(_ context.Context, _ string, _ int) ([]*entities.Medicine, error) {
	return nil, nil
}

func (s *stubMedicineRepository) UpdateMedicine(_ context.Context, medicine *entities.Medicine) error {
	s.updated = medicine
	return nil
}

func (s *stubMedicineRepository) DeleteMedicine(_ context.Context, _ string) error {
	return nil
}

func (s *stubMedicineRepository) CountMedicines(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func TestDaysUntilExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, DaysUntilExpiry(now.AddDate(0, 0, 30), now))
	assert.Equal(t, 0, DaysUntilExpiry(now, now))
	assert.Equal(t, -5, DaysUntilExpiry(now.AddDate(0, 0, -5), now))
}

func TestExpiryAlertSeverity(t *testing.T) {
	assert.Equal(t, domain.AlertSeverityMedium, ExpiryAlertSeverity(30))
	assert.Equal(t, domain.AlertSeverityMedium, ExpiryAlertSeverity(1))
	assert.Equal(t, domain.AlertSeverityLow, ExpiryAlertSeverity(31))
}

func TestUpdateMedicine_ZeroQuantityApplied(t *testing.T) {
	userID := uuid.New()
	repo := &stubMedicineRepository{medicine: &entities.Medicine{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     "Aspirin",
		Quantity: 10,
	}}
	service := NewMedicineService(repo, nil)

	quantity := 0
	err := service.UpdateMedicine(context.Background(), repo.medicine.ID.String(),
		domain.UpdateMedicineRequest{Quantity: &quantity}, userID.String())

	assert.NoError(t, err)
	assert.Equal(t, 0, repo.updated.Quantity)
	assert.Equal(t, "Aspirin", repo.updated.Name)
}

func TestUpdateMedicine_OmittedFieldsUntouched(t *testing.T) {
	userID := uuid.New()
	expiry := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubMedicineRepository{medicine: &entities.Medicine{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       "Aspirin",
		Dosage:     "100mg",
		Quantity:   10,
		DailyUsage: 2,
		ExpiryDate: expiry,
	}}
	service := NewMedicineService(repo, nil)

	name := "Ibuprofen"
	err := service.UpdateMedicine(context.Background(), repo.medicine.ID.String(),
		domain.UpdateMedicineRequest{Name: &name}, userID.String())

	assert.NoError(t, err)
	assert.Equal(t, "Ibuprofen", repo.updated.Name)
	assert.Equal(t, "100mg", repo.updated.Dosage)
	assert.Equal(t, 10, repo.updated.Quantity)
	assert.Equal(t, 2, repo.updated.DailyUsage)
	assert.Equal(t, expiry, repo.updated.ExpiryDate)
}

func TestUpdateMedicine_RejectsNegativeQuantity(t *testing.T) {
	userID := uuid.New()
	repo := &stubMedicineRepository{medicine: &entities.Medicine{
		ID:     uuid.New(),
		UserID: userID,
	}}
	service := NewMedicineService(repo, nil)

	quantity := -1
	err := service.UpdateMedicine(context.Background(), repo.medicine.ID.String(),
		domain.UpdateMedicineRequest{Quantity: &quantity}, userID.String())

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Nil(t, repo.updated)
}

func TestStockAlertSeverity(t *testing.T) {
	assert.Equal(t, domain.AlertSeverityHigh, StockAlertSeverity(2))
	assert.Equal(t, domain.AlertSeverityHigh, StockAlertSeverity(0))
	assert.Equal(t, domain.AlertSeverityMedium, StockAlertSeverity(3))
	assert.Equal(t, domain.AlertSeverityMedium, StockAlertSeverity(5))
}
