package alert

import (
	"MediAssist-Backend/domain"
	"MediAssist-Backend/entities"
	"MediAssist-Backend/internal/utils/mailing"
	"MediAssist-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AlertService interface {
		CreateAlert(ctx context.Context, req domain.CreateAlertRequest) error
		GetAlerts(ctx context.Context, userID string) ([]domain.AlertResponse, error)
		MarkAlertRead(ctx context.Context, alertID string, userID string) error
	}

	alertService struct {
		alertRepository AlertRepository
		userRepository  user.UserRepository
	}
)

func NewAlertService(alertRepository AlertRepository, userRepository user.UserRepository) AlertService {
	return &alertService{
		alertRepository: alertRepository,
		userRepository:  userRepository,
	}
}

func (s *alertService) CreateAlert(ctx context.Context, req domain.CreateAlertRequest) error {
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.ErrParseUUID
	}

	alert := &entities.Alert{
		ID:       uuid.New(),
		UserID:   userUUID,
		Type:     req.Type,
		Severity: req.Severity,
		Title:    req.Title,
		Message:  req.Message,
		IsRead:   false,
	}

	if err := s.alertRepository.CreateAlert(ctx, alert); err != nil {
		return err
	}

	// High-severity alerts additionally notify the user by email. The email is
	// best-effort and never fails the alert.
	if req.Severity == domain.AlertSeverityHigh {
		if u, err := s.userRepository.GetUserByID(ctx, req.UserID); err == nil {
			body := fmt.Sprintf("<h3>%s</h3><p>%s</p>", req.Title, req.Message)
			if err := mailing.SendMail(u.Email, "MediAssist Alert: "+req.Title, body); err != nil {
				log.Printf("alert notification email failed: %v", err)
			}
		}
	}

	return nil
}

func (s *alertService) GetAlerts(ctx context.Context, userID string) ([]domain.AlertResponse, error) {
	alerts, err := s.alertRepository.GetAlerts(ctx, userID, 100)
	if err != nil {
		return nil, err
	}

	response := make([]domain.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		response = append(response, domain.AlertResponse{
			ID:        a.ID.String(),
			Type:      a.Type,
			Severity:  a.Severity,
			Title:     a.Title,
			Message:   a.Message,
			IsRead:    a.IsRead,
			CreatedAt: a.CreatedAt,
		})
	}

	return response, nil
}

func (s *alertService) MarkAlertRead(ctx context.Context, alertID string, userID string) error {
	alert, err := s.alertRepository.GetAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAlertNotFound
		}
		return err
	}

	if alert.UserID.String() != userID {
		return domain.ErrAlertNotFound
	}

	return s.alertRepository.MarkAlertRead(ctx, alertID)
}
