package domain

import (
	"errors"
	"time"
)

const (
	AlertTypeExpiry   = "expiry"
	AlertTypeStock    = "stock"
	AlertTypeConflict = "conflict"
	AlertTypeReminder = "reminder"

	AlertSeverityLow    = "low"
	AlertSeverityMedium = "medium"
	AlertSeverityHigh   = "high"
)

var (
	MessageSuccessGetAlerts     = "alerts retrieved successfully"
	MessageSuccessMarkAlertRead = "alert marked as read"

	MessageFailedGetAlerts     = "failed to retrieve alerts"
	MessageFailedMarkAlertRead = "failed to mark alert as read"

	ErrAlertNotFound = errors.New("alert not found")
)

type (
	CreateAlertRequest struct {
		UserID   string
		Type     string
		Severity string
		Title    string
		Message  string
	}

	AlertResponse struct {
		ID        string    `json:"id"`
		Type      string    `json:"type"`
		Severity  string    `json:"severity"`
		Title     string    `json:"title"`
		Message   string    `json:"message"`
		IsRead    bool      `json:"is_read"`
		CreatedAt time.Time `json:"created_at"`
	}
)
