package domain

var (
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"
	MessageFailedGetDashboardStats  = "failed to retrieve dashboard statistics"
)

type DashboardStatsResponse struct {
	TotalPrescriptions int64 `json:"total_prescriptions"`
	TotalMedicines     int64 `json:"total_medicines"`
	UnreadAlerts       int64 `json:"unread_alerts"`
	ExpiringSoon       int   `json:"expiring_soon"`
	LowStock           int   `json:"low_stock"`
}
