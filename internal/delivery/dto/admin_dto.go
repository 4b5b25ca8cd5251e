package dto

// DashboardResponse holds the aggregate counters shown on the admin dashboard
type DashboardResponse struct {
	TotalDoctors       int64 `json:"total_doctors"`
	TotalPatients      int64 `json:"total_patients"`
	TotalAppointments  int64 `json:"total_appointments"`
	TodaysAppointments int64 `json:"todays_appointments"`
}
