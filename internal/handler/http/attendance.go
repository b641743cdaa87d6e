package http

import (
	"net/http"

	"github.com/seclens/insight-backend-go/internal/domain/attendance"
	"github.com/seclens/insight-backend-go/internal/domain/profile"
	"github.com/seclens/insight-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	// GetAnomalies returns per-department anomaly ratios and top offenders
	GetAnomalies(w http.ResponseWriter, r *http.Request)
	// GetDistribution returns check-in/check-out time-of-day distributions
	GetDistribution(w http.ResponseWriter, r *http.Request)
	// GetHeatmap returns the employee/day worked-hours heatmap
	GetHeatmap(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// GetAnomalies handles GET /attendance/anomalies
func (h *attendanceHandlerImpl) GetAnomalies(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetAnomalySummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDistribution handles GET /attendance/distribution
func (h *attendanceHandlerImpl) GetDistribution(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	if department == "" {
		response.BadRequest(w, "department query parameter is required", nil)
		return
	}

	result, err := h.attendanceService.GetTimeDistribution(r.Context(), profile.Department(department))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetHeatmap handles GET /attendance/heatmap
func (h *attendanceHandlerImpl) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetHeatmap(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
