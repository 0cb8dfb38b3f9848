package http

import (
	"net/http"
	"strconv"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/leave"
	"github.com/uns-kikaku/staffing-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetYukyuCompliance returns the per-employee leave compliance board
	GetYukyuCompliance(w http.ResponseWriter, r *http.Request)
	// GetYukyuTrendsMonthly returns monthly yukyu usage aggregates
	GetYukyuTrendsMonthly(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	complianceService leave.ComplianceService
}

func NewDashboardHandler(complianceService leave.ComplianceService) DashboardHandler {
	return &dashboardHandlerImpl{complianceService: complianceService}
}

// GetYukyuCompliance handles GET /dashboard/yukyu-compliance
func (h *dashboardHandlerImpl) GetYukyuCompliance(w http.ResponseWriter, r *http.Request) {
	var fiscalYear *int
	if raw := r.URL.Query().Get("fiscal_year"); raw != "" {
		fy, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid fiscal_year", nil)
			return
		}
		fiscalYear = &fy
	}

	result, err := h.complianceService.GetComplianceStatus(r.Context(), fiscalYear)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetYukyuTrendsMonthly handles GET /dashboard/yukyu-trends-monthly
func (h *dashboardHandlerImpl) GetYukyuTrendsMonthly(w http.ResponseWriter, r *http.Request) {
	months := 6
	if raw := r.URL.Query().Get("months"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid months", nil)
			return
		}
		months = m
	}

	result, err := h.complianceService.GetLeaveTrends(r.Context(), months)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
