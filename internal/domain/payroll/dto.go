package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/uns-kikaku/staffing-backend-go/internal/pkg/validator"
)

// ========== SETTINGS DTOs ==========

type RateSettingsResponse struct {
	ID                    string          `json:"id,omitempty"`
	OvertimeMultiplier    decimal.Decimal `json:"overtime_multiplier"`
	NightMultiplier       decimal.Decimal `json:"night_multiplier"`
	HolidayMultiplier     decimal.Decimal `json:"holiday_multiplier"`
	SundayMultiplier      decimal.Decimal `json:"sunday_multiplier"`
	StandardHoursPerMonth decimal.Decimal `json:"standard_hours_per_month"`
}

type UpdateRateSettingsRequest struct {
	OvertimeMultiplier    *decimal.Decimal `json:"overtime_multiplier,omitempty"`
	NightMultiplier       *decimal.Decimal `json:"night_multiplier,omitempty"`
	HolidayMultiplier     *decimal.Decimal `json:"holiday_multiplier,omitempty"`
	SundayMultiplier      *decimal.Decimal `json:"sunday_multiplier,omitempty"`
	StandardHoursPerMonth *decimal.Decimal `json:"standard_hours_per_month,omitempty"`
}

func (r *UpdateRateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	check := func(field string, v *decimal.Decimal) {
		if v != nil && !v.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be positive"})
		}
	}
	check("overtime_multiplier", r.OvertimeMultiplier)
	check("night_multiplier", r.NightMultiplier)
	check("holiday_multiplier", r.HolidayMultiplier)
	check("sunday_multiplier", r.SundayMultiplier)
	check("standard_hours_per_month", r.StandardHoursPerMonth)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RUN DTOs ==========

type PayrollRunResponse struct {
	ID          string                  `json:"id"`
	PeriodYear  int                     `json:"period_year"`
	PeriodMonth int                     `json:"period_month"`
	Status      string                  `json:"status"`
	Records     []EmployeePayrollRecord `json:"records"`
}

// ========== CALCULATION DTOs ==========

type CalculateRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if err := (Period{Year: r.Year, Month: r.Month}).Validate(); err != nil {
		errs = append(errs, validator.ValidationError{Field: "period", Message: err.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkCalculateRequest struct {
	EmployeeIDs []string `json:"employee_ids,omitempty"` // empty = all active employees
	Year        int      `json:"year"`
	Month       int      `json:"month"`
}

func (r *BulkCalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := (Period{Year: r.Year, Month: r.Month}).Validate(); err != nil {
		errs = append(errs, validator.ValidationError{Field: "period", Message: err.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
