package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RateSettings - process-wide wage multipliers. A change applies to
// calculations dispatched after the update, never retroactively; bulk runs
// snapshot the settings once at dispatch time.
type RateSettings struct {
	ID                    string
	OvertimeMultiplier    decimal.Decimal
	NightMultiplier       decimal.Decimal
	HolidayMultiplier     decimal.Decimal
	SundayMultiplier      decimal.Decimal
	StandardHoursPerMonth decimal.Decimal
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// DefaultRateSettings returns the statutory baseline used when no override
// row exists yet.
func DefaultRateSettings() RateSettings {
	return RateSettings{
		OvertimeMultiplier:    decimal.NewFromFloat(1.25),
		NightMultiplier:       decimal.NewFromFloat(1.25),
		HolidayMultiplier:     decimal.NewFromFloat(1.35),
		SundayMultiplier:      decimal.NewFromFloat(1.35),
		StandardHoursPerMonth: decimal.NewFromInt(160),
	}
}

// Validate rejects settings that would corrupt an entire batch. Multipliers
// below 1.0 are legal-minimum violations and multipliers must be positive.
func (s RateSettings) Validate() error {
	for _, m := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"overtime_multiplier", s.OvertimeMultiplier},
		{"night_multiplier", s.NightMultiplier},
		{"holiday_multiplier", s.HolidayMultiplier},
		{"sunday_multiplier", s.SundayMultiplier},
		{"standard_hours_per_month", s.StandardHoursPerMonth},
	} {
		if !m.value.IsPositive() {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidSettings, m.name)
		}
	}
	return nil
}

// StatutoryRates - configuration for the statutory deduction formulas.
// These stand in for the official withholding tables, which are injected
// configuration rather than code.
type StatutoryRates struct {
	IncomeTaxRate           decimal.Decimal
	DependentAllowance      decimal.Decimal // yen subtracted from taxable gross per dependent per month
	ResidentTaxRate         decimal.Decimal
	HealthInsuranceRate     decimal.Decimal
	PensionRate             decimal.Decimal
	EmploymentInsuranceRate decimal.Decimal
}

func DefaultStatutoryRates() StatutoryRates {
	return StatutoryRates{
		IncomeTaxRate:           decimal.NewFromFloat(0.0510),
		DependentAllowance:      decimal.NewFromInt(31667),
		ResidentTaxRate:         decimal.NewFromFloat(0.06),
		HealthInsuranceRate:     decimal.NewFromFloat(0.0495),
		PensionRate:             decimal.NewFromFloat(0.0915),
		EmploymentInsuranceRate: decimal.NewFromFloat(0.006),
	}
}

// Period - one calendar payroll month.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidPeriod)
	}
	if p.Year < 2020 {
		return fmt.Errorf("%w: year must be 2020 or later", ErrInvalidPeriod)
	}
	return nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// HoursBreakdown - categorized hours for one employee-month. Night hours are
// additive: they overlap hours already counted as regular, overtime or
// holiday, so the category sum excluding night must match TotalHours.
type HoursBreakdown struct {
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	NightHours    decimal.Decimal `json:"night_hours"`
	HolidayHours  decimal.Decimal `json:"holiday_hours"`
	SundayHours   decimal.Decimal `json:"sunday_hours"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	WorkDays      int             `json:"work_days"`
}

// Rates - resolved per-category hourly rates.
type Rates struct {
	BaseRate     decimal.Decimal `json:"base_rate"`
	OvertimeRate decimal.Decimal `json:"overtime_rate"`
	NightRate    decimal.Decimal `json:"night_rate"`
	HolidayRate  decimal.Decimal `json:"holiday_rate"`
	SundayRate   decimal.Decimal `json:"sunday_rate"`
}

// Amounts - per-category pay, each rounded to whole yen at the category
// level; GrossAmount is the plain sum and is never re-rounded.
type Amounts struct {
	BaseAmount     decimal.Decimal `json:"base_amount"`
	OvertimeAmount decimal.Decimal `json:"overtime_amount"`
	NightAmount    decimal.Decimal `json:"night_amount"`
	HolidayAmount  decimal.Decimal `json:"holiday_amount"`
	SundayAmount   decimal.Decimal `json:"sunday_amount"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
}

// Deductions - statutory withholdings plus the apartment-rent ledger total.
type Deductions struct {
	IncomeTax           decimal.Decimal `json:"income_tax"`
	ResidentTax         decimal.Decimal `json:"resident_tax"`
	HealthInsurance     decimal.Decimal `json:"health_insurance"`
	Pension             decimal.Decimal `json:"pension"`
	EmploymentInsurance decimal.Decimal `json:"employment_insurance"`
	Apartment           decimal.Decimal `json:"apartment"`
	Total               decimal.Decimal `json:"total"`
}

// ValidationResult - outcome of the compliance battery. Failures never block
// persistence; payroll stays a draft until a human approves it.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// CalculationResult - the full output for one employee-month. Immutable once
// returned.
type CalculationResult struct {
	EmployeeID   string           `json:"employee_id"`
	Period       Period           `json:"period"`
	Hours        HoursBreakdown   `json:"hours_breakdown"`
	Rates        Rates            `json:"rates"`
	Amounts      Amounts          `json:"amounts"`
	Deductions   Deductions       `json:"deductions"`
	NetAmount    decimal.Decimal  `json:"net_amount"`
	Validation   ValidationResult `json:"validation"`
	CalculatedAt time.Time        `json:"calculated_at"`
}

// BatchError - one failed employee inside a bulk run.
type BatchError struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

// BatchResult - outcome of a bulk run. One employee's failure never aborts
// the batch; committed employees stay committed.
type BatchResult struct {
	RunID        string              `json:"run_id,omitempty"`
	Total        int                 `json:"total"`
	Successful   int                 `json:"successful"`
	Failed       int                 `json:"failed"`
	Results      []CalculationResult `json:"results"`
	Errors       []BatchError        `json:"errors"`
	CalculatedAt time.Time           `json:"calculated_at"`
}

// RunStatus enum
type RunStatus string

const (
	RunStatusDraft    RunStatus = "draft"
	RunStatusApproved RunStatus = "approved"
)

// PayrollRun - one bulk execution over a pay period.
type PayrollRun struct {
	ID          string
	PeriodYear  int
	PeriodMonth int
	Status      RunStatus
	CreatedBy   *string
	CreatedAt   time.Time
}

// EmployeePayrollRecord - the persisted, flattened copy of a
// CalculationResult. One row per (payroll_run, employee).
type EmployeePayrollRecord struct {
	ID                  string          `json:"id"`
	PayrollRunID        string          `json:"payroll_run_id"`
	EmployeeID          string          `json:"employee_id"`
	RegularHours        decimal.Decimal `json:"regular_hours"`
	OvertimeHours       decimal.Decimal `json:"overtime_hours"`
	NightHours          decimal.Decimal `json:"night_hours"`
	HolidayHours        decimal.Decimal `json:"holiday_hours"`
	SundayHours         decimal.Decimal `json:"sunday_hours"`
	TotalHours          decimal.Decimal `json:"total_hours"`
	WorkDays            int             `json:"work_days"`
	BaseRate            decimal.Decimal `json:"base_rate"`
	OvertimeRate        decimal.Decimal `json:"overtime_rate"`
	NightRate           decimal.Decimal `json:"night_rate"`
	HolidayRate         decimal.Decimal `json:"holiday_rate"`
	SundayRate          decimal.Decimal `json:"sunday_rate"`
	BaseAmount          decimal.Decimal `json:"base_amount"`
	OvertimeAmount      decimal.Decimal `json:"overtime_amount"`
	NightAmount         decimal.Decimal `json:"night_amount"`
	HolidayAmount       decimal.Decimal `json:"holiday_amount"`
	SundayAmount        decimal.Decimal `json:"sunday_amount"`
	GrossAmount         decimal.Decimal `json:"gross_amount"`
	IncomeTax           decimal.Decimal `json:"income_tax"`
	ResidentTax         decimal.Decimal `json:"resident_tax"`
	HealthInsurance     decimal.Decimal `json:"health_insurance"`
	Pension             decimal.Decimal `json:"pension"`
	EmploymentInsurance decimal.Decimal `json:"employment_insurance"`
	ApartmentDeduction  decimal.Decimal `json:"apartment_deduction"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`
	NetAmount           decimal.Decimal `json:"net_amount"`
	IsValid             bool            `json:"is_valid"`
	CreatedAt           time.Time       `json:"created_at"`
}

// NewEmployeePayrollRecord flattens a calculation result for storage.
func NewEmployeePayrollRecord(runID string, r CalculationResult) EmployeePayrollRecord {
	return EmployeePayrollRecord{
		PayrollRunID:        runID,
		EmployeeID:          r.EmployeeID,
		RegularHours:        r.Hours.RegularHours,
		OvertimeHours:       r.Hours.OvertimeHours,
		NightHours:          r.Hours.NightHours,
		HolidayHours:        r.Hours.HolidayHours,
		SundayHours:         r.Hours.SundayHours,
		TotalHours:          r.Hours.TotalHours,
		WorkDays:            r.Hours.WorkDays,
		BaseRate:            r.Rates.BaseRate,
		OvertimeRate:        r.Rates.OvertimeRate,
		NightRate:           r.Rates.NightRate,
		HolidayRate:         r.Rates.HolidayRate,
		SundayRate:          r.Rates.SundayRate,
		BaseAmount:          r.Amounts.BaseAmount,
		OvertimeAmount:      r.Amounts.OvertimeAmount,
		NightAmount:         r.Amounts.NightAmount,
		HolidayAmount:       r.Amounts.HolidayAmount,
		SundayAmount:        r.Amounts.SundayAmount,
		GrossAmount:         r.Amounts.GrossAmount,
		IncomeTax:           r.Deductions.IncomeTax,
		ResidentTax:         r.Deductions.ResidentTax,
		HealthInsurance:     r.Deductions.HealthInsurance,
		Pension:             r.Deductions.Pension,
		EmploymentInsurance: r.Deductions.EmploymentInsurance,
		ApartmentDeduction:  r.Deductions.Apartment,
		TotalDeductions:     r.Deductions.Total,
		NetAmount:           r.NetAmount,
		IsValid:             r.Validation.IsValid,
	}
}
