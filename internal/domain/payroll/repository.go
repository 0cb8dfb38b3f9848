package payroll

import "context"

type PayrollRepository interface {
	// Settings
	GetRateSettings(ctx context.Context) (RateSettings, error)
	UpsertRateSettings(ctx context.Context, settings RateSettings) (RateSettings, error)

	// Runs and persisted records
	CreateRun(ctx context.Context, run PayrollRun) (PayrollRun, error)
	GetRun(ctx context.Context, id string) (PayrollRun, error)
	SaveEmployeeRecord(ctx context.Context, record EmployeePayrollRecord) (EmployeePayrollRecord, error)
	ListRecordsByRun(ctx context.Context, runID string) ([]EmployeePayrollRecord, error)
}

type PayrollService interface {
	GetRateSettings(ctx context.Context) (RateSettingsResponse, error)
	UpdateRateSettings(ctx context.Context, req UpdateRateSettingsRequest) (RateSettingsResponse, error)

	// CalculateEmployeePayroll runs the full pipeline for one employee
	// without persisting; the result is a draft.
	CalculateEmployeePayroll(ctx context.Context, employeeID string, period Period) (CalculationResult, error)

	// CalculateBulkPayroll creates a payroll run, fans out one calculation
	// per employee, and persists each successful result independently.
	// An empty employeeIDs slice means all active employees.
	CalculateBulkPayroll(ctx context.Context, employeeIDs []string, period Period) (BatchResult, error)

	// GetPayrollRun returns a stored run with its persisted employee records.
	GetPayrollRun(ctx context.Context, id string) (PayrollRunResponse, error)
}
