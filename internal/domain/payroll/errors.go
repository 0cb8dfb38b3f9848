package payroll

import "errors"

var (
	ErrRateSettingsNotFound       = errors.New("rate settings not found")
	ErrInvalidSettings            = errors.New("rate settings are invalid")
	ErrInvalidRate                = errors.New("base hourly rate must be positive")
	ErrInvalidPeriod              = errors.New("invalid payroll period")
	ErrInsufficientData           = errors.New("gross amount is missing, upstream calculation did not complete")
	ErrPayrollRunNotFound         = errors.New("payroll run not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this run and employee")
)
