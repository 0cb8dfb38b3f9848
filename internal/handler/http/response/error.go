package response

import (
	"errors"
	"net/http"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/employee"
	"github.com/uns-kikaku/staffing-backend-go/internal/domain/leave"
	"github.com/uns-kikaku/staffing-backend-go/internal/domain/payroll"
	"github.com/uns-kikaku/staffing-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRateSettingsNotFound):
		NotFound(w, "Rate settings not found")
	case errors.Is(err, payroll.ErrInvalidSettings):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrInvalidRate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrInsufficientData):
		BadRequest(w, "Insufficient data to calculate payroll", nil)
	case errors.Is(err, payroll.ErrPayrollRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this run and employee")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidFiscalYear):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrInvalidTrendMonths):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
