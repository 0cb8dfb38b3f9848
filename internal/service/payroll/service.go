package payroll

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/apartment"
	"github.com/uns-kikaku/staffing-backend-go/internal/domain/attendance"
	"github.com/uns-kikaku/staffing-backend-go/internal/domain/employee"
	"github.com/uns-kikaku/staffing-backend-go/internal/domain/payroll"
	"github.com/uns-kikaku/staffing-backend-go/internal/pkg/database"
	"github.com/uns-kikaku/staffing-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository

	classifier *HoursClassifier
	deductions *DeductionCalculator
	validator  *Validator
	workers    int
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	rentRepo apartment.RentDeductionRepository,
	statutoryRates payroll.StatutoryRates,
	includePendingRent bool,
	workers int,
) payroll.PayrollService {
	if workers < 1 {
		workers = 1
	}
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		classifier:     NewHoursClassifier(),
		deductions:     NewDeductionCalculator(rentRepo, statutoryRates, includePendingRent),
		validator:      NewValidator(),
		workers:        workers,
	}
}

// ========== SETTINGS ==========

func (s *PayrollServiceImpl) GetRateSettings(ctx context.Context) (payroll.RateSettingsResponse, error) {
	settings, err := s.settingsSnapshot(ctx)
	if err != nil {
		return payroll.RateSettingsResponse{}, err
	}
	return mapToSettingsResponse(settings), nil
}

func (s *PayrollServiceImpl) UpdateRateSettings(ctx context.Context, req payroll.UpdateRateSettingsRequest) (payroll.RateSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RateSettingsResponse{}, err
	}

	current, err := s.settingsSnapshot(ctx)
	if err != nil {
		return payroll.RateSettingsResponse{}, err
	}

	// Apply updates
	if req.OvertimeMultiplier != nil {
		current.OvertimeMultiplier = *req.OvertimeMultiplier
	}
	if req.NightMultiplier != nil {
		current.NightMultiplier = *req.NightMultiplier
	}
	if req.HolidayMultiplier != nil {
		current.HolidayMultiplier = *req.HolidayMultiplier
	}
	if req.SundayMultiplier != nil {
		current.SundayMultiplier = *req.SundayMultiplier
	}
	if req.StandardHoursPerMonth != nil {
		current.StandardHoursPerMonth = *req.StandardHoursPerMonth
	}

	if err := current.Validate(); err != nil {
		return payroll.RateSettingsResponse{}, err
	}

	updated, err := s.payrollRepo.UpsertRateSettings(ctx, current)
	if err != nil {
		return payroll.RateSettingsResponse{}, err
	}

	return mapToSettingsResponse(updated), nil
}

// settingsSnapshot reads the stored multipliers, falling back to the legal
// defaults when no override row exists yet.
func (s *PayrollServiceImpl) settingsSnapshot(ctx context.Context) (payroll.RateSettings, error) {
	settings, err := s.payrollRepo.GetRateSettings(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrRateSettingsNotFound) {
			return payroll.DefaultRateSettings(), nil
		}
		return payroll.RateSettings{}, err
	}
	return settings, nil
}

// ========== CALCULATION ==========

func (s *PayrollServiceImpl) CalculateEmployeePayroll(ctx context.Context, employeeID string, period payroll.Period) (payroll.CalculationResult, error) {
	if err := period.Validate(); err != nil {
		return payroll.CalculationResult{}, err
	}

	settings, err := s.settingsSnapshot(ctx)
	if err != nil {
		return payroll.CalculationResult{}, err
	}
	if err := settings.Validate(); err != nil {
		return payroll.CalculationResult{}, err
	}

	return s.calculateOne(ctx, employeeID, period, settings)
}

// calculateOne runs the full pipeline for a single employee against a fixed
// settings snapshot: classify hours, resolve rates, compute category amounts,
// aggregate deductions, then attach the validation verdict to the result.
func (s *PayrollServiceImpl) calculateOne(ctx context.Context, employeeID string, period payroll.Period, settings payroll.RateSettings) (payroll.CalculationResult, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.CalculationResult{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeePeriod(ctx, employeeID, period.Year, period.Month)
	if err != nil {
		return payroll.CalculationResult{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	hours, faults := s.classifier.Classify(records)

	rates, err := ResolveRates(emp.BaseHourlyRate, settings)
	if err != nil {
		return payroll.CalculationResult{}, err
	}

	amounts := CalculateAmounts(hours, rates)

	gross := amounts.GrossAmount
	deductions, err := s.deductions.Calculate(ctx, emp, period, &gross)
	if err != nil {
		return payroll.CalculationResult{}, err
	}

	result := payroll.CalculationResult{
		EmployeeID:   emp.ID,
		Period:       period,
		Hours:        hours,
		Rates:        rates,
		Amounts:      amounts,
		Deductions:   deductions,
		NetAmount:    gross.Sub(deductions.Total),
		CalculatedAt: time.Now().UTC(),
	}
	result.Validation = s.validator.Validate(result, faults)

	return result, nil
}

func (s *PayrollServiceImpl) CalculateBulkPayroll(ctx context.Context, employeeIDs []string, period payroll.Period) (payroll.BatchResult, error) {
	if err := period.Validate(); err != nil {
		return payroll.BatchResult{}, err
	}

	// Settings problems are shared configuration errors and abort the batch
	// before any employee is dispatched.
	settings, err := s.settingsSnapshot(ctx)
	if err != nil {
		return payroll.BatchResult{}, err
	}
	if err := settings.Validate(); err != nil {
		return payroll.BatchResult{}, err
	}

	if len(employeeIDs) == 0 {
		active, err := s.employeeRepo.ListActive(ctx)
		if err != nil {
			return payroll.BatchResult{}, fmt.Errorf("failed to list active employees: %w", err)
		}
		for _, emp := range active {
			employeeIDs = append(employeeIDs, emp.ID)
		}
	}

	run, err := s.payrollRepo.CreateRun(ctx, payroll.PayrollRun{
		ID:          uuid.New().String(),
		PeriodYear:  period.Year,
		PeriodMonth: period.Month,
		Status:      payroll.RunStatusDraft,
	})
	if err != nil {
		return payroll.BatchResult{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	var (
		mu       sync.Mutex
		results  []payroll.CalculationResult
		failures []payroll.BatchError
	)

	g := &errgroup.Group{}
	g.SetLimit(s.workers)

	for _, id := range employeeIDs {
		id := id
		// Cancellation stops dispatching new employees; in-flight ones run
		// to completion.
		if ctx.Err() != nil {
			mu.Lock()
			failures = append(failures, payroll.BatchError{EmployeeID: id, Error: ctx.Err().Error()})
			mu.Unlock()
			continue
		}

		g.Go(func() error {
			result, err := s.calculateOne(ctx, id, period, settings)
			if err == nil {
				err = s.persistRecord(ctx, run.ID, result)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, payroll.BatchError{EmployeeID: id, Error: err.Error()})
				return nil
			}
			results = append(results, result)
			return nil
		})
	}

	_ = g.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].EmployeeID < results[j].EmployeeID })
	sort.Slice(failures, func(i, j int) bool { return failures[i].EmployeeID < failures[j].EmployeeID })

	return payroll.BatchResult{
		RunID:        run.ID,
		Total:        len(employeeIDs),
		Successful:   len(results),
		Failed:       len(failures),
		Results:      results,
		Errors:       failures,
		CalculatedAt: time.Now().UTC(),
	}, nil
}

func (s *PayrollServiceImpl) GetPayrollRun(ctx context.Context, id string) (payroll.PayrollRunResponse, error) {
	run, err := s.payrollRepo.GetRun(ctx, id)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	records, err := s.payrollRepo.ListRecordsByRun(ctx, run.ID)
	if err != nil {
		return payroll.PayrollRunResponse{}, fmt.Errorf("failed to list run records: %w", err)
	}

	return payroll.PayrollRunResponse{
		ID:          run.ID,
		PeriodYear:  run.PeriodYear,
		PeriodMonth: run.PeriodMonth,
		Status:      string(run.Status),
		Records:     records,
	}, nil
}

// persistRecord writes one employee's flattened record inside its own
// transaction, so a later employee's failure cannot roll it back.
func (s *PayrollServiceImpl) persistRecord(ctx context.Context, runID string, result payroll.CalculationResult) error {
	record := payroll.NewEmployeePayrollRecord(runID, result)

	if s.db == nil {
		_, err := s.payrollRepo.SaveEmployeeRecord(ctx, record)
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		_, err := s.payrollRepo.SaveEmployeeRecord(txCtx, record)
		return err
	})
}

// ========== HELPERS ==========

func mapToSettingsResponse(s payroll.RateSettings) payroll.RateSettingsResponse {
	return payroll.RateSettingsResponse{
		ID:                    s.ID,
		OvertimeMultiplier:    s.OvertimeMultiplier,
		NightMultiplier:       s.NightMultiplier,
		HolidayMultiplier:     s.HolidayMultiplier,
		SundayMultiplier:      s.SundayMultiplier,
		StandardHoursPerMonth: s.StandardHoursPerMonth,
	}
}
