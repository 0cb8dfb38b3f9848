package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/leave"
	"github.com/uns-kikaku/staffing-backend-go/internal/domain/payroll"
	"github.com/uns-kikaku/staffing-backend-go/internal/pkg/jwt"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type stubPayrollService struct {
	settings payroll.RateSettingsResponse
	result   payroll.CalculationResult
	batch    payroll.BatchResult
	run      payroll.PayrollRunResponse
	err      error
}

func (s *stubPayrollService) GetRateSettings(ctx context.Context) (payroll.RateSettingsResponse, error) {
	return s.settings, s.err
}

func (s *stubPayrollService) UpdateRateSettings(ctx context.Context, req payroll.UpdateRateSettingsRequest) (payroll.RateSettingsResponse, error) {
	return s.settings, s.err
}

func (s *stubPayrollService) CalculateEmployeePayroll(ctx context.Context, employeeID string, period payroll.Period) (payroll.CalculationResult, error) {
	return s.result, s.err
}

func (s *stubPayrollService) CalculateBulkPayroll(ctx context.Context, employeeIDs []string, period payroll.Period) (payroll.BatchResult, error) {
	return s.batch, s.err
}

func (s *stubPayrollService) GetPayrollRun(ctx context.Context, id string) (payroll.PayrollRunResponse, error) {
	return s.run, s.err
}

type stubComplianceService struct {
	records []leave.ComplianceRecord
	trends  []leave.TrendMonth
	err     error
}

func (s *stubComplianceService) GetComplianceStatus(ctx context.Context, fiscalYear *int) ([]leave.ComplianceRecord, error) {
	return s.records, s.err
}

func (s *stubComplianceService) GetLeaveTrends(ctx context.Context, months int) ([]leave.TrendMonth, error) {
	return s.trends, s.err
}

func newTestRouter(t *testing.T, payrollSvc payroll.PayrollService, complianceSvc leave.ComplianceService) (http.Handler, string) {
	t.Helper()
	jwtService := jwt.NewJWTService(handlerTestSecret, "1h")
	token, _, err := jwtService.GenerateAccessToken("operator-1")
	require.NoError(t, err)

	router := NewRouter(
		jwtService,
		NewPayrollHandler(payrollSvc),
		NewDashboardHandler(complianceSvc),
		"test",
	)
	return router, token
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RequiresToken(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t, &stubPayrollService{}, &stubComplianceService{})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/payroll/settings", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetSettings_Success(t *testing.T) {
	t.Parallel()
	svc := &stubPayrollService{
		settings: payroll.RateSettingsResponse{
			OvertimeMultiplier:    decimal.NewFromFloat(1.25),
			NightMultiplier:       decimal.NewFromFloat(1.25),
			HolidayMultiplier:     decimal.NewFromFloat(1.35),
			SundayMultiplier:      decimal.NewFromFloat(1.35),
			StandardHoursPerMonth: decimal.NewFromInt(160),
		},
	}
	router, token := newTestRouter(t, svc, &stubComplianceService{})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/payroll/settings", token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                        `json:"success"`
		Data    payroll.RateSettingsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, body.Data.OvertimeMultiplier.Equal(decimal.NewFromFloat(1.25)))
}

func TestCalculate_ValidationFailure(t *testing.T) {
	t.Parallel()
	router, token := newTestRouter(t, &stubPayrollService{}, &stubComplianceService{})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/payroll/calculate", token, payroll.CalculateRequest{
		EmployeeID: "",
		Year:       2026,
		Month:      1,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCalculate_Success(t *testing.T) {
	t.Parallel()
	svc := &stubPayrollService{
		result: payroll.CalculationResult{
			EmployeeID: "emp-1",
			Period:     payroll.Period{Year: 2026, Month: 1},
			NetAmount:  decimal.NewFromInt(150000),
			Validation: payroll.ValidationResult{IsValid: true, Errors: []string{}, Warnings: []string{}},
		},
	}
	router, token := newTestRouter(t, svc, &stubComplianceService{})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/payroll/calculate", token, payroll.CalculateRequest{
		EmployeeID: "emp-1",
		Year:       2026,
		Month:      1,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBulkCalculate_Created(t *testing.T) {
	t.Parallel()
	svc := &stubPayrollService{
		batch: payroll.BatchResult{RunID: "run-1", Total: 2, Successful: 2},
	}
	router, token := newTestRouter(t, svc, &stubComplianceService{})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/payroll/bulk", token, payroll.BulkCalculateRequest{
		Year:  2026,
		Month: 1,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetRun_NotFound(t *testing.T) {
	t.Parallel()
	router, token := newTestRouter(t, &stubPayrollService{err: payroll.ErrPayrollRunNotFound}, &stubComplianceService{})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/payroll/runs/run-missing", token, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestYukyuCompliance_BadFiscalYearQuery(t *testing.T) {
	t.Parallel()
	router, token := newTestRouter(t, &stubPayrollService{}, &stubComplianceService{})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard/yukyu-compliance?fiscal_year=abc", token, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestYukyuCompliance_Success(t *testing.T) {
	t.Parallel()
	svc := &stubComplianceService{
		records: []leave.ComplianceRecord{
			{EmployeeID: "emp-1", FiscalYear: 2025, IsCompliant: true},
		},
	}
	router, token := newTestRouter(t, &stubPayrollService{}, svc)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard/yukyu-compliance?fiscal_year=2025", token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestYukyuTrends_Success(t *testing.T) {
	t.Parallel()
	svc := &stubComplianceService{
		trends: []leave.TrendMonth{{Month: "2026-01"}},
	}
	router, token := newTestRouter(t, &stubPayrollService{}, svc)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard/yukyu-trends-monthly?months=6", token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
