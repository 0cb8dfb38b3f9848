package main

import (
	"fmt"
	"net/http"

	"github.com/uns-kikaku/staffing-backend-go/internal/config"
	"github.com/uns-kikaku/staffing-backend-go/internal/domain/payroll"
	appHTTP "github.com/uns-kikaku/staffing-backend-go/internal/handler/http"
	"github.com/uns-kikaku/staffing-backend-go/internal/pkg/database"
	"github.com/uns-kikaku/staffing-backend-go/internal/pkg/jwt"
	"github.com/uns-kikaku/staffing-backend-go/internal/repository/postgresql"
	leaveService "github.com/uns-kikaku/staffing-backend-go/internal/service/leave"
	payrollService "github.com/uns-kikaku/staffing-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	rentDeductionRepo := postgresql.NewRentDeductionRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	statutoryRates := payroll.StatutoryRates{
		IncomeTaxRate:           cfg.Payroll.IncomeTaxRate,
		DependentAllowance:      cfg.Payroll.DependentAllowance,
		ResidentTaxRate:         cfg.Payroll.ResidentTaxRate,
		HealthInsuranceRate:     cfg.Payroll.HealthInsuranceRate,
		PensionRate:             cfg.Payroll.PensionRate,
		EmploymentInsuranceRate: cfg.Payroll.EmploymentInsuranceRate,
	}

	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		rentDeductionRepo,
		statutoryRates,
		cfg.Payroll.IncludePendingRent,
		cfg.Payroll.Workers,
	)
	complianceSvc := leaveService.NewComplianceService(employeeRepo, leaveRequestRepo, payrollRepo)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(complianceSvc)

	router := appHTTP.NewRouter(JWTService, payrollHandler, dashboardHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
