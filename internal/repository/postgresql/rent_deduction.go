package postgresql

import (
	"context"
	"fmt"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/apartment"
	"github.com/uns-kikaku/staffing-backend-go/internal/pkg/database"
)

type rentDeductionRepository struct {
	db *database.DB
}

func NewRentDeductionRepository(db *database.DB) apartment.RentDeductionRepository {
	return &rentDeductionRepository{db: db}
}

func (r *rentDeductionRepository) ListForPayrollMonth(ctx context.Context, employeeID string, year, month int) ([]apartment.RentDeduction, error) {
	q := GetQuerier(ctx, r.db)

	// Paid and cancelled rows are excluded at the source; the deduction
	// calculator decides whether pending rows count this run.
	query := `
		SELECT id, assignment_id, employee_id, year, month,
			   base_rent, additional_charges, total_deduction, status, notes,
			   created_at, updated_at
		FROM rent_deductions
		WHERE employee_id = $1 AND year = $2 AND month = $3
		  AND status IN ('pending', 'processed')
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list rent deductions: %w", err)
	}
	defer rows.Close()

	var deductions []apartment.RentDeduction
	for rows.Next() {
		var d apartment.RentDeduction
		err := rows.Scan(
			&d.ID, &d.AssignmentID, &d.EmployeeID, &d.Year, &d.Month,
			&d.BaseRent, &d.AdditionalCharges, &d.TotalDeduction, &d.Status, &d.Notes,
			&d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rent deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	return deductions, rows.Err()
}
